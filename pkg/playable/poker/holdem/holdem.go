package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/poker/blinds"
	"homegame-server/pkg/roles"
	"homegame-server/pkg/seating"
)

// Game is a Texas Hold'em session
// Cards are never dealt or evaluated, the engine tracks turns, commitments and the pot
type Game struct {
	options Options
	logger  logrus.FieldLogger
	table   *seating.Table
	blinds  *blinds.Schedule

	participants map[int]*participant
	phase        Phase
	stage        Stage
	roles        roles.Assignment
	dealer       int
	turnSeat     int
	pot          int
	roundNumber  int
	lastResult   *RoundResult

	logChan chan []*playable.LogMessage
}

// Options configures how the session is played
type Options struct {
	StartingChips int
	BlindLevels   []blinds.Level
	BlindPosting  BlindPosting
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		BlindLevels:   blinds.DefaultLevels(),
		BlindPosting:  BlindPostingAutomatic,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be greater than zero, got %d", opts.StartingChips)
	}

	if _, err := BlindPostingFromString(string(opts.BlindPosting)); err != nil {
		return err
	}

	return nil
}

// NewGame returns a new session with an empty table
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	schedule, err := blinds.NewSchedule(opts.BlindLevels...)
	if err != nil {
		return nil, err
	}

	return &Game{
		options:      opts,
		logger:       logger,
		table:        seating.New(),
		blinds:       schedule,
		participants: make(map[int]*participant),
		phase:        PhaseBetting,
		stage:        StagePreFlop,
		dealer:       -1,
		turnSeat:     -1,
		roundNumber:  1,
		logChan:      make(chan []*playable.LogMessage, 256),
	}, nil
}

// SeatPlayer fills a seat
// A player without chips is given the starting stack
// Players seated during a round wait for the next round
func (g *Game) SeatPlayer(seat int, info seating.PlayerInfo) (*seating.Player, error) {
	if info.Chips <= 0 {
		info.Chips = g.options.StartingChips
	}

	player, err := g.table.Seat(seat, info)
	if err != nil {
		return nil, err
	}

	g.sendLog(player.ID, "{} sat down at seat %d with ${%d}", seat, player.Chips)
	return player, nil
}

// VacateSeat removes the player at seat
// A seat that is dealt into the current round cannot be vacated until the round is over
func (g *Game) VacateSeat(seat int) error {
	if _, inRound := g.participants[seat]; inRound && g.phase != PhaseBetting {
		return playable.IllegalActionError{Seat: seat, Action: "leave", Reason: "the seat is in a round"}
	}

	player, err := g.table.Vacate(seat)
	if err != nil {
		return err
	}

	if player != nil {
		g.sendLog(player.ID, "{} left the table")
	}

	return nil
}

// SetDealer gives the button to seat for the next round
func (g *Game) SetDealer(seat int) error {
	if g.phase != PhaseBetting {
		return ErrRoundInProgress
	}

	player, ok := g.table.Player(seat)
	if !ok {
		return playable.IllegalActionError{Seat: seat, Action: "deal", Reason: "the seat is empty"}
	}

	g.dealer = seat
	g.sendLog(player.ID, "{} is the dealer")
	return nil
}

// AddBlindLevel appends a blind level that doubles the final level
func (g *Game) AddBlindLevel() blinds.Level {
	level := g.blinds.AddLevel()
	g.sendLog("", "added blind level %s", level)
	return level
}

// StartRound assigns roles, posts the blinds and gives the turn to the seat after the big blind
func (g *Game) StartRound() (*Snapshot, error) {
	if g.phase != PhaseBetting {
		return nil, ErrRoundInProgress
	}

	occupied := g.table.OccupiedIndexes()
	dealer := g.dealer
	if dealer < 0 && len(occupied) > 0 {
		dealer = occupied[0]
	}

	assignment, err := roles.Assign(dealer, occupied)
	if err != nil {
		return nil, err
	}

	g.roles = assignment
	g.dealer = assignment.Dealer
	g.pot = 0
	g.stage = StagePreFlop
	g.lastResult = nil
	g.participants = make(map[int]*participant, len(occupied))
	for _, seat := range g.table.OccupiedSeats() {
		g.participants[seat.Index()] = newParticipant(seat.Index(), seat.Player)
	}

	level := g.blinds.Current()
	g.sendLog("", "round %d started, blinds are ${%d}/${%d}", g.roundNumber, level.Small, level.Big)
	g.logger.WithFields(logrus.Fields{
		"round":      g.roundNumber,
		"dealer":     assignment.Dealer,
		"smallBlind": assignment.SmallBlind,
		"bigBlind":   assignment.BigBlind,
	}).Info("round started")

	if g.options.BlindPosting == BlindPostingAutomatic {
		g.postBlind(g.participants[assignment.SmallBlind], level.Small, "small")
		g.postBlind(g.participants[assignment.BigBlind], level.Big, "big")
	}

	g.phase = PhasePlaying
	g.openStage(assignment.BigBlind)

	return g.Snapshot(), nil
}

func (g *Game) postBlind(p *participant, amount int, name string) {
	posted := p.commit(amount)
	g.pot += posted
	g.sendLog(p.ID, "{} posted the %s blind of ${%d}", name, posted)
}

// sendLog sends a log message without blocking the engine
func (g *Game) sendLog(playerID string, format string, a ...interface{}) {
	select {
	case g.logChan <- playable.SimpleLogMessageSlice(playerID, format, a...):
	default:
		g.logger.Warn("log channel is full, dropping message")
	}
}
