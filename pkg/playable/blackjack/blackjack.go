package blackjack

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"homegame-server/internal/rng"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/roles"
	"homegame-server/pkg/seating"
)

// player hands are drawn between minPlayerHand and maxPlayerHand inclusive
const (
	minPlayerHand = 18
	maxPlayerHand = 22
)

// Game is a simplified game of blackjack
// Hands are not dealt, each player's hand value is a random number and the dealer always has the same value
type Game struct {
	options Options
	logger  logrus.FieldLogger
	rng     rng.Generator
	table   *seating.Table

	bets         map[int]int
	participants map[int]*participant
	phase        Phase
	dealer       int
	dealerHand   int
	turnSeat     int
	roundNumber  int
	lastResult   *RoundResult

	logChan chan []*playable.LogMessage
}

// Options configures the house rules
type Options struct {
	StartingChips   int
	DealerHandValue int
	// PushOnTie returns the bet when the player ties the dealer, otherwise the dealer wins ties
	PushOnTie bool
	// RotateDealer moves the dealer to the next seat after each round
	RotateDealer bool
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		StartingChips:   1000,
		DealerHandValue: 17,
		PushOnTie:       false,
		RotateDealer:    false,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be greater than zero, got %d", opts.StartingChips)
	}

	if opts.DealerHandValue < 2 {
		return fmt.Errorf("dealer hand value must be at least 2, got %d", opts.DealerHandValue)
	}

	return nil
}

// NewGame returns a new game with an empty table
func NewGame(logger logrus.FieldLogger, generator rng.Generator, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Game{
		options:      opts,
		logger:       logger,
		rng:          generator,
		table:        seating.New(),
		bets:         make(map[int]int),
		participants: make(map[int]*participant),
		phase:        PhaseBetting,
		dealer:       -1,
		turnSeat:     -1,
		roundNumber:  1,
		logChan:      make(chan []*playable.LogMessage, 256),
	}, nil
}

// SeatPlayer fills a seat
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
func (g *Game) VacateSeat(seat int) error {
	if _, inRound := g.participants[seat]; inRound {
		return playable.IllegalActionError{Seat: seat, Action: "leave", Reason: "the seat is in a round"}
	}

	if g.phase != PhaseBetting && seat == g.dealer {
		return playable.IllegalActionError{Seat: seat, Action: "leave", Reason: "the dealer cannot leave during a round"}
	}

	player, err := g.table.Vacate(seat)
	if err != nil {
		return err
	}

	delete(g.bets, seat)
	if player != nil {
		g.sendLog(player.ID, "{} left the table")
	}

	return nil
}

// SetDealer makes seat the dealer
func (g *Game) SetDealer(seat int) error {
	if g.phase != PhaseBetting {
		return ErrRoundInProgress
	}

	player, ok := g.table.Player(seat)
	if !ok {
		return playable.IllegalActionError{Seat: seat, Action: "deal", Reason: "the seat is empty"}
	}

	g.dealer = seat
	delete(g.bets, seat)
	g.sendLog(player.ID, "{} is the dealer")
	return nil
}

// dealerSeat returns the seat of the dealer
// If the dealer hasn't been set or has left, the next occupied seat deals
func (g *Game) dealerSeat() int {
	occupied := g.table.OccupiedIndexes()
	if len(occupied) == 0 {
		return -1
	}

	if _, ok := g.table.Player(g.dealer); ok {
		return g.dealer
	}

	if g.dealer < 0 {
		return occupied[0]
	}

	next, _ := roles.NextOccupied(g.dealer, occupied)
	return next
}

// PlaceBet sets the bet for seat, the amount is clamped to the seat's chips
func (g *Game) PlaceBet(seat int, amount int) (int, error) {
	if g.phase != PhaseBetting {
		return 0, ErrRoundInProgress
	}

	player, ok := g.table.Player(seat)
	if !ok {
		return 0, playable.IllegalActionError{Seat: seat, Action: "bet", Reason: "the seat is empty"}
	}

	if seat == g.dealerSeat() {
		return 0, playable.IllegalActionError{Seat: seat, Action: "bet", Reason: "the dealer does not bet"}
	}

	if amount < 0 {
		amount = 0
	}

	if amount > player.Chips {
		amount = player.Chips
	}

	g.bets[seat] = amount
	g.sendLog(player.ID, "{} bet ${%d}", amount)
	return amount, nil
}

// StartRound deals a hand value to each player and gives the turn to the lowest non-dealer seat
func (g *Game) StartRound() (*Snapshot, error) {
	if g.phase != PhaseBetting {
		return nil, ErrRoundInProgress
	}

	occupied := g.table.OccupiedSeats()
	if len(occupied) < 2 {
		return nil, roles.ErrNotEnoughPlayers
	}

	dealer := g.dealerSeat()
	for _, seat := range occupied {
		if seat.Index() != dealer && g.bets[seat.Index()] <= 0 {
			return nil, playable.IllegalActionError{Seat: seat.Index(), Action: "play", Reason: "a bet is required"}
		}
	}

	g.dealer = dealer
	g.dealerHand = g.options.DealerHandValue
	g.lastResult = nil
	g.participants = make(map[int]*participant, len(occupied)-1)
	for _, seat := range occupied {
		if seat.Index() == dealer {
			continue
		}

		p := newParticipant(seat.Index(), seat.Player, g.bets[seat.Index()])
		p.escrow = p.SubtractChips(p.bet)
		p.handValue = rng.Between(g.rng, minPlayerHand, maxPlayerHand)
		g.participants[seat.Index()] = p
	}

	g.phase = PhasePlaying
	g.turnSeat = g.nextToAct(-1)

	g.sendLog("", "round %d started, the dealer has %d", g.roundNumber, g.dealerHand)
	g.logger.WithFields(logrus.Fields{
		"round":  g.roundNumber,
		"dealer": dealer,
	}).Info("round started")

	return g.Snapshot(), nil
}

// nextToAct returns the first seat after the given seat that hasn't acted
// Seats are not circular, the round finishes after the highest seat acts
func (g *Game) nextToAct(after int) int {
	for seat := after + 1; seat < seating.Capacity; seat++ {
		if p, ok := g.participants[seat]; ok && !p.hasActed {
			return seat
		}
	}

	return -1
}

// sendLog sends a log message without blocking the engine
func (g *Game) sendLog(playerID string, format string, a ...interface{}) {
	select {
	case g.logChan <- playable.SimpleLogMessageSlice(playerID, format, a...):
	default:
		g.logger.Warn("log channel is full, dropping message")
	}
}
