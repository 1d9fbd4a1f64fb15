package holdem

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/poker/action"
	"homegame-server/pkg/playable/poker/blinds"
	"homegame-server/pkg/roles"
	"homegame-server/pkg/seating"
	"homegame-server/pkg/snapshot"
)

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	g, err := NewGame(logrus.StandardLogger(), DefaultOptions())
	a.NoError(err)
	a.Equal(PhaseBetting, g.phase)
	a.Equal(1, g.roundNumber)
	a.Equal(-1, g.turnSeat)
	a.Equal("Texas Hold'em (${5}/${10})", g.Name())
	a.Equal("poker", g.Key())

	opts := DefaultOptions()
	opts.StartingChips = 0
	_, err = NewGame(logrus.StandardLogger(), opts)
	a.EqualError(err, "starting chips must be greater than zero, got 0")

	opts = DefaultOptions()
	opts.BlindPosting = "sometimes"
	_, err = NewGame(logrus.StandardLogger(), opts)
	a.EqualError(err, "unknown blind posting mode: sometimes")

	opts = DefaultOptions()
	opts.BlindLevels = nil
	_, err = NewGame(logrus.StandardLogger(), opts)
	a.Equal(blinds.ErrNoLevels, err)
}

func TestGame_SeatPlayer(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions())
	p, err := g.SeatPlayer(4, seating.PlayerInfo{Name: "Alice"})
	a.NoError(err)
	a.Equal(1000, p.Chips, "given the starting stack")

	_, err = g.SeatPlayer(4, seating.PlayerInfo{Name: "Bob"})
	a.Equal(seating.SeatOccupiedError{Index: 4}, err)

	a.NoError(g.VacateSeat(4))
	a.NoError(g.VacateSeat(4))
	a.Equal(0, g.table.Count())
}

func TestGame_StartRound(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	s, err := g.StartRound()
	a.NoError(err)

	a.Equal(PhasePlaying, s.Phase)
	a.Equal(StagePreFlop, s.Stage)
	a.Equal(&roles.Assignment{Dealer: 0, SmallBlind: 1, BigBlind: 2}, s.Roles)
	a.Equal(15, s.Pot)
	a.Equal([]int{0, 5, 10, 0, 0, 0, 0, 0}, s.CommittedThisRound)
	a.Equal(0, s.TurnSeat, "turn starts after the big blind")
	a.Equal(action.Call, s.PayAction)
	a.Equal(10, s.ToCall)
	a.Equal(995, chipsAt(g, 1))
	a.Equal(990, chipsAt(g, 2))
	assertPotMatchesCommitments(t, g)

	_, err = g.StartRound()
	a.Equal(ErrRoundInProgress, err)
}

func TestGame_StartRound_notEnoughPlayers(t *testing.T) {
	g := setupGame(t, DefaultOptions(), 1000)
	_, err := g.StartRound()
	assert.Equal(t, roles.ErrNotEnoughPlayers, err)
	assert.Equal(t, PhaseBetting, g.phase)
}

func TestGame_StartRound_manualBlinds(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.BlindPosting = BlindPostingManual
	g := setupGame(t, opts, 1000, 1000, 1000)

	s, err := g.StartRound()
	a.NoError(err)
	a.Equal(0, s.Pot)
	a.Equal(1000, chipsAt(g, 1))
	a.Equal(1000, chipsAt(g, 2))
	a.Equal(action.Check, s.PayAction)
	a.Equal(BlindPostingManual, s.BlindPosting)

	// the small blind is posted as a bet
	_, err = g.SubmitAction(0, action.Check, 0)
	a.NoError(err)
	_, err = g.SubmitAction(1, action.Bet, 5)
	a.NoError(err)
	a.Equal(5, g.ToCall(2))
}

func TestGame_SetDealer(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	a.Equal(playable.IllegalActionError{Seat: 5, Action: "deal", Reason: "the seat is empty"}, g.SetDealer(5))

	a.NoError(g.SetDealer(2))
	a.Equal(&roles.Assignment{Dealer: 2, SmallBlind: 0, BigBlind: 1}, g.Snapshot().Roles)

	s, err := g.StartRound()
	a.NoError(err)
	a.Equal(&roles.Assignment{Dealer: 2, SmallBlind: 0, BigBlind: 1}, s.Roles)
	a.Equal(2, s.TurnSeat)

	a.Equal(ErrRoundInProgress, g.SetDealer(1))
	a.Equal(playable.IllegalActionError{Seat: 1, Action: "leave", Reason: "the seat is in a round"}, g.VacateSeat(1))
}

// 3 players, 1000 chips, blinds 5/10, everyone folds to the big blind
func TestGame_foldToBigBlind(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, err := g.StartRound()
	a.NoError(err)

	s, err := g.SubmitAction(0, action.Fold, 0)
	a.NoError(err)
	a.Equal(1, s.TurnSeat)
	a.Equal(15, s.Pot)
	a.True(s.Seats[0].Folded)

	s, err = g.SubmitAction(1, action.Fold, 0)
	a.NoError(err)

	a.Equal(PhaseBetting, s.Phase)
	a.Equal(0, s.Pot)
	a.Equal([]int{0, 0, 0, 0, 0, 0, 0, 0}, s.CommittedThisRound)
	a.Equal(2, s.RoundNumber)
	a.Equal(-1, s.TurnSeat)
	a.Equal(&RoundResult{Round: 1, WinnerSeat: 2, WinnerID: "p2", Amount: 15, Automatic: true}, s.LastResult)
	a.Equal(1000, chipsAt(g, 0))
	a.Equal(995, chipsAt(g, 1))
	a.Equal(1005, chipsAt(g, 2))
	a.Equal(1, s.Roles.Dealer, "dealer rotates to seat 1")

	// the next round uses the rotated roles
	s, err = g.StartRound()
	a.NoError(err)
	a.Equal(&roles.Assignment{Dealer: 1, SmallBlind: 2, BigBlind: 0}, s.Roles)
	a.Equal(1, s.TurnSeat)
}

func TestGame_SubmitAction_outOfTurn(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, err := g.SubmitAction(0, action.Call, 0)
	a.Equal(playable.IllegalActionError{Seat: 0, Action: "call", Reason: "no betting round is in progress"}, err)

	_, _ = g.StartRound()
	_, err = g.SubmitAction(1, action.Call, 0)
	a.Equal(playable.IllegalActionError{Seat: 1, Action: "call", Reason: "it is not your turn"}, err)
	a.EqualError(err, "seat 1 cannot call: it is not your turn")
	a.Equal(0, g.turnSeat)
	a.Equal(15, g.pot)
}

func TestGame_SubmitAction_checkWithBetOutstanding(t *testing.T) {
	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, _ = g.StartRound()

	_, err := g.SubmitAction(0, action.Check, 0)
	assert.Equal(t, playable.IllegalActionError{Seat: 0, Action: "check", Reason: "there is a bet to call"}, err)
	assert.Equal(t, 1000, chipsAt(g, 0))
}

func TestGame_stages(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, _ = g.StartRound()

	s, err := g.SubmitAction(0, action.Call, 0)
	a.NoError(err)
	a.Equal(25, s.Pot)
	assertPotMatchesCommitments(t, g)

	s, err = g.SubmitAction(1, action.Call, 0)
	a.NoError(err)
	a.Equal(30, s.Pot)
	a.Equal(action.Check, s.PayAction, "big blind already matches")

	s, err = g.SubmitAction(2, action.Check, 0)
	a.NoError(err)
	a.Equal(StageFlop, s.Stage)
	a.Equal(1, s.TurnSeat, "post-flop action opens after the dealer")

	for _, stage := range []Stage{StageTurn, StageRiver} {
		for _, seat := range []int{1, 2, 0} {
			_, err := g.SubmitAction(seat, action.Check, 0)
			a.NoError(err)
		}

		a.Equal(stage, g.stage)
		a.Equal(1, g.turnSeat)
	}

	for _, seat := range []int{1, 2, 0} {
		_, err := g.SubmitAction(seat, action.Check, 0)
		a.NoError(err)
	}

	s = g.Snapshot()
	a.Equal(PhaseFinished, s.Phase)
	a.Equal(-1, s.TurnSeat)
	a.Equal(30, s.Pot)
	a.Equal(0, s.BlindLevel.Index, "blind level holds until the round is resolved")

	_, err = g.SubmitAction(1, action.Check, 0)
	a.Error(err)

	_, err = g.ResolveRound(nil)
	a.Equal(ErrWinnerRequired, err)

	_, err = g.ResolveRound(intPtr(6))
	a.Equal(playable.IllegalActionError{Seat: 6, Action: "win", Reason: "the seat is not active in this round"}, err)

	s, err = g.ResolveRound(intPtr(0))
	a.NoError(err)
	a.Equal(1020, chipsAt(g, 0))
	a.Equal(990, chipsAt(g, 1))
	a.Equal(990, chipsAt(g, 2))
	a.Equal(0, s.Pot)
	a.Equal(2, s.RoundNumber)
	a.Equal(PhaseBetting, s.Phase)
	a.Equal(&RoundResult{Round: 1, WinnerSeat: 0, WinnerID: "p0", Amount: 30}, s.LastResult)
	a.Equal(1, s.Roles.Dealer)
	a.Equal(1, s.BlindLevel.Index, "blind level advances after the river")
	a.Equal(10, s.BlindLevel.Small)

	_, err = g.ResolveRound(intPtr(0))
	a.Error(err)
}

func TestGame_ResolveRound_beforeFinished(t *testing.T) {
	g := setupGame(t, DefaultOptions(), 1000, 1000)
	_, _ = g.StartRound()

	_, err := g.ResolveRound(intPtr(0))
	assert.Equal(t, ErrRoundNotFinished, err)
}

func TestGame_fullCircuit(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000, 1000)
	s, _ := g.StartRound()
	a.Equal(3, s.TurnSeat)

	// action passes the dealer without ending the stage
	s, _ = g.SubmitAction(3, action.Call, 0)
	a.Equal(0, s.TurnSeat)
	a.Equal(StagePreFlop, s.Stage)

	s, _ = g.SubmitAction(0, action.Call, 0)
	a.Equal(1, s.TurnSeat)
	s, _ = g.SubmitAction(1, action.Call, 0)
	a.Equal(2, s.TurnSeat)
	s, _ = g.SubmitAction(2, action.Check, 0)
	a.Equal(StageFlop, s.Stage)
	a.Equal(1, s.TurnSeat)
	a.Equal(40, s.Pot)
}

func TestGame_raiseReopensAction(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, _ = g.StartRound()

	s, err := g.SubmitAction(0, action.Bet, 30)
	a.NoError(err)
	a.Equal(45, s.Pot)
	a.Equal(25, s.ToCall)
	assertPotMatchesCommitments(t, g)

	_, _ = g.SubmitAction(1, action.Call, 0)
	s, _ = g.SubmitAction(2, action.Call, 0)
	a.Equal(StageFlop, s.Stage)
	a.Equal(90, s.Pot)

	_, _ = g.SubmitAction(1, action.Check, 0)

	// a bet must match the largest commitment of the round
	_, err = g.SubmitAction(2, action.Bet, 20)
	a.Equal(playable.InvalidBetAmountError{Amount: 20, Min: 30, Max: 970}, err)

	s, err = g.SubmitAction(2, action.Bet, 40)
	a.NoError(err)
	a.Equal(0, s.TurnSeat)
	a.Equal(40, s.ToCall)
	assertPotMatchesCommitments(t, g)

	s, _ = g.SubmitAction(0, action.Call, 0)
	a.Equal(1, s.TurnSeat, "seat 1 checked before the bet and must act again")
	a.Equal(StageFlop, s.Stage)

	s, _ = g.SubmitAction(1, action.Call, 0)
	a.Equal(StageTurn, s.Stage)
	a.Equal(210, s.Pot)
	a.Equal([]int{70, 70, 70, 0, 0, 0, 0, 0}, s.CommittedThisRound)
	assertPotMatchesCommitments(t, g)
}

func TestGame_bet_rejected(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, _ = g.StartRound()
	before := g.Snapshot()

	_, err := g.SubmitAction(0, action.Bet, 5)
	a.Equal(playable.InvalidBetAmountError{Amount: 5, Min: 10, Max: 1000}, err)

	_, err = g.SubmitAction(0, action.Bet, 1001)
	a.Equal(playable.InvalidBetAmountError{Amount: 1001, Min: 10, Max: 1000}, err)

	_, err = g.SubmitAction(0, action.Bet, 0)
	a.Error(err)

	a.Equal(before, g.Snapshot(), "state is unchanged")

	_, err = g.SubmitAction(0, action.Bet, 1000)
	a.NoError(err)
	a.Equal(0, chipsAt(g, 0))
}

func TestGame_call_insufficientChips(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 7, 1000, 1000)
	_, _ = g.StartRound()

	s, err := g.SubmitAction(0, action.Call, 0)
	a.NoError(err, "an uncovered call is a fold, not an error")
	a.True(s.Seats[0].Folded)
	a.Equal(7, chipsAt(g, 0))
	a.Equal(15, s.Pot)
	a.Equal(1, s.TurnSeat)
}

func TestGame_headsUp(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000)
	_, _ = g.SeatPlayer(5, seating.PlayerInfo{ID: "p5"})

	s, err := g.StartRound()
	a.NoError(err)
	a.Equal(&roles.Assignment{Dealer: 0, SmallBlind: 0, BigBlind: 5}, s.Roles)
	a.Equal([]roles.Role{roles.Dealer, roles.SmallBlind}, s.Seats[0].Roles)
	a.Equal(0, s.TurnSeat, "the dealer acts first before the flop")
	a.Equal(5, s.ToCall)

	_, _ = g.SubmitAction(0, action.Call, 0)
	s, _ = g.SubmitAction(5, action.Check, 0)
	a.Equal(StageFlop, s.Stage)
	a.Equal(5, s.TurnSeat, "the big blind acts first after the flop")

	s, _ = g.SubmitAction(5, action.Fold, 0)
	a.Equal(PhaseBetting, s.Phase)
	a.Equal(1010, chipsAt(g, 0))
	a.Equal(&roles.Assignment{Dealer: 5, SmallBlind: 5, BigBlind: 0}, s.Roles)
}

func TestGame_dealerRotation(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000)
	_, _ = g.SeatPlayer(4, seating.PlayerInfo{ID: "p4"})
	_, _ = g.SeatPlayer(6, seating.PlayerInfo{ID: "p6"})
	occupied := g.table.OccupiedIndexes()
	a.Equal([]int{0, 1, 4, 6}, occupied)

	for n := 0; n < 9; n++ {
		s, err := g.StartRound()
		a.NoError(err)
		a.Equal(occupied[n%len(occupied)], s.Roles.Dealer, "round %d", n+1)
		assertPotMatchesCommitments(t, g)

		foldAround(t, g)
		a.Equal(0, g.pot)
		a.Equal(occupied[(n+1)%len(occupied)], g.Snapshot().Roles.Dealer)
	}

	a.Equal(10, g.roundNumber)
}

func TestGame_blindLevelSaturates(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.BlindLevels = []blinds.Level{{Small: 5, Big: 10}, {Small: 10, Big: 20}}
	g := setupGame(t, opts, 1000, 1000, 1000)

	for round := 0; round < 3; round++ {
		_, _ = g.StartRound()
		payAround(t, g)
		_, err := g.ResolveRound(intPtr(g.firstActiveSeat()))
		a.NoError(err)
	}

	s := g.Snapshot()
	a.Equal(1, s.BlindLevel.Index)
	a.True(s.BlindLevel.IsLast)
	a.Equal("Texas Hold'em (${10}/${20})", s.Name)

	a.Equal(blinds.Level{Small: 20, Big: 40}, g.AddBlindLevel())
	a.False(g.Snapshot().BlindLevel.IsLast)
}

func TestGame_foldDoesNotTouchChips(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000, 1000)
	_, _ = g.StartRound()
	s, _ := g.SubmitAction(3, action.Fold, 0)
	a.Equal(1000, chipsAt(g, 3))
	a.Equal(15, s.Pot)
	a.Equal(0, s.TurnSeat)
}

func TestGame_BetPresets(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000, 8)
	_, _ = g.StartRound()

	a.Equal([]Preset{
		{Label: "min", Amount: 10},
		{Label: "1/3 pot", Amount: 10},
		{Label: "1/2 pot", Amount: 10},
		{Label: "2/3 pot", Amount: 10},
		{Label: "pot", Amount: 15},
		{Label: "max", Amount: 1000},
	}, g.BetPresets(0))

	a.Nil(g.BetPresets(3), "cannot afford the minimum")
	a.Nil(g.BetPresets(7))
}

func TestGame_Snapshot(t *testing.T) {
	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	snapshot.Validate(t, g.Snapshot())

	_, _ = g.StartRound()
	_, _ = g.SubmitAction(0, action.Bet, 40)
	snapshot.Validate(t, g.Snapshot())
}

func intPtr(i int) *int {
	return &i
}

func (g *Game) firstActiveSeat() int {
	active := g.activeParticipants()
	return active[0].seat
}

func TestGame_RestartRound(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, err := g.RestartRound()
	a.Equal(playable.IllegalActionError{Seat: -1, Action: "restart", Reason: "no round has been started"}, err)

	_, err = g.StartRound()
	a.NoError(err)
	_, err = g.SubmitAction(0, action.Bet, 40)
	a.NoError(err)
	a.Equal(960, chipsAt(g, 0))

	s, err := g.RestartRound()
	a.NoError(err)
	a.Equal(PhaseBetting, s.Phase)
	a.Equal(0, s.Pot)
	a.Equal(1, s.RoundNumber, "the round is replayed")
	a.Equal(-1, s.TurnSeat)
	for seat := 0; seat < 3; seat++ {
		a.Equal(1000, chipsAt(g, seat))
	}

	s, err = g.StartRound()
	a.NoError(err)
	a.Equal(&roles.Assignment{Dealer: 0, SmallBlind: 1, BigBlind: 2}, s.Roles, "roles don't rotate")
	a.Equal(0, s.BlindLevel.Index)
}

func TestGame_RestartRound_afterRiver(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, err := g.StartRound()
	a.NoError(err)
	payAround(t, g)
	a.Equal(PhaseFinished, g.phase)

	s, err := g.RestartRound()
	a.NoError(err)
	a.Equal(0, s.BlindLevel.Index, "an abandoned round keeps the blind level")
	a.Equal(1, s.RoundNumber)

	_, err = g.StartRound()
	a.NoError(err)
	payAround(t, g)
	s, err = g.ResolveRound(intPtr(0))
	a.NoError(err)
	a.Equal(1, s.LastResult.Round)
	a.Equal(1, s.BlindLevel.Index, "round 1 advances the level once")
}

func TestGame_foldWinKeepsBlindLevel(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, DefaultOptions(), 1000, 1000, 1000)
	_, err := g.StartRound()
	a.NoError(err)
	foldAround(t, g)

	s := g.Snapshot()
	a.True(s.LastResult.Automatic)
	a.Equal(0, s.BlindLevel.Index)
}
