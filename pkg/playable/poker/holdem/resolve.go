package holdem

import (
	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/roles"
)

// RoundResult describes how the previous round was resolved
type RoundResult struct {
	Round      int    `json:"round"`
	WinnerSeat int    `json:"winnerSeat"`
	WinnerID   string `json:"winnerId"`
	Amount     int    `json:"amount"`
	// Automatic is true if every other seat folded
	Automatic bool `json:"automatic"`
}

// ResolveRound pays the pot to the winning seat once betting is complete
// If every other seat folded, the round has already been resolved automatically
func (g *Game) ResolveRound(winner *int) (*Snapshot, error) {
	if g.phase == PhasePlaying {
		return nil, ErrRoundNotFinished
	}

	if g.phase != PhaseFinished {
		return nil, playable.IllegalActionError{Seat: -1, Action: "resolve", Reason: "no round is awaiting a winner"}
	}

	if winner == nil {
		return nil, ErrWinnerRequired
	}

	p, ok := g.participants[*winner]
	if !ok || p.folded {
		return nil, playable.IllegalActionError{Seat: *winner, Action: "win", Reason: "the seat is not active in this round"}
	}

	// the level moves once per round played through the river
	g.blinds.Advance()
	g.payout(p, false)
	return g.Snapshot(), nil
}

// payout pays the pot to the winner, rotates the roles and prepares the next round
func (g *Game) payout(winner *participant, automatic bool) {
	amount := g.pot
	winner.AddChips(amount)

	g.lastResult = &RoundResult{
		Round:      g.roundNumber,
		WinnerSeat: winner.seat,
		WinnerID:   winner.ID,
		Amount:     amount,
		Automatic:  automatic,
	}

	g.sendLog(winner.ID, "{} won ${%d}", amount)
	g.logger.WithFields(logrus.Fields{
		"round":     g.roundNumber,
		"seat":      winner.seat,
		"amount":    amount,
		"automatic": automatic,
	}).Info("round resolved")

	g.pot = 0
	g.participants = make(map[int]*participant)
	g.turnSeat = -1
	g.stage = StagePreFlop
	g.phase = PhaseBetting
	g.roundNumber++

	if next, err := roles.Rotate(g.roles.Dealer, g.table.OccupiedIndexes()); err == nil {
		g.roles = next
		g.dealer = next.Dealer
	} else {
		// not enough players remain, the button stays put until someone sits down
		g.dealer = g.roles.Dealer
	}
}

// RestartRound abandons the current round and returns every commitment
// The round is replayed with the same roles and blind level
func (g *Game) RestartRound() (*Snapshot, error) {
	if g.phase == PhaseBetting {
		return nil, playable.IllegalActionError{Seat: -1, Action: "restart", Reason: "no round has been started"}
	}

	for _, p := range g.participants {
		p.AddChips(p.committed)
	}

	g.sendLog("", "round %d was abandoned", g.roundNumber)
	g.logger.WithField("round", g.roundNumber).Info("round abandoned")

	g.pot = 0
	g.participants = make(map[int]*participant)
	g.turnSeat = -1
	g.stage = StagePreFlop
	g.phase = PhaseBetting
	g.dealer = g.roles.Dealer
	return g.Snapshot(), nil
}
