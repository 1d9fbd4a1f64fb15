package holdem

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"homegame-server/pkg/playable/poker/action"
	"homegame-server/pkg/seating"
)

// setupGame seats a player with the given chips at seats 0..n-1
func setupGame(t *testing.T, opts Options, chips ...int) *Game {
	t.Helper()

	g, err := NewGame(logrus.StandardLogger(), opts)
	if err != nil {
		t.Fatal(err)
	}

	for i, c := range chips {
		if _, err := g.SeatPlayer(i, seating.PlayerInfo{
			ID:    fmt.Sprintf("p%d", i),
			Name:  fmt.Sprintf("Player %d", i+1),
			Chips: c,
		}); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

func chipsAt(g *Game, seat int) int {
	p, ok := g.table.Player(seat)
	if !ok {
		return -1
	}

	return p.Chips
}

func assertPotMatchesCommitments(t *testing.T, g *Game) {
	t.Helper()

	sum := 0
	for _, c := range g.Snapshot().CommittedThisRound {
		sum += c
	}

	assert.Equal(t, g.pot, sum, "sum of commitments equals pot")
}

// payAround checks or calls until the round leaves the playing phase
func payAround(t *testing.T, g *Game) {
	t.Helper()

	for g.phase == PhasePlaying {
		seat := g.turnSeat
		if _, err := g.SubmitAction(seat, g.PayAction(seat), 0); err != nil {
			t.Fatal(err)
		}
	}
}

// foldAround folds the seat holding the turn until the round is resolved
func foldAround(t *testing.T, g *Game) {
	t.Helper()

	for g.phase == PhasePlaying {
		if _, err := g.SubmitAction(g.turnSeat, action.Fold, 0); err != nil {
			t.Fatal(err)
		}
	}
}
