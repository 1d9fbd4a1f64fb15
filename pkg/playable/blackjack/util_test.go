package blackjack

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"homegame-server/pkg/seating"
)

// sequence returns each value in order, then repeats the last one
type sequence struct {
	values []int
	i      int
}

func (s *sequence) Intn(n int) int {
	v := s.values[len(s.values)-1]
	if s.i < len(s.values) {
		v = s.values[s.i]
		s.i++
	}

	return v % n
}

// hands returns a generator producing the given player hand values in seat order
func hands(values ...int) *sequence {
	s := &sequence{}
	for _, v := range values {
		s.values = append(s.values, v-minPlayerHand)
	}

	return s
}

// setupGame seats players with the given chips at seats 0..n-1
// Seat 0 is the dealer
func setupGame(t *testing.T, opts Options, generator *sequence, chips ...int) *Game {
	t.Helper()

	g, err := NewGame(logrus.StandardLogger(), generator, opts)
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

	if len(chips) > 0 {
		if err := g.SetDealer(0); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// startWithBets places the bets for seats 1..n and starts the round
func startWithBets(t *testing.T, g *Game, bets ...int) {
	t.Helper()

	for i, bet := range bets {
		if _, err := g.PlaceBet(i+1, bet); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := g.StartRound(); err != nil {
		t.Fatal(err)
	}
}

func chipsAt(g *Game, seat int) int {
	p, ok := g.table.Player(seat)
	if !ok {
		return -1
	}

	return p.Chips
}
