package blackjack

import (
	"github.com/sirupsen/logrus"
	"homegame-server/pkg/roles"
	"homegame-server/pkg/seating"
)

// Outcome is how a seat fared against the dealer
type Outcome string

// Outcome constants
const (
	OutcomeWin       Outcome = "win"
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeLose      Outcome = "lose"
	OutcomePush      Outcome = "push"
)

// SeatResult is the settlement of a single seat
type SeatResult struct {
	Seat      int     `json:"seat"`
	PlayerID  string  `json:"playerId"`
	Status    Status  `json:"status"`
	HandValue int     `json:"handValue"`
	Wager     int     `json:"wager"`
	Outcome   Outcome `json:"outcome"`
	// Net is the change in chips over the round
	Net   int `json:"net"`
	Chips int `json:"chips"`
}

// RoundResult is the settlement of a round
type RoundResult struct {
	Round      int           `json:"round"`
	DealerHand int           `json:"dealerHand"`
	Seats      []*SeatResult `json:"seats"`
}

// ResolveRound settles each seat against the dealer and prepares the next round
func (g *Game) ResolveRound() (*Snapshot, error) {
	switch g.phase {
	case PhaseBetting:
		return nil, ErrNoRound
	case PhasePlaying:
		return nil, ErrRoundNotFinished
	}

	result := &RoundResult{
		Round:      g.roundNumber,
		DealerHand: g.dealerHand,
		Seats:      make([]*SeatResult, 0, len(g.participants)),
	}

	for seat := 0; seat < seating.Capacity; seat++ {
		p, ok := g.participants[seat]
		if !ok {
			continue
		}

		sr := g.settle(p)
		result.Seats = append(result.Seats, sr)

		if sr.Net >= 0 {
			g.sendLog(p.ID, "{} won ${%d}", sr.Net)
		} else {
			g.sendLog(p.ID, "{} lost ${%d}", -sr.Net)
		}
	}

	g.logger.WithFields(logrus.Fields{
		"round": g.roundNumber,
		"seats": len(result.Seats),
	}).Info("round resolved")

	g.lastResult = result
	g.nextRound()
	return g.Snapshot(), nil
}

// settle pays or collects the wager for p
func (g *Game) settle(p *participant) *SeatResult {
	p.AddChips(p.escrow)
	p.escrow = 0

	wager := p.wager()
	outcome := OutcomeLose

	switch p.status {
	case StatusBlackjack:
		outcome = OutcomeBlackjack
	case StatusStand, StatusDouble, StatusSplit:
		switch {
		case p.isBust():
			outcome = OutcomeLose
		case g.dealerHand > 21:
			outcome = OutcomeWin
		case p.handValue > g.dealerHand:
			outcome = OutcomeWin
		case p.handValue == g.dealerHand && g.options.PushOnTie:
			outcome = OutcomePush
		default:
			outcome = OutcomeLose
		}

		if outcome == OutcomeLose {
			p.status = StatusLose
		}
	}

	switch outcome {
	case OutcomeBlackjack:
		p.AddChips(p.bet * 3 / 2)
	case OutcomeWin:
		p.AddChips(wager)
	case OutcomeLose:
		p.SubtractChips(wager)
	}

	return &SeatResult{
		Seat:      p.seat,
		PlayerID:  p.ID,
		Status:    p.status,
		HandValue: p.handValue,
		Wager:     wager,
		Outcome:   outcome,
		Net:       p.Chips - p.startingChips,
		Chips:     p.Chips,
	}
}

// RestartRound abandons the current round without settling it
// Every stake is returned
func (g *Game) RestartRound() (*Snapshot, error) {
	if g.phase == PhaseBetting {
		return nil, ErrNoRound
	}

	for _, p := range g.participants {
		p.AddChips(p.escrow)
		p.escrow = 0
	}

	g.sendLog("", "round %d was abandoned", g.roundNumber)
	g.lastResult = nil
	g.nextRound()
	return g.Snapshot(), nil
}

func (g *Game) nextRound() {
	g.participants = make(map[int]*participant)
	g.bets = make(map[int]int)
	g.phase = PhaseBetting
	g.turnSeat = -1
	g.dealerHand = 0
	g.roundNumber++

	if g.options.RotateDealer {
		if next, err := roles.NextOccupied(g.dealer, g.table.OccupiedIndexes()); err == nil {
			g.dealer = next
			if player, ok := g.table.Player(next); ok {
				g.sendLog(player.ID, "{} is the dealer")
			}
		}
	}
}
