package blackjack

import "homegame-server/pkg/seating"

// participant is a non-dealer seat in the current round
type participant struct {
	*seating.Player
	seat int

	bet       int
	handValue int
	status    Status
	hasActed  bool

	// escrow is the stake taken from the stack for the round
	escrow int
	// startingChips is the stack when the round started
	startingChips int
}

func newParticipant(seat int, player *seating.Player, bet int) *participant {
	return &participant{
		Player:        player,
		seat:          seat,
		bet:           bet,
		startingChips: player.Chips,
	}
}

// wager is the total amount at risk
func (p *participant) wager() int {
	switch p.status {
	case StatusDouble, StatusSplit:
		return p.bet * 2
	}

	return p.bet
}

// isBust returns true if the hand is over 21
func (p *participant) isBust() bool {
	return p.handValue > 21
}
