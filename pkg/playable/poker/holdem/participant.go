package holdem

import "homegame-server/pkg/seating"

// participant is a seat that is dealt into the current round
type participant struct {
	*seating.Player
	seat      int
	committed int
	folded    bool

	// pending is true until the seat has acted in the current stage
	pending bool
}

func newParticipant(seat int, player *seating.Player) *participant {
	return &participant{
		Player: player,
		seat:   seat,
	}
}

// commit moves chips from the player's stack into the round
func (p *participant) commit(amount int) int {
	amount = p.SubtractChips(amount)
	p.committed += amount
	return amount
}
