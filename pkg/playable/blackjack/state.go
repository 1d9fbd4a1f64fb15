package blackjack

import (
	"homegame-server/pkg/playable"
	"homegame-server/pkg/seating"
)

// Snapshot is a read-only copy of the game
type Snapshot struct {
	Name            string       `json:"name"`
	Phase           Phase        `json:"phase"`
	Seats           []*SeatState `json:"seats"`
	DealerSeat      int          `json:"dealerSeat"`
	DealerHandValue int          `json:"dealerHandValue"`
	TurnSeat        int          `json:"turnSeat"`
	RoundNumber     int          `json:"roundNumber"`
	PushOnTie       bool         `json:"pushOnTie"`
	LastResult      *RoundResult `json:"lastResult"`
}

// SeatState is the state of an individual seat
type SeatState struct {
	Index     int             `json:"index"`
	Occupied  bool            `json:"occupied"`
	Player    *seating.Player `json:"player,omitempty"`
	IsDealer  bool            `json:"isDealer"`
	InRound   bool            `json:"inRound"`
	Bet       int             `json:"bet"`
	Wager     int             `json:"wager"`
	HandValue int             `json:"handValue"`
	Status    Status          `json:"status"`
	HasActed  bool            `json:"hasActed"`
	// CanDouble is true if the seat has enough chips to double or split
	CanDouble bool `json:"canDouble"`
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() *Snapshot {
	dealer := g.dealerSeat()
	seats := make([]*SeatState, seating.Capacity)
	for i, seat := range g.table.Seats() {
		state := &SeatState{Index: i}
		if o, ok := seat.(seating.OccupiedSeat); ok {
			player := *o.Player
			state.Occupied = true
			state.Player = &player
			state.IsDealer = i == dealer
			state.Bet = g.bets[i]
		}

		if p, ok := g.participants[i]; ok {
			state.InRound = true
			state.Bet = p.bet
			state.Wager = p.wager()
			state.HandValue = p.handValue
			state.Status = p.status
			state.HasActed = p.hasActed
			state.CanDouble = !p.hasActed && p.bet <= p.Chips
		}

		seats[i] = state
	}

	return &Snapshot{
		Name:            g.Name(),
		Phase:           g.phase,
		Seats:           seats,
		DealerSeat:      dealer,
		DealerHandValue: g.dealerHand,
		TurnSeat:        g.turnSeat,
		RoundNumber:     g.roundNumber,
		PushOnTie:       g.options.PushOnTie,
		LastResult:      g.lastResult,
	}
}

// GetSnapshot returns the snapshot wrapped for the client
func (g *Game) GetSnapshot() *playable.Response {
	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  g.Snapshot(),
	}
}
