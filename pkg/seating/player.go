package seating

// Player is a person seated at the table
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Chips  int    `json:"chips"`
}

// PlayerInfo is supplied by the caller when filling a seat
// ID is optional, one will be generated if it's blank
type PlayerInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Chips  int    `json:"chips"`
}

// AddChips adds chips to the player's stack
func (p *Player) AddChips(amount int) {
	p.Chips += amount
}

// SubtractChips removes chips from the player's stack
// The stack is floored at zero, the amount actually removed is returned
func (p *Player) SubtractChips(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}

	p.Chips -= amount
	return amount
}
