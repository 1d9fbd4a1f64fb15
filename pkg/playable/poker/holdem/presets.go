package holdem

// Preset is a suggested bet size
type Preset struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// BetPresets returns suggested bet sizes for seat, each within the legal range
// No presets are returned if the seat cannot afford the minimum bet
func (g *Game) BetPresets(seat int) []Preset {
	p, ok := g.participants[seat]
	if !ok || p.folded {
		return nil
	}

	minBet := minimumBet(g.maxCommitted())
	if small := g.blinds.Current().Small; small > minBet {
		minBet = small
	}

	if p.Chips < minBet {
		return nil
	}

	clamp := func(amount int) int {
		if amount < minBet {
			return minBet
		}

		if amount > p.Chips {
			return p.Chips
		}

		return amount
	}

	return []Preset{
		{Label: "min", Amount: minBet},
		{Label: "1/3 pot", Amount: clamp(g.pot / 3)},
		{Label: "1/2 pot", Amount: clamp(g.pot / 2)},
		{Label: "2/3 pot", Amount: clamp(g.pot * 2 / 3)},
		{Label: "pot", Amount: clamp(g.pot)},
		{Label: "max", Amount: p.Chips},
	}
}
