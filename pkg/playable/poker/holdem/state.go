package holdem

import (
	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/poker/action"
	"homegame-server/pkg/roles"
	"homegame-server/pkg/seating"
)

// Snapshot is a read-only copy of the session
type Snapshot struct {
	Name               string            `json:"name"`
	Phase              Phase             `json:"phase"`
	Stage              Stage             `json:"stage"`
	Seats              []*SeatState      `json:"seats"`
	Pot                int               `json:"pot"`
	CommittedThisRound []int             `json:"committedThisRound"`
	TurnSeat           int               `json:"turnSeat"`
	RoundNumber        int               `json:"roundNumber"`
	BlindLevel         BlindLevelState   `json:"blindLevel"`
	BlindPosting       BlindPosting      `json:"blindPosting"`
	Roles              *roles.Assignment `json:"roles"`

	// the following are for the seat holding the turn
	PayAction  action.Action `json:"payAction,omitempty"`
	ToCall     int           `json:"toCall"`
	BetPresets []Preset      `json:"betPresets,omitempty"`

	LastResult *RoundResult `json:"lastResult"`
}

// SeatState is the state of an individual seat
type SeatState struct {
	Index     int             `json:"index"`
	Occupied  bool            `json:"occupied"`
	Player    *seating.Player `json:"player,omitempty"`
	InRound   bool            `json:"inRound"`
	Committed int             `json:"committed"`
	Folded    bool            `json:"folded"`
	Roles     []roles.Role    `json:"roles"`
}

// BlindLevelState is the active blind level
type BlindLevelState struct {
	Index  int  `json:"index"`
	Small  int  `json:"small"`
	Big    int  `json:"big"`
	IsLast bool `json:"isLast"`
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() *Snapshot {
	level := g.blinds.Current()
	assignment := g.currentRoles()

	seats := make([]*SeatState, seating.Capacity)
	committed := make([]int, seating.Capacity)
	for i, seat := range g.table.Seats() {
		state := &SeatState{Index: i}
		if o, ok := seat.(seating.OccupiedSeat); ok {
			player := *o.Player
			state.Occupied = true
			state.Player = &player
			if assignment != nil {
				state.Roles = assignment.Roles(i)
			}
		}

		if p, ok := g.participants[i]; ok {
			state.InRound = true
			state.Committed = p.committed
			state.Folded = p.folded
			committed[i] = p.committed
		}

		seats[i] = state
	}

	s := &Snapshot{
		Name:               g.Name(),
		Phase:              g.phase,
		Stage:              g.stage,
		Seats:              seats,
		Pot:                g.pot,
		CommittedThisRound: committed,
		TurnSeat:           g.turnSeat,
		RoundNumber:        g.roundNumber,
		BlindLevel: BlindLevelState{
			Index:  g.blinds.Index(),
			Small:  level.Small,
			Big:    level.Big,
			IsLast: g.blinds.IsLast(),
		},
		BlindPosting: g.options.BlindPosting,
		Roles:        assignment,
		LastResult:   g.lastResult,
	}

	if g.phase == PhasePlaying && g.turnSeat >= 0 {
		s.PayAction = g.PayAction(g.turnSeat)
		s.ToCall = g.ToCall(g.turnSeat)
		s.BetPresets = g.BetPresets(g.turnSeat)
	}

	return s
}

// currentRoles returns the roles for the round in progress
// Before a round starts, the roles that the next round would use are returned
func (g *Game) currentRoles() *roles.Assignment {
	if g.phase != PhaseBetting {
		assignment := g.roles
		return &assignment
	}

	occupied := g.table.OccupiedIndexes()
	dealer := g.dealer
	if dealer < 0 && len(occupied) > 0 {
		dealer = occupied[0]
	}

	assignment, err := roles.Assign(dealer, occupied)
	if err != nil {
		return nil
	}

	return &assignment
}

// GetSnapshot returns the snapshot wrapped for the client
func (g *Game) GetSnapshot() *playable.Response {
	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  g.Snapshot(),
	}
}
