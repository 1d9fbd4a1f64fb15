package holdem

import (
	"encoding/json"
	"fmt"
)

// Phase is the lifecycle of a round
type Phase int

// Phase constants
const (
	// PhaseBetting is before the round starts, seats can change and blinds are not yet posted
	PhaseBetting Phase = iota
	// PhasePlaying is when turns proceed through the stages
	PhasePlaying
	// PhaseFinished is when betting is complete and the round awaits a winner
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}

// Stage is a sub-phase of a betting round
type Stage int

// Stage constants
const (
	StagePreFlop Stage = iota
	StageFlop
	StageTurn
	StageRiver
)

func (s Stage) String() string {
	switch s {
	case StagePreFlop:
		return "pre-flop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

// BlindPosting determines whether blinds are deducted when a round starts
type BlindPosting string

// BlindPosting constants
const (
	// BlindPostingAutomatic deducts the blinds from the small and big blind when the round starts
	BlindPostingAutomatic BlindPosting = "automatic"
	// BlindPostingManual only displays the blinds, players must bet them
	BlindPostingManual BlindPosting = "manual"
)

// BlindPostingFromString returns the blind posting mode for the given identifier
func BlindPostingFromString(s string) (BlindPosting, error) {
	switch BlindPosting(s) {
	case BlindPostingAutomatic, BlindPostingManual:
		return BlindPosting(s), nil
	}

	return "", fmt.Errorf("unknown blind posting mode: %s", s)
}
