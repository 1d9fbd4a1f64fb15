package blackjack

import (
	"encoding/json"
	"fmt"
)

// Phase is the lifecycle of a round
type Phase int

// Phase constants
const (
	PhaseBetting Phase = iota
	PhasePlaying
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

// Status is the action a seat took for the round
type Status string

// Status constants
const (
	StatusWaiting   Status = ""
	StatusStand     Status = "stand"
	StatusDouble    Status = "double"
	StatusSplit     Status = "split"
	StatusBlackjack Status = "blackjack"
	StatusLose      Status = "lose"
)

// StatusFromString returns the status a seat can choose for the given identifier
func StatusFromString(s string) (Status, error) {
	switch Status(s) {
	case StatusStand, StatusDouble, StatusSplit, StatusBlackjack, StatusLose:
		return Status(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

// LogMessage returns a message formatted for the log
func (s Status) LogMessage(bet int) string {
	switch s {
	case StatusStand:
		return "stands"
	case StatusDouble:
		return fmt.Sprintf("doubled down to ${%d}", bet*2)
	case StatusSplit:
		return fmt.Sprintf("split, playing two hands of ${%d}", bet)
	case StatusBlackjack:
		return "has blackjack"
	case StatusLose:
		return "loses"
	}

	return ""
}
