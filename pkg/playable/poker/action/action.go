package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action is a betting action a seat can take on its turn
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
)

// actions in the order they are offered to a seat
var actions = []Action{Fold, Check, Call, Bet}

// All returns every action in presentation order
func All() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// FromString returns an action for the given identifier, ignoring case
func FromString(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if a.IsValid() {
		return a, nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	for _, known := range actions {
		if a == known {
			return true
		}
	}

	return false
}

// IsPayAction returns true for the actions that share the check/call handler
func (a Action) IsPayAction() bool {
	return a == Check || a == Call
}

func (a Action) String() string {
	if !a.IsValid() {
		panic("unknown action")
	}

	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// Label is the button text for the action, e.g. "Call ${20}"
func (a Action) Label(amount int) string {
	switch a {
	case Call, Bet:
		return fmt.Sprintf("%s ${%d}", a, amount)
	}

	return a.String()
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Bet:
		return fmt.Sprintf("bet ${%d}", amount)
	}

	return ""
}

type jsonAction struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonAction{
		ID:   string(a),
		Name: a.String(),
	})
}

// UnmarshalJSON accepts either the encoded object or a bare identifier
func (a *Action) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		var obj jsonAction
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		id = obj.ID
	}

	parsed, err := FromString(id)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}
