package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"homegame-server/pkg/seating"
)

// Playable is a game session that can be driven by a presentation layer
type Playable interface {
	// Action performs a command on behalf of the seat
	// If playerResponse is not null, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for all connected clients
	Action(seat int, message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// SeatPlayer fills a seat
	SeatPlayer(seat int, info seating.PlayerInfo) (*seating.Player, error)

	// VacateSeat empties a seat
	VacateSeat(seat int) error

	// GetSnapshot returns a read-only copy of the current state
	GetSnapshot() *Response

	// Name returns the name of the game
	Name() string

	// Key returns the identifier of the game variant
	Key() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be sent like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string    `json:"uuid"`
	PlayerIDs []string  `json:"playerIds"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

// Response is a container for a message sent to the client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the client
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	Seat           int            `json:"seat"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// GetIntSlice returns a slice of integers
func (a AdditionalData) GetIntSlice(key string) ([]int, bool) {
	switch slice := a[key].(type) {
	case []int:
		return slice, true
	case []float64:
		ints := make([]int, len(slice))
		for i, val := range slice {
			ints[i] = int(val)
		}
		return ints, true
	case []interface{}:
		ints := make([]int, len(slice))
		for i, val := range slice {
			floatVal, ok := val.(float64)
			if !ok {
				return nil, false
			}

			ints[i] = int(floatVal)
		}
		return ints, true
	}

	return nil, false
}

// GetStringSlice returns a slice of strings
func (a AdditionalData) GetStringSlice(key string) ([]string, bool) {
	switch slice := a[key].(type) {
	case []string:
		return slice, true
	case []interface{}:
		strs := make([]string, len(slice))
		for i, val := range slice {
			s, ok := val.(string)
			if !ok {
				return nil, false
			}

			strs[i] = s
		}
		return strs, true
	}

	return nil, false
}

// PlayerInfo reads the seating details from the payload
func (a AdditionalData) PlayerInfo() seating.PlayerInfo {
	var info seating.PlayerInfo
	info.ID, _ = a.GetString("id")
	info.Name, _ = a.GetString("name")
	info.Avatar, _ = a.GetString("avatar")
	info.Chips, _ = a.GetInt("chips")
	return info
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID string, format string, a ...interface{}) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerID string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerID, format, a...)}
}
