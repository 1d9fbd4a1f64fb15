package room

import (
	"errors"
	"fmt"

	"homegame-server/pkg/playable"
)

// ErrSessionNotFound is returned when no session has the given code
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionClosed is returned when a command is sent to a session that has ended
var ErrSessionClosed = errors.New("the session has ended")

// ErrNotHost is returned when a websocket client without the host token sends a command
var ErrNotHost = errors.New("only the host can send commands")

// TooManySessionsError is returned when the server is hosting the maximum number of sessions
type TooManySessionsError struct {
	Max int
}

func (t TooManySessionsError) Error() string {
	return fmt.Sprintf("the server is hosting the maximum of %d sessions", t.Max)
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
