package mux

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/blackjack"
	"homegame-server/pkg/playable/poker/holdem"
	"homegame-server/pkg/roles"
	"homegame-server/pkg/room"
	"homegame-server/pkg/seating"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// conflicts are the engine errors caused by the state of the game rather than the request
var conflicts = []error{
	roles.ErrNotEnoughPlayers,
	holdem.ErrRoundInProgress,
	holdem.ErrRoundNotFinished,
	holdem.ErrWinnerRequired,
	blackjack.ErrRoundInProgress,
	blackjack.ErrRoundNotFinished,
	blackjack.ErrNoRound,
}

// writeGameError maps an error returned by a session to a status code
func writeGameError(w http.ResponseWriter, err error) {
	writeJSONError(w, gameErrorStatus(err), err)
}

func gameErrorStatus(err error) int {
	var (
		occupied   seating.SeatOccupiedError
		full       seating.TableFullError
		duplicate  seating.DuplicatePlayerError
		invalid    seating.InvalidSeatError
		illegal    playable.IllegalActionError
		invalidBet playable.InvalidBetAmountError
		tooMany    room.TooManySessionsError
	)

	switch {
	case errors.Is(err, room.ErrSessionNotFound), errors.Is(err, room.ErrSessionClosed):
		return http.StatusNotFound
	case errors.As(err, &occupied), errors.As(err, &full), errors.As(err, &duplicate), errors.As(err, &illegal):
		return http.StatusConflict
	case errors.As(err, &invalid), errors.As(err, &invalidBet):
		return http.StatusBadRequest
	case errors.As(err, &tooMany):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}

	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return http.StatusConflict
		}
	}

	// anything else is a command the game couldn't parse
	return http.StatusBadRequest
}
