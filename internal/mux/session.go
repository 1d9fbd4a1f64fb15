package mux

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	gmux "github.com/gorilla/mux"
	"homegame-server/internal/jwt"
	"homegame-server/internal/util"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/room"
	"homegame-server/pkg/room/gamefactory"
	"homegame-server/pkg/seating"
)

const maxNameLength = 40

type postSessionPayload struct {
	Game           string                  `json:"game"`
	Name           string                  `json:"name"`
	AdditionalData playable.AdditionalData `json:"additionalData"`
}

type sessionResponse struct {
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	Game        string             `json:"game"`
	Description string             `json:"description,omitempty"`
	HostToken   string             `json:"hostToken,omitempty"`
	State       *playable.Response `json:"state"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postSessionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		factory, err := gamefactory.Get(pp.Game)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("%w, expected one of: %s", err, strings.Join(gamefactory.Names(), ", ")))
			return
		}

		name := strings.TrimSpace(pp.Name)
		if name == "" {
			name = util.GetRandomName()
		}

		if len(name) > maxNameLength {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("name cannot be longer than %d characters", maxNameLength))
			return
		}

		description, err := factory.Details(pp.AdditionalData)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		game, err := factory.CreateGame(m.logger, pp.AdditionalData)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealer, err := m.pitBoss.Create(name, game)
		if err != nil {
			writeGameError(w, err)
			return
		}

		hostToken, err := jwt.SignHost(dealer.Code())
		if err != nil {
			_ = m.pitBoss.Close(dealer.Code())
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		state, err := dealer.Snapshot(r.Context())
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{
			Code:        dealer.Code(),
			Name:        dealer.Name(),
			Game:        dealer.GameKey(),
			Description: description,
			HostToken:   hostToken,
			State:       state,
		})
	}
}

func (m *Mux) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		state, err := dealer.Snapshot(r.Context())
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{
			Code:  dealer.Code(),
			Name:  dealer.Name(),
			Game:  dealer.GameKey(),
			State: state,
		})
	}
}

func (m *Mux) getSessionLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		messages, err := dealer.LogMessages(r.Context())
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

func (m *Mux) deleteSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		if err := m.pitBoss.Close(dealer.Code()); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, playable.OK())
	}
}

type postSessionSeatPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Chips  int    `json:"chips"`
}

func seatIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(gmux.Vars(r)["index"])
	if err != nil {
		return 0, errors.New("seat index must be a number")
	}

	return index, nil
}

func (m *Mux) postSessionSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := seatIndex(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		var pp postSessionSeatPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if len(pp.Name) > maxNameLength {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("name cannot be longer than %d characters", maxNameLength))
			return
		}

		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		player, err := dealer.SeatPlayer(r.Context(), index, seating.PlayerInfo{
			ID:     pp.ID,
			Name:   pp.Name,
			Avatar: pp.Avatar,
			Chips:  pp.Chips,
		})
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, player)
	}
}

func (m *Mux) deleteSessionSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := seatIndex(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		if err := dealer.VacateSeat(r.Context(), index); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, playable.OK())
	}
}

type postSessionActionResponse struct {
	Result *playable.Response `json:"result"`
	State  *playable.Response `json:"state"`
}

func (m *Mux) postSessionAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playable.PayloadIn
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Action == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("action is required"))
			return
		}

		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		result, err := dealer.Action(r.Context(), pp.Seat, &pp)
		if err != nil {
			writeGameError(w, err)
			return
		}

		state, err := dealer.Snapshot(r.Context())
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, postSessionActionResponse{
			Result: result,
			State:  state,
		})
	}
}
