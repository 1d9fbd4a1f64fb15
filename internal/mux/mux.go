package mux

import (
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"homegame-server/internal/jwt"
	"homegame-server/pkg/room"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
	logger  logrus.FieldLogger

	// store for testing purposes
	sessionRouter *gmux.Router
	hostRouter    *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		logger:  logrus.StandardLogger(),
	}

	this.sessionRouter = this.Router.PathPrefix("/session/{code:[A-Za-z0-9_-]+}").Subrouter()
	this.sessionRouter.Use(this.sessionMiddleware)

	this.hostRouter = this.sessionRouter.NewRoute().Subrouter()
	this.hostRouter.Use(this.hostMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	}

	// requires a session
	{
		r := this.sessionRouter
		r.Methods(http.MethodGet).Path("").Handler(this.getSession())
		r.Methods(http.MethodGet).Path("/log").Handler(this.getSessionLog())
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getSessionWS())
	}

	// requires the host token
	// depends on sessionMiddleware
	{
		r := this.hostRouter
		r.Methods(http.MethodDelete).Path("").Handler(this.deleteSession())
		r.Methods(http.MethodPost).Path("/seat/{index:[0-9]+}").Handler(this.postSessionSeat())
		r.Methods(http.MethodDelete).Path("/seat/{index:[0-9]+}").Handler(this.deleteSessionSeat())
		r.Methods(http.MethodPost).Path("/action").Handler(this.postSessionAction())
	}

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.Get(gmux.Vars(r)["code"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// hostMiddleware requires sessionMiddleware to execute first
func (m *Mux) hostMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		if !isHost(r, dealer) {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// hostToken returns the token from the access_token parameter or the bearer authorization header
func hostToken(r *http.Request) string {
	if token := r.FormValue("access_token"); token != "" {
		return token
	}

	authHeader := strings.Split(r.Header.Get("Authorization"), " ")
	if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
		return ""
	}

	return authHeader[1]
}

// isHost returns true if the request carries a host token issued for the dealer's session
func isHost(r *http.Request, dealer *room.Dealer) bool {
	token := hostToken(r)
	if token == "" {
		return false
	}

	code, err := jwt.ValidHost(token)
	if err != nil {
		return false
	}

	return code == dealer.Code()
}
