package room

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/token"
)

// maxCodeAttempts is the number of times a colliding session code is regenerated
const maxCodeAttempts = 5

// Options configures the PitBoss
type Options struct {
	CodeLength int
	// MaxSessions is the maximum number of concurrent sessions, zero is unlimited
	MaxSessions int
}

// PitBoss is responsible for dispatching sessions to dealers
type PitBoss struct {
	options Options
	logger  logrus.FieldLogger
	dealers map[string]*Dealer
	lock    sync.RWMutex
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, opts Options) *PitBoss {
	return &PitBoss{
		options: opts,
		logger:  logger,
		dealers: make(map[string]*Dealer),
	}
}

// Create starts a new session for the game
func (p *PitBoss) Create(name string, game playable.Playable) (*Dealer, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.options.MaxSessions > 0 && len(p.dealers) >= p.options.MaxSessions {
		return nil, TooManySessionsError{Max: p.options.MaxSessions}
	}

	code, err := p.generateCode()
	if err != nil {
		return nil, err
	}

	dealer := NewDealer(p.logger, code, name, game)
	dealer.StartShift()
	p.dealers[code] = dealer

	p.logger.WithFields(logrus.Fields{
		"code": code,
		"game": game.Key(),
	}).Info("session created")

	return dealer, nil
}

// NOTE: the lock must be held
func (p *PitBoss) generateCode() (string, error) {
	var code string
	for i := 0; i < maxCodeAttempts; i++ {
		var err error
		if code, err = token.Generate(p.options.CodeLength); err != nil {
			return "", err
		}

		if _, found := p.dealers[code]; !found {
			return code, nil
		}
	}

	return "", fmt.Errorf("could not generate a unique session code after %d attempts", maxCodeAttempts)
}

// Get returns the dealer for the session code
func (p *PitBoss) Get(code string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, found := p.dealers[code]
	if !found {
		return nil, ErrSessionNotFound
	}

	return dealer, nil
}

// Close ends the session
func (p *PitBoss) Close(code string) error {
	p.lock.Lock()
	dealer, found := p.dealers[code]
	delete(p.dealers, code)
	p.lock.Unlock()

	if !found {
		return ErrSessionNotFound
	}

	dealer.EndShift()
	p.logger.WithField("code", code).Info("session ended")
	return nil
}

// Count returns the number of sessions
func (p *PitBoss) Count() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.dealers)
}

// EndShift ends every session
func (p *PitBoss) EndShift() {
	p.lock.Lock()
	dealers := p.dealers
	p.dealers = make(map[string]*Dealer)
	p.lock.Unlock()

	for _, dealer := range dealers {
		dealer.EndShift()
	}
}
