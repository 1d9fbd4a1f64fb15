package room

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/seating"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// Dealer is responsible for running a single session
// Every command is executed in the run loop, so the game is never accessed concurrently
type Dealer struct {
	code    string
	name    string
	game    playable.Playable
	logger  logrus.FieldLogger
	clients map[*Client]bool
	lock    sync.RWMutex

	// logMessages must only be accessed from the run loop
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
func NewDealer(logger logrus.FieldLogger, code, name string, game playable.Playable) *Dealer {
	return &Dealer{
		code:          code,
		name:          name,
		game:          game,
		logger:        logger.WithField("code", code),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Code returns the session code
func (d *Dealer) Code() string {
	return d.code
}

// Name returns the session name
func (d *Dealer) Name() string {
	return d.name
}

// GameKey returns the identifier of the game variant
func (d *Dealer) GameKey() string {
	return d.game.Key()
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendClientState()
			case stateGameEvent:
				d.sendGameData()
			}
		case fn := <-d.execInRunLoop:
			fn()
			d.drainLogMessages()
		case messages := <-d.game.LogChan():
			d.receivedLogMessages(messages)
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// enqueue schedules fn on the run loop without waiting for it
func (d *Dealer) enqueue(fn func()) bool {
	select {
	case d.execInRunLoop <- fn:
		return true
	case <-d.close:
		return false
	}
}

// exec runs fn in the run loop and waits for the result
func (d *Dealer) exec(ctx context.Context, fn func() error) error {
	result := make(chan error, 1)
	select {
	case d.execInRunLoop <- func() { result <- fn() }:
	case <-d.close:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-result:
		return err
	case <-d.close:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dealer) notify(s state) {
	select {
	case d.stateChanged <- s:
	case <-d.close:
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.notify(stateClientEvent)
	d.enqueue(func() {
		client.Send(d.game.GetSnapshot())
		if len(d.logMessages) > 0 {
			client.Send(&playable.Response{
				Key:  "log",
				Data: d.copyLogMessages(),
			})
		}
	})
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.notify(stateClientEvent)
		return false
	}

	return true
}

// EndShift is called when the session is over
// Connected clients are told the session ended and are disconnected
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
		for _, client := range d.Clients() {
			client.Send(&playable.Response{Key: "sessionEnded"})
			client.close("session ended")
		}
	})
}

// Snapshot returns the current state of the game
func (d *Dealer) Snapshot(ctx context.Context) (*playable.Response, error) {
	var res *playable.Response
	err := d.exec(ctx, func() error {
		res = d.game.GetSnapshot()
		return nil
	})

	return res, err
}

// LogMessages returns the most recent log messages
func (d *Dealer) LogMessages(ctx context.Context) ([]*playable.LogMessage, error) {
	var messages []*playable.LogMessage
	err := d.exec(ctx, func() error {
		messages = d.copyLogMessages()
		return nil
	})

	return messages, err
}

// SeatPlayer fills a seat and sends the new state to every client
func (d *Dealer) SeatPlayer(ctx context.Context, seat int, info seating.PlayerInfo) (*seating.Player, error) {
	var player *seating.Player
	err := d.exec(ctx, func() error {
		p, err := d.game.SeatPlayer(seat, info)
		if err != nil {
			return err
		}

		copied := *p
		player = &copied
		d.sendGameData()
		return nil
	})

	return player, err
}

// VacateSeat empties a seat and sends the new state to every client
func (d *Dealer) VacateSeat(ctx context.Context, seat int) error {
	return d.exec(ctx, func() error {
		if err := d.game.VacateSeat(seat); err != nil {
			return err
		}

		d.sendGameData()
		return nil
	})
}

// Action performs a game command on behalf of seat
func (d *Dealer) Action(ctx context.Context, seat int, msg *playable.PayloadIn) (*playable.Response, error) {
	var res *playable.Response
	err := d.exec(ctx, func() error {
		playerResponse, updateState, err := d.game.Action(seat, msg)
		if err != nil {
			return err
		}

		d.logger.WithFields(logrus.Fields{
			"seat":   seat,
			"action": msg.Action,
		}).Debug("action")

		if playerResponse != nil {
			playerResponse.Context = msg.Context
		}

		res = playerResponse
		if updateState {
			d.sendGameData()
		}

		return nil
	})

	return res, err
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	if !c.isHost {
		c.Send(newErrorResponse(msg.Context, ErrNotHost))
		return
	}

	res, err := d.Action(context.Background(), msg.Seat, msg)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if res != nil {
		c.Send(res)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	snapshot := d.game.GetSnapshot()
	for _, client := range d.Clients() {
		if !client.Send(snapshot) {
			d.logger.WithField("client", client.String()).Warn("client buffer is full, dropping snapshot")
		}
	}
}

type clientState struct {
	Connected int `json:"connected"`
	Hosts     int `json:"hosts"`
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendClientState() {
	clients := d.Clients()
	cs := clientState{Connected: len(clients)}
	for _, client := range clients {
		if client.isHost {
			cs.Hosts++
		}
	}

	for _, client := range clients {
		client.Send(&playable.Response{
			Key:  "clientState",
			Data: cs,
		})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) copyLogMessages() []*playable.LogMessage {
	messages := make([]*playable.LogMessage, len(d.logMessages))
	copy(messages, d.logMessages)
	return messages
}
