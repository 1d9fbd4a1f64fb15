package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer

	id     string
	isHost bool
}

// NewClient returns a new client object
// Only a client that presented the host token can send commands
func NewClient(conn *websocket.Conn, isHost bool) *Client {
	return &Client{
		send:   make(chan interface{}, 256),
		Close:  make(chan string, 1),
		Conn:   conn,
		id:     uuid.New().String(),
		isHost: isHost,
	}
}

// Send send a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// IsHost returns true if the client can send commands
func (c *Client) IsHost() bool {
	return c.isHost
}

// String returns a traceable identifier for the client and session
func (c *Client) String() string {
	code := ""
	if c.dealer != nil {
		code = c.dealer.code
	}

	return fmt.Sprintf("%s:%s", c.id, code)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}

// close asks the write loop to close the connection
func (c *Client) close(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}
