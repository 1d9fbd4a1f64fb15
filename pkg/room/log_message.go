package room

import (
	"homegame-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent log messages
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	if count := len(m); count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// receivedLogMessages records messages from the game and forwards them to every client
// Note: this must only be called from within the run loop
func (d *Dealer) receivedLogMessages(messages []*playable.LogMessage) {
	if len(messages) == 0 {
		return
	}

	d.addLogMessages(messages)
	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  "log",
			Data: messages,
		})
	}
}

// drainLogMessages handles every log message the game has queued
// Note: this must only be called from within the run loop
func (d *Dealer) drainLogMessages() {
	for {
		select {
		case messages := <-d.game.LogChan():
			d.receivedLogMessages(messages)
		default:
			return
		}
	}
}
