package blackjack

import (
	"homegame-server/pkg/playable"
)

var _ playable.Playable = (*Game)(nil)

// Action performs a command on behalf of seat
func (g *Game) Action(seat int, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	switch message.Action {
	case "seat":
		_, err = g.SeatPlayer(seat, message.AdditionalData.PlayerInfo())
	case "vacate":
		err = g.VacateSeat(seat)
	case "setDealer":
		err = g.SetDealer(seat)
	case "bet", "placeBet":
		amount, _ := message.AdditionalData.GetInt("amount")
		_, err = g.PlaceBet(seat, amount)
	case "startRound":
		_, err = g.StartRound()
	case "resolve":
		_, err = g.ResolveRound()
	case "restart":
		_, err = g.RestartRound()
	default:
		var status Status
		if status, err = StatusFromString(message.Action); err == nil {
			_, err = g.SubmitAction(seat, status)
		}
	}

	if err != nil {
		return nil, false, err
	}

	return playable.OK(), true, nil
}

// Name returns the name
func (g *Game) Name() string {
	return "Blackjack"
}

// Key returns the key
func (g *Game) Key() string {
	return "blackjack"
}

// LogChan returns a channel log messages must be sent on
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}
