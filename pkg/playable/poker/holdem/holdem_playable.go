package holdem

import (
	"fmt"

	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/poker/action"
)

// Action performs a command on behalf of seat
func (g *Game) Action(seat int, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	switch message.Action {
	case "seat":
		if _, err := g.SeatPlayer(seat, message.AdditionalData.PlayerInfo()); err != nil {
			return nil, false, err
		}
	case "vacate":
		if err := g.VacateSeat(seat); err != nil {
			return nil, false, err
		}
	case "setDealer":
		if err := g.SetDealer(seat); err != nil {
			return nil, false, err
		}
	case "startRound":
		if _, err := g.StartRound(); err != nil {
			return nil, false, err
		}
	case "resolve":
		var winner *int
		if w, ok := message.AdditionalData.GetInt("winner"); ok {
			winner = &w
		}

		if _, err := g.ResolveRound(winner); err != nil {
			return nil, false, err
		}
	case "restart":
		if _, err := g.RestartRound(); err != nil {
			return nil, false, err
		}
	case "addBlindLevel":
		g.AddBlindLevel()
	default:
		name := message.Action
		if name == "placeBet" {
			name = "bet"
		}

		a, err := action.FromString(name)
		if err != nil {
			return nil, false, err
		}

		amount, _ := message.AdditionalData.GetInt("amount")
		if _, err := g.SubmitAction(seat, a, amount); err != nil {
			return nil, false, err
		}
	}

	return playable.OK(), true, nil
}

// Name returns the name
func (g *Game) Name() string {
	level := g.blinds.Current()
	return fmt.Sprintf("Texas Hold'em (${%d}/${%d})", level.Small, level.Big)
}

// Key returns the key
func (g *Game) Key() string {
	return "poker"
}

// LogChan returns a channel log messages must be sent on
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}
