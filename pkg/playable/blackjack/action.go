package blackjack

import (
	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
)

// SubmitAction records the status chosen by the seat holding the turn
// Each seat acts exactly once per round
func (g *Game) SubmitAction(seat int, status Status) (*Snapshot, error) {
	if g.phase != PhasePlaying {
		return nil, playable.IllegalActionError{Seat: seat, Action: string(status), Reason: "no round is being played"}
	}

	if seat == g.dealer {
		return nil, playable.IllegalActionError{Seat: seat, Action: string(status), Reason: "the dealer does not act"}
	}

	p, ok := g.participants[seat]
	if !ok {
		return nil, playable.IllegalActionError{Seat: seat, Action: string(status), Reason: "the seat is not in this round"}
	}

	if p.hasActed {
		return nil, playable.IllegalActionError{Seat: seat, Action: string(status), Reason: "the seat has already acted"}
	}

	if seat != g.turnSeat {
		return nil, playable.IllegalActionError{Seat: seat, Action: string(status), Reason: "it is not your turn"}
	}

	switch status {
	case StatusDouble, StatusSplit:
		// the bet is already in escrow, so 2*bet <= chips + bet
		if p.bet > p.Chips {
			return nil, playable.IllegalActionError{Seat: seat, Action: string(status), Reason: "not enough chips to match the bet"}
		}

		p.escrow += p.SubtractChips(p.bet)
	case StatusStand, StatusBlackjack, StatusLose:
	default:
		return nil, playable.IllegalActionError{Seat: seat, Action: string(status), Reason: "unknown action"}
	}

	p.status = status
	p.hasActed = true
	g.sendLog(p.ID, "{} %s", status.LogMessage(p.bet))
	g.logger.WithFields(logrus.Fields{
		"round":  g.roundNumber,
		"seat":   seat,
		"action": string(status),
	}).Debug("action")

	g.turnSeat = g.nextToAct(seat)
	if g.turnSeat < 0 {
		g.phase = PhaseFinished
		g.sendLog("", "every player has acted")
	}

	return g.Snapshot(), nil
}
