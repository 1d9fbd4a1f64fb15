package holdem

import (
	"errors"

	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/poker/action"
	"homegame-server/pkg/seating"
)

// SubmitAction performs an action for the seat holding the turn
func (g *Game) SubmitAction(seat int, a action.Action, amount int) (*Snapshot, error) {
	if g.phase != PhasePlaying {
		return nil, playable.IllegalActionError{Seat: seat, Action: string(a), Reason: "no betting round is in progress"}
	}

	if seat != g.turnSeat {
		return nil, playable.IllegalActionError{Seat: seat, Action: string(a), Reason: "it is not your turn"}
	}

	p := g.participants[seat]

	switch a {
	case action.Fold:
		g.fold(p)
	case action.Check, action.Call:
		if toCall := g.ToCall(seat); a == action.Check && toCall > 0 {
			return nil, playable.IllegalActionError{Seat: seat, Action: string(a), Reason: "there is a bet to call"}
		}

		if err := g.pay(p); err != nil {
			if !errors.Is(err, errInsufficientChipsForCall) {
				return nil, err
			}

			g.sendLog(p.ID, "{} folded (could not cover ${%d})", g.ToCall(seat))
			p.folded = true
		}
	case action.Bet:
		if err := g.bet(p, amount); err != nil {
			return nil, err
		}
	default:
		return nil, playable.IllegalActionError{Seat: seat, Action: string(a), Reason: "unknown action"}
	}

	g.logger.WithFields(logrus.Fields{
		"round":  g.roundNumber,
		"stage":  g.stage.String(),
		"seat":   seat,
		"action": string(a),
		"amount": amount,
	}).Debug("action")

	g.advance(p)
	return g.Snapshot(), nil
}

// ToCall returns the number of chips seat must add to match the largest commitment
func (g *Game) ToCall(seat int) int {
	p, ok := g.participants[seat]
	if !ok {
		return 0
	}

	return g.maxCommitted() - p.committed
}

// PayAction returns whether the pay action for seat is a check or a call
func (g *Game) PayAction(seat int) action.Action {
	if g.ToCall(seat) == 0 {
		return action.Check
	}

	return action.Call
}

func (g *Game) maxCommitted() int {
	highest := 0
	for _, p := range g.participants {
		if p.committed > highest {
			highest = p.committed
		}
	}

	return highest
}

func (g *Game) fold(p *participant) {
	p.folded = true
	g.sendLog(p.ID, "{} %s", action.Fold.LogMessage(0))
}

func (g *Game) pay(p *participant) error {
	toCall := g.ToCall(p.seat)
	if p.Chips < toCall {
		return errInsufficientChipsForCall
	}

	g.pot += p.commit(toCall)
	if toCall == 0 {
		g.sendLog(p.ID, "{} %s", action.Check.LogMessage(0))
	} else {
		g.sendLog(p.ID, "{} %s", action.Call.LogMessage(toCall))
	}

	return nil
}

func (g *Game) bet(p *participant, amount int) error {
	highest := g.maxCommitted()
	if amount <= 0 || amount < highest || amount > p.Chips {
		return playable.InvalidBetAmountError{Amount: amount, Min: minimumBet(highest), Max: p.Chips}
	}

	g.pot += p.commit(amount)
	g.sendLog(p.ID, "{} %s", action.Bet.LogMessage(amount))

	if p.committed > highest {
		// a raise re-opens the action to everyone still in the round
		for _, other := range g.participants {
			if other != p && !other.folded {
				other.pending = true
			}
		}
	}

	return nil
}

// openStage marks every active seat as owing an action and gives the turn to the first one after seat
func (g *Game) openStage(after int) {
	for _, p := range g.participants {
		p.pending = !p.folded
	}

	next, _ := g.nextPending(after)
	g.turnSeat = next
}

// nextPending returns the next seat after the given seat that still owes an action
func (g *Game) nextPending(after int) (int, bool) {
	for i := 1; i <= seating.Capacity; i++ {
		seat := (after + i) % seating.Capacity
		if p, ok := g.participants[seat]; ok && !p.folded && p.pending {
			return seat, true
		}
	}

	return -1, false
}

func (g *Game) activeParticipants() []*participant {
	active := make([]*participant, 0, len(g.participants))
	for seat := 0; seat < seating.Capacity; seat++ {
		if p, ok := g.participants[seat]; ok && !p.folded {
			active = append(active, p)
		}
	}

	return active
}

// advance moves the turn after p has acted
func (g *Game) advance(p *participant) {
	p.pending = false

	if active := g.activeParticipants(); len(active) == 1 {
		g.payout(active[0], true)
		return
	}

	if next, ok := g.nextPending(p.seat); ok {
		g.turnSeat = next
		return
	}

	g.completeStage()
}

// completeStage is called once every active seat has acted in the stage
func (g *Game) completeStage() {
	if g.stage == StageRiver {
		g.phase = PhaseFinished
		g.turnSeat = -1
		g.sendLog("", "betting is complete, select a winner")
		return
	}

	g.stage++
	g.sendLog("", "dealing the %s", g.stage)
	g.openStage(g.roles.Dealer)
}

func minimumBet(highestCommitment int) int {
	if highestCommitment < 1 {
		return 1
	}

	return highestCommitment
}
