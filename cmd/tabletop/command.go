package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"homegame-server/pkg/playable"
)

var errQuit = errors.New("quit")

// aliases map the short commands typed at the table to game actions
var aliases = map[string]string{
	"dealer": "setDealer",
	"start":  "startRound",
	"level":  "addBlindLevel",
	"leave":  "vacate",
}

// command is a parsed line of input
type command struct {
	seat    int
	payload *playable.PayloadIn
	// show is true if the line only asks for the table to be redrawn
	show bool
	help bool
}

// parseCommand turns a line such as "bet 2 50" or "seat 3 Carol 500" into a payload
func parseCommand(line string) (*command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return &command{show: true}, nil
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "quit", "exit":
		return nil, errQuit
	case "show", "table":
		return &command{show: true}, nil
	case "help", "?":
		return &command{help: true}, nil
	case "seat":
		return parseSeat(args)
	case "resolve":
		cmd := &command{payload: &playable.PayloadIn{Action: "resolve", AdditionalData: playable.AdditionalData{}}}
		if len(args) > 0 {
			winner, err := parseInt("winner", args[0])
			if err != nil {
				return nil, err
			}

			cmd.payload.AdditionalData["winner"] = winner
		}

		return cmd, nil
	case "start", "restart", "level":
		return &command{payload: &playable.PayloadIn{Action: actionName(verb)}}, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%s needs a seat", verb)
	}

	seat, err := parseInt("seat", args[0])
	if err != nil {
		return nil, err
	}

	cmd := &command{
		seat: seat,
		payload: &playable.PayloadIn{
			Action:         actionName(verb),
			Seat:           seat,
			AdditionalData: playable.AdditionalData{},
		},
	}

	if len(args) > 1 {
		amount, err := parseInt("amount", args[1])
		if err != nil {
			return nil, err
		}

		cmd.payload.AdditionalData["amount"] = amount
	}

	return cmd, nil
}

// parseSeat handles "seat <index> [name] [chips]"
func parseSeat(args []string) (*command, error) {
	if len(args) == 0 {
		return nil, errors.New("seat needs a seat index")
	}

	seat, err := parseInt("seat", args[0])
	if err != nil {
		return nil, err
	}

	data := playable.AdditionalData{}
	rest := args[1:]
	if len(rest) > 0 {
		if chips, err := strconv.Atoi(rest[len(rest)-1]); err == nil {
			data["chips"] = chips
			rest = rest[:len(rest)-1]
		}
	}

	if len(rest) > 0 {
		data["name"] = strings.Join(rest, " ")
	}

	return &command{
		seat: seat,
		payload: &playable.PayloadIn{
			Action:         "seat",
			Seat:           seat,
			AdditionalData: data,
		},
	}, nil
}

func actionName(verb string) string {
	if name, ok := aliases[verb]; ok {
		return name
	}

	return verb
}

func parseInt(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", what, s)
	}

	return n, nil
}

const helpText = `seat <n> [name] [chips]   fill a seat
leave <n>                 vacate a seat
dealer <n>                choose the first dealer
start                     start a round
<action> <n> [amount]     act for seat n (fold, check, call, bet / stand, double, split, blackjack, lose)
bet <n> <amount>          place a bet
resolve [winner]          settle the round
restart                   void the round and return every stake
level                     add a blind level (poker)
show                      redraw the table
quit                      leave the table`
