package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/room/gamefactory"
)

// CLI is the tabletop command line
type CLI struct {
	Verbose bool `kong:"short='v',help='Log engine events'"`

	Poker     PokerCmd     `kong:"cmd,help='Run a poker table'"`
	Blackjack BlackjackCmd `kong:"cmd,help='Run a blackjack table'"`
}

// Seats are the flags shared by every game
type Seats struct {
	Player []string `kong:"short='p',help='Seat a player, repeat for each seat'"`
	Chips  int      `kong:"help='Starting chips, defaults to the house config'"`
}

// PokerCmd starts a hold'em table
type PokerCmd struct {
	Seats
	Blinds  []string `kong:"help='Blind levels as small/big, in order'"`
	Posting string   `kong:"enum='automatic,manual',default='automatic',help='How blinds are posted'"`
}

// Run starts the table
func (c *PokerCmd) Run(globals *CLI) error {
	data := c.additionalData()
	data["blindPosting"] = c.Posting
	if len(c.Blinds) > 0 {
		data["blindLevels"] = c.Blinds
	}

	return play(globals, "poker", data, c.Player, c.Chips)
}

// BlackjackCmd starts a blackjack table
type BlackjackCmd struct {
	Seats
	Dealer    int   `kong:"help='The dealer hand value'"`
	PushOnTie bool  `kong:"help='Return the wager when a hand ties the dealer'"`
	Rotate    bool  `kong:"help='Pass the dealer to the next seat after each round'"`
	Seed      int64 `kong:"help='Seed player hands for a repeatable session'"`
}

// Run starts the table
func (c *BlackjackCmd) Run(globals *CLI) error {
	data := c.additionalData()
	data["pushOnTie"] = c.PushOnTie
	data["rotateDealer"] = c.Rotate
	if c.Dealer > 0 {
		data["dealerHandValue"] = c.Dealer
	}

	if c.Seed != 0 {
		data["seed"] = int(c.Seed)
	}

	return play(globals, "blackjack", data, c.Player, c.Chips)
}

func (s Seats) additionalData() playable.AdditionalData {
	data := playable.AdditionalData{}
	if s.Chips > 0 {
		data["startingChips"] = s.Chips
	}

	return data
}

func play(globals *CLI, kind string, data playable.AdditionalData, names []string, chips int) error {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if globals.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	factory, err := gamefactory.Get(kind)
	if err != nil {
		return err
	}

	game, err := factory.CreateGame(logger, data)
	if err != nil {
		return err
	}

	t := newTable(game, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
	if err := t.seatPlayers(splitNames(names), chips); err != nil {
		return err
	}

	return t.run()
}

// splitNames accepts both repeated flags and comma separated lists
func splitNames(names []string) []string {
	var out []string
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("tabletop"),
		kong.Description("Track chips for a home game from the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	err := ctx.Run(cli)
	ctx.FatalIfErrorf(err)
}
