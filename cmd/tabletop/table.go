package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"homegame-server/pkg/playable"
)

// table drives a single game from lines of input
type table struct {
	game   playable.Playable
	in     *bufio.Scanner
	prompt bool
}

func newTable(game playable.Playable, in io.Reader, prompt bool) *table {
	return &table{
		game:   game,
		in:     bufio.NewScanner(in),
		prompt: prompt,
	}
}

// seatPlayers fills seats 0..n-1 with the given names
func (t *table) seatPlayers(names []string, chips int) error {
	for i, name := range names {
		info := playable.AdditionalData{"name": name}
		if chips > 0 {
			info["chips"] = chips
		}

		if _, err := t.game.SeatPlayer(i, info.PlayerInfo()); err != nil {
			return err
		}
	}

	return nil
}

// run reads commands until the input ends or the user quits
func (t *table) run() error {
	t.flushLog()
	if err := render(t.game.GetSnapshot()); err != nil {
		return err
	}

	for {
		if t.prompt {
			fmt.Print("> ")
		}

		if !t.in.Scan() {
			return t.in.Err()
		}

		err := t.exec(t.in.Text())
		if errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			pterm.Error.Println(err)
		}
	}
}

func (t *table) exec(line string) error {
	cmd, err := parseCommand(line)
	if err != nil {
		return err
	}

	if cmd.help {
		pterm.Println(helpText)
		return nil
	}

	if !cmd.show {
		if _, _, err := t.game.Action(cmd.seat, cmd.payload); err != nil {
			return err
		}
	}

	t.flushLog()
	return render(t.game.GetSnapshot())
}

// flushLog prints every pending log message without blocking
func (t *table) flushLog() {
	seated := players(t.game.GetSnapshot())
	for {
		select {
		case msgs := <-t.game.LogChan():
			for _, msg := range msgs {
				pterm.Success.Println(formatLog(msg, seated))
			}
		default:
			return
		}
	}
}
