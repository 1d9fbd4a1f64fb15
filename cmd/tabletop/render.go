package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/blackjack"
	"homegame-server/pkg/playable/poker/holdem"
	"homegame-server/pkg/seating"
)

var moneyRe = regexp.MustCompile(`\$\{(-?\d+)}`)

// render prints the snapshot held in res
func render(res *playable.Response) error {
	var (
		title string
		data  pterm.TableData
		notes []string
	)

	switch s := res.Data.(type) {
	case *holdem.Snapshot:
		title = fmt.Sprintf("%s, round %d, %s", s.Name, s.RoundNumber, s.Phase)
		data = pokerTable(s)
		notes = pokerNotes(s)
	case *blackjack.Snapshot:
		title = fmt.Sprintf("%s, round %d, %s", s.Name, s.RoundNumber, s.Phase)
		data = blackjackTable(s)
		notes = blackjackNotes(s)
	default:
		return fmt.Errorf("cannot render %T", res.Data)
	}

	pterm.DefaultSection.Println(title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	for _, note := range notes {
		pterm.Info.Println(note)
	}

	return nil
}

func pokerTable(s *holdem.Snapshot) pterm.TableData {
	data := pterm.TableData{{"Seat", "Player", "Chips", "Committed", "Roles", ""}}
	for _, seat := range s.Seats {
		if !seat.Occupied {
			continue
		}

		roleNames := make([]string, len(seat.Roles))
		for i, r := range seat.Roles {
			roleNames[i] = r.String()
		}

		marker := ""
		switch {
		case seat.Folded:
			marker = "folded"
		case s.Phase == holdem.PhasePlaying && s.TurnSeat == seat.Index:
			marker = "to act"
		}

		data = append(data, []string{
			strconv.Itoa(seat.Index),
			seat.Player.Name,
			strconv.Itoa(seat.Player.Chips),
			strconv.Itoa(seat.Committed),
			strings.Join(roleNames, ", "),
			marker,
		})
	}

	return data
}

func pokerNotes(s *holdem.Snapshot) []string {
	notes := []string{
		fmt.Sprintf("pot $%d, blinds $%d/$%d, %s", s.Pot, s.BlindLevel.Small, s.BlindLevel.Big, s.Stage),
	}

	if s.Phase == holdem.PhasePlaying && s.TurnSeat >= 0 && s.PayAction != "" {
		label := moneyRe.ReplaceAllString(s.PayAction.Label(s.ToCall), "$$$1")
		notes = append(notes, fmt.Sprintf("seat %d to act: fold, %s or bet", s.TurnSeat, strings.ToLower(label)))
	}

	if r := s.LastResult; r != nil {
		notes = append(notes, fmt.Sprintf("round %d: seat %d won $%d", r.Round, r.WinnerSeat, r.Amount))
	}

	return notes
}

func blackjackTable(s *blackjack.Snapshot) pterm.TableData {
	data := pterm.TableData{{"Seat", "Player", "Chips", "Bet", "Hand", "Status"}}
	for _, seat := range s.Seats {
		if !seat.Occupied {
			continue
		}

		hand := ""
		status := string(seat.Status)
		switch {
		case seat.IsDealer:
			status = "dealer"
		case seat.InRound:
			hand = strconv.Itoa(seat.HandValue)
			if s.Phase == blackjack.PhasePlaying && s.TurnSeat == seat.Index {
				status = "to act"
			}
		}

		data = append(data, []string{
			strconv.Itoa(seat.Index),
			seat.Player.Name,
			strconv.Itoa(seat.Player.Chips),
			strconv.Itoa(seat.Bet),
			hand,
			status,
		})
	}

	return data
}

func blackjackNotes(s *blackjack.Snapshot) []string {
	var notes []string
	if s.Phase != blackjack.PhaseBetting {
		notes = append(notes, fmt.Sprintf("the dealer has %d", s.DealerHandValue))
	}

	if r := s.LastResult; r != nil {
		for _, seat := range r.Seats {
			notes = append(notes, fmt.Sprintf("round %d: seat %d %s (%+d)", r.Round, seat.Seat, seat.Outcome, seat.Net))
		}
	}

	return notes
}

// formatLog fills the player placeholder and money markup of a log message
func formatLog(msg *playable.LogMessage, seats []seating.Player) string {
	text := moneyRe.ReplaceAllString(msg.Message, "$$$1")
	for _, id := range msg.PlayerIDs {
		name := id
		for _, p := range seats {
			if p.ID == id {
				name = p.Name
				break
			}
		}

		text = strings.Replace(text, "{}", name, 1)
	}

	return text
}

// players returns a copy of every seated player in res
func players(res *playable.Response) []seating.Player {
	var out []seating.Player
	switch s := res.Data.(type) {
	case *holdem.Snapshot:
		for _, seat := range s.Seats {
			if seat.Player != nil {
				out = append(out, *seat.Player)
			}
		}
	case *blackjack.Snapshot:
		for _, seat := range s.Seats {
			if seat.Player != nil {
				out = append(out, *seat.Player)
			}
		}
	}

	return out
}
