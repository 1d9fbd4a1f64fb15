package seating

import (
	"fmt"

	"github.com/google/uuid"
)

// Capacity is the number of seats at a table
const Capacity = 8

// Table is a fixed arrangement of seats
// Seat order is significant, it defines turn order and role rotation
type Table struct {
	seats [Capacity]Seat
}

// New returns a table with every seat empty
func New() *Table {
	t := &Table{}
	for i := range t.seats {
		t.seats[i] = EmptySeat{index: i}
	}

	return t
}

// Seat places a player in the seat at index
func (t *Table) Seat(index int, info PlayerInfo) (*Player, error) {
	if index < 0 || index >= Capacity {
		return nil, InvalidSeatError{Index: index}
	}

	if t.Count() == Capacity {
		return nil, TableFullError{Capacity: Capacity}
	}

	if _, ok := t.seats[index].(OccupiedSeat); ok {
		return nil, SeatOccupiedError{Index: index}
	}

	if info.ID != "" {
		if existing, found := t.FindPlayer(info.ID); found {
			return nil, DuplicatePlayerError{PlayerID: info.ID, Index: existing}
		}
	} else {
		info.ID = uuid.New().String()
	}

	if info.Name == "" {
		info.Name = fmt.Sprintf("Player %d", index+1)
	}

	if info.Chips < 0 {
		info.Chips = 0
	}

	player := &Player{
		ID:     info.ID,
		Name:   info.Name,
		Avatar: info.Avatar,
		Chips:  info.Chips,
	}

	t.seats[index] = OccupiedSeat{index: index, Player: player}
	return player, nil
}

// Vacate removes the player from the seat at index
// If the seat is already empty, nil is returned
func (t *Table) Vacate(index int) (*Player, error) {
	if index < 0 || index >= Capacity {
		return nil, InvalidSeatError{Index: index}
	}

	switch seat := t.seats[index].(type) {
	case OccupiedSeat:
		t.seats[index] = EmptySeat{index: index}
		return seat.Player, nil
	case EmptySeat:
		return nil, nil
	}

	panic("unknown seat type")
}

// Get returns the seat at index
func (t *Table) Get(index int) (Seat, error) {
	if index < 0 || index >= Capacity {
		return nil, InvalidSeatError{Index: index}
	}

	return t.seats[index], nil
}

// Player returns the player sitting at index
func (t *Table) Player(index int) (*Player, bool) {
	if index < 0 || index >= Capacity {
		return nil, false
	}

	if seat, ok := t.seats[index].(OccupiedSeat); ok {
		return seat.Player, true
	}

	return nil, false
}

// FindPlayer returns the seat index of the player with the given ID
func (t *Table) FindPlayer(id string) (int, bool) {
	for _, seat := range t.OccupiedSeats() {
		if seat.Player.ID == id {
			return seat.Index(), true
		}
	}

	return 0, false
}

// Seats returns all seats in index order
func (t *Table) Seats() []Seat {
	seats := make([]Seat, Capacity)
	copy(seats, t.seats[:])
	return seats
}

// OccupiedSeats returns the occupied seats in ascending index order
// This is the canonical turn order
func (t *Table) OccupiedSeats() []OccupiedSeat {
	occupied := make([]OccupiedSeat, 0, Capacity)
	for _, seat := range t.seats {
		if o, ok := seat.(OccupiedSeat); ok {
			occupied = append(occupied, o)
		}
	}

	return occupied
}

// OccupiedIndexes returns the indexes of the occupied seats in ascending order
func (t *Table) OccupiedIndexes() []int {
	occupied := t.OccupiedSeats()
	indexes := make([]int, len(occupied))
	for i, seat := range occupied {
		indexes[i] = seat.Index()
	}

	return indexes
}

// Count returns the number of occupied seats
func (t *Table) Count() int {
	return len(t.OccupiedSeats())
}
