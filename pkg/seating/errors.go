package seating

import "fmt"

// SeatOccupiedError is returned when a player is seated in a seat that already holds a player
type SeatOccupiedError struct {
	Index int
}

func (s SeatOccupiedError) Error() string {
	return fmt.Sprintf("seat %d is already occupied", s.Index)
}

// TableFullError is returned when every seat at the table is taken
type TableFullError struct {
	Capacity int
}

func (t TableFullError) Error() string {
	return fmt.Sprintf("table is full (%d seats)", t.Capacity)
}

// InvalidSeatError is returned when a seat index is outside of the table
type InvalidSeatError struct {
	Index int
}

func (i InvalidSeatError) Error() string {
	return fmt.Sprintf("invalid seat %d, expected 0-%d", i.Index, Capacity-1)
}

// DuplicatePlayerError is returned when a player is already seated elsewhere at the table
type DuplicatePlayerError struct {
	PlayerID string
	Index    int
}

func (d DuplicatePlayerError) Error() string {
	return fmt.Sprintf("player %s is already seated at seat %d", d.PlayerID, d.Index)
}
