package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Seat(t *testing.T) {
	a := assert.New(t)

	table := New()
	p, err := table.Seat(2, PlayerInfo{Name: "Alice", Chips: 1000})
	a.NoError(err)
	a.Equal("Alice", p.Name)
	a.Equal(1000, p.Chips)
	a.NotEmpty(p.ID)

	p2, err := table.Seat(0, PlayerInfo{ID: "bob", Chips: -5})
	a.NoError(err)
	a.Equal("Player 1", p2.Name)
	a.Equal("bob", p2.ID)
	a.Equal(0, p2.Chips)

	a.Equal([]int{0, 2}, table.OccupiedIndexes())
	a.Equal(2, table.Count())

	found, ok := table.Player(2)
	a.True(ok)
	a.Same(p, found)

	_, ok = table.Player(1)
	a.False(ok)
	_, ok = table.Player(10)
	a.False(ok)
}

func TestTable_Seat_errors(t *testing.T) {
	a := assert.New(t)

	table := New()
	_, err := table.Seat(-1, PlayerInfo{})
	a.Equal(InvalidSeatError{Index: -1}, err)
	a.EqualError(err, "invalid seat -1, expected 0-7")

	_, err = table.Seat(Capacity, PlayerInfo{})
	a.Equal(InvalidSeatError{Index: Capacity}, err)

	_, err = table.Seat(3, PlayerInfo{ID: "carol"})
	a.NoError(err)

	_, err = table.Seat(3, PlayerInfo{ID: "dave"})
	a.Equal(SeatOccupiedError{Index: 3}, err)
	a.EqualError(err, "seat 3 is already occupied")

	_, err = table.Seat(4, PlayerInfo{ID: "carol"})
	a.Equal(DuplicatePlayerError{PlayerID: "carol", Index: 3}, err)
	a.EqualError(err, "player carol is already seated at seat 3")
}

func TestTable_Seat_full(t *testing.T) {
	a := assert.New(t)

	table := New()
	for i := 0; i < Capacity; i++ {
		_, err := table.Seat(i, PlayerInfo{})
		a.NoError(err)
	}

	_, err := table.Seat(0, PlayerInfo{})
	a.Equal(TableFullError{Capacity: Capacity}, err)
	a.EqualError(err, "table is full (8 seats)")

	_, err = table.Vacate(5)
	a.NoError(err)

	_, err = table.Seat(5, PlayerInfo{Name: "Late"})
	a.NoError(err)
}

func TestTable_Vacate(t *testing.T) {
	a := assert.New(t)

	table := New()
	p, _ := table.Seat(1, PlayerInfo{Name: "Alice"})

	removed, err := table.Vacate(1)
	a.NoError(err)
	a.Same(p, removed)
	a.Equal(0, table.Count())

	removed, err = table.Vacate(1)
	a.NoError(err)
	a.Nil(removed)

	_, err = table.Vacate(8)
	a.Equal(InvalidSeatError{Index: 8}, err)

	seat, err := table.Get(1)
	a.NoError(err)
	a.IsType(EmptySeat{}, seat)
}

func TestTable_Seats(t *testing.T) {
	a := assert.New(t)

	table := New()
	_, _ = table.Seat(6, PlayerInfo{Name: "Alice"})
	_, _ = table.Seat(1, PlayerInfo{Name: "Bob"})

	seats := table.Seats()
	a.Len(seats, Capacity)

	names := make([]string, 0)
	for i, seat := range seats {
		a.Equal(i, seat.Index())
		switch s := seat.(type) {
		case OccupiedSeat:
			names = append(names, s.Player.Name)
		case EmptySeat:
		default:
			t.Fatalf("unexpected seat type %T", s)
		}
	}

	a.Equal([]string{"Bob", "Alice"}, names)

	occupied := table.OccupiedSeats()
	a.Len(occupied, 2)
	a.Equal(1, occupied[0].Index())
	a.Equal(6, occupied[1].Index())

	idx, ok := table.FindPlayer(occupied[1].Player.ID)
	a.True(ok)
	a.Equal(6, idx)
}

func TestPlayer_SubtractChips(t *testing.T) {
	a := assert.New(t)

	p := &Player{Chips: 100}
	a.Equal(40, p.SubtractChips(40))
	a.Equal(60, p.Chips)

	a.Equal(60, p.SubtractChips(75))
	a.Equal(0, p.Chips)

	p.AddChips(15)
	a.Equal(15, p.Chips)
}
