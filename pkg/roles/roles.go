package roles

import (
	"encoding/json"
	"errors"
	"sort"
)

// ErrNotEnoughPlayers is returned when there are too few occupied seats to assign roles
var ErrNotEnoughPlayers = errors.New("need at least two players")

// Role is a position at the table that rotates between rounds
type Role int

// Role constants
const (
	Dealer Role = iota
	SmallBlind
	BigBlind
)

func (r Role) String() string {
	switch r {
	case Dealer:
		return "dealer"
	case SmallBlind:
		return "small-blind"
	case BigBlind:
		return "big-blind"
	}

	return ""
}

// MarshalJSON encodes the role as JSON
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(r),
		Name: r.String(),
	})
}

// Assignment is the seat holding each role
// With two players, the dealer also posts the small blind
type Assignment struct {
	Dealer     int `json:"dealer"`
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

// Roles returns the roles held by seat
func (a Assignment) Roles(seat int) []Role {
	var r []Role
	if a.Dealer == seat {
		r = append(r, Dealer)
	}

	if a.SmallBlind == seat {
		r = append(r, SmallBlind)
	}

	if a.BigBlind == seat {
		r = append(r, BigBlind)
	}

	return r
}

// HasRole returns true if seat holds any role
func (a Assignment) HasRole(seat int) bool {
	return len(a.Roles(seat)) > 0
}

// NextOccupied returns the next occupied seat strictly after the given seat
// Seats are circular, so this wraps around to the lowest occupied seat
func NextOccupied(after int, occupied []int) (int, error) {
	if len(occupied) == 0 {
		return 0, ErrNotEnoughPlayers
	}

	sorted := sortedCopy(occupied)
	for _, seat := range sorted {
		if seat > after {
			return seat, nil
		}
	}

	return sorted[0], nil
}

// Assign computes the roles for a round where dealer holds the button
// If dealer isn't an occupied seat, the button moves to the next occupied seat
func Assign(dealer int, occupied []int) (Assignment, error) {
	if len(occupied) < 2 {
		return Assignment{}, ErrNotEnoughPlayers
	}

	if !contains(occupied, dealer) {
		next, err := NextOccupied(dealer, occupied)
		if err != nil {
			return Assignment{}, err
		}

		dealer = next
	}

	if len(occupied) == 2 {
		// heads-up: the dealer posts the small blind
		other, _ := NextOccupied(dealer, occupied)
		return Assignment{
			Dealer:     dealer,
			SmallBlind: dealer,
			BigBlind:   other,
		}, nil
	}

	smallBlind, _ := NextOccupied(dealer, occupied)
	bigBlind, _ := NextOccupied(smallBlind, occupied)

	return Assignment{
		Dealer:     dealer,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
	}, nil
}

// Rotate moves the button to the next occupied seat after prevDealer and computes the roles
func Rotate(prevDealer int, occupied []int) (Assignment, error) {
	if len(occupied) < 2 {
		return Assignment{}, ErrNotEnoughPlayers
	}

	dealer, err := NextOccupied(prevDealer, occupied)
	if err != nil {
		return Assignment{}, err
	}

	return Assign(dealer, occupied)
}

func sortedCopy(seats []int) []int {
	sorted := make([]int, len(seats))
	copy(sorted, seats)
	sort.Ints(sorted)
	return sorted
}

func contains(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}

	return false
}
