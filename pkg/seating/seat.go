package seating

// Seat is one of the fixed slots at the table
// A Seat is always either an EmptySeat or an OccupiedSeat
type Seat interface {
	Index() int
	isSeat()
}

// EmptySeat is a seat without a player
type EmptySeat struct {
	index int
}

// Index returns the seat index
func (e EmptySeat) Index() int {
	return e.index
}

func (EmptySeat) isSeat() {}

// OccupiedSeat is a seat that holds a player
type OccupiedSeat struct {
	index  int
	Player *Player
}

// Index returns the seat index
func (o OccupiedSeat) Index() int {
	return o.index
}

func (OccupiedSeat) isSeat() {}
