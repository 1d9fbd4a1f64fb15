package playable

import "fmt"

// IllegalActionError is returned when a seat attempts an action it is not allowed to perform
// e.g., acting out of turn, acting twice, or acting outside of a round
type IllegalActionError struct {
	Seat   int
	Action string
	Reason string
}

func (i IllegalActionError) Error() string {
	if i.Action == "" {
		return fmt.Sprintf("seat %d: %s", i.Seat, i.Reason)
	}

	return fmt.Sprintf("seat %d cannot %s: %s", i.Seat, i.Action, i.Reason)
}

// InvalidBetAmountError is returned when a bet is outside of the permitted range
type InvalidBetAmountError struct {
	Amount int
	Min    int
	Max    int
}

func (i InvalidBetAmountError) Error() string {
	if i.Max < i.Min {
		return fmt.Sprintf("invalid bet of ${%d}, at least ${%d} is required but only ${%d} is available", i.Amount, i.Min, i.Max)
	}

	return fmt.Sprintf("invalid bet of ${%d}, must be between ${%d} and ${%d}", i.Amount, i.Min, i.Max)
}
