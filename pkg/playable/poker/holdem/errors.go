package holdem

import "errors"

// ErrWinnerRequired is returned when a finished round is resolved without a winner
var ErrWinnerRequired = errors.New("a winner must be selected")

// ErrRoundInProgress is returned when an operation requires the round to be over
var ErrRoundInProgress = errors.New("a round is in progress")

// ErrRoundNotFinished is returned when resolving a round before betting has completed
var ErrRoundNotFinished = errors.New("the round is not finished")

// errInsufficientChipsForCall never leaves the package, the call is converted to a fold
var errInsufficientChipsForCall = errors.New("insufficient chips to call")
