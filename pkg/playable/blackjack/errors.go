package blackjack

import "errors"

// ErrRoundInProgress is returned when an operation requires the betting phase
var ErrRoundInProgress = errors.New("a round is in progress")

// ErrRoundNotFinished is returned when resolving a round before every seat has acted
var ErrRoundNotFinished = errors.New("the round is not finished")

// ErrNoRound is returned when resolving or restarting without a round
var ErrNoRound = errors.New("no round has been started")
