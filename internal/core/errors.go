package core

import "errors"

// Input errors. They are reported before any simulation starts.
var (
	ErrEmptyInput    = errors.New("no processes to schedule")
	ErrDuplicateName = errors.New("duplicate process name")
	ErrInvalidField  = errors.New("invalid process field")
)

// Invariant violations. Valid input never produces them.
var (
	ErrDeadlock          = errors.New("scheduler deadlock")
	ErrMalformedTimeline = errors.New("malformed timeline")
	ErrUnknownProcess    = errors.New("unknown process")
)

func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrInvalidField)
}
