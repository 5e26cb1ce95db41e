package jobs

import "errors"

var (
	// ErrNotFound indicates no such job.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates the actor does not own the job.
	ErrForbidden = errors.New("forbidden")
)
