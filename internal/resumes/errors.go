package resumes

import (
	"errors"

	"peso-backend/resume/model"
)

var (
	// ErrNotFound indicates no resume record exists for the user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotSaved indicates a download was requested before a successful save.
	ErrNotSaved = errors.New("resume has not been saved")
)

// ValidationError carries the field-keyed messages for a rejected save.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	return "resume failed validation"
}
