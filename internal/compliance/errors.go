package compliance

import "errors"

var (
	ErrNotFound     = errors.New("compliance item not found")
	ErrForbidden    = errors.New("not allowed")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoAttachment = errors.New("no file attached to this item")
)
