package users

import "errors"

var (
	// ErrNotFound indicates no account matches.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInactive indicates a deactivated account.
	ErrInactive = errors.New("account is deactivated")

	// ErrForbidden indicates the actor may not manage the target account.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
