package identity

import "errors"

var (
	// ErrUnauthenticated is returned when no valid session backs a request.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidEmail is returned when a sign-in email fails validation.
	ErrInvalidEmail = errors.New("invalid email address")
)
