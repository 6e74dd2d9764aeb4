// Package storage holds the concerns shared by every storage backend:
// the not-found error shape and transient-error retry policy. The backend
// drivers live in the subpackages.
package storage

import "errors"

// ErrNotFound is returned when a record doesn't exist in the store.
type ErrNotFound struct {
	Entity string
	Key    string
}

func (e ErrNotFound) Error() string {
	if e.Entity == "" {
		return "record not found"
	}
	if e.Key == "" {
		return e.Entity + " not found"
	}

	return e.Entity + " not found: " + e.Key
}

// IsNotFound reports whether err is, or wraps, an ErrNotFound.
func IsNotFound(err error) bool {
	var nf ErrNotFound

	return errors.As(err, &nf)
}
