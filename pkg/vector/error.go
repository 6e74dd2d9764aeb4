package vector

import "errors"

var (
	// ErrNotFound is returned when a document is not found in the vector store.
	ErrNotFound = errors.New("document not found")

	// ErrDimensionMismatch is returned at driver construction when the
	// store already holds vectors of a different dimension than configured.
	// This is a startup-fatal configuration error, not a per-request one.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrConnection is returned when the vector store connection fails.
	ErrConnection = errors.New("vector store connection failed")
)
