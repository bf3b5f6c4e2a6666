package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// A search with an empty letter set fails with this error.
	ErrInvalidInput = errors.New("invalid input")

	// Search Errors.

	// ErrNoMatch indicates every candidate was tried and none is a word.
	ErrNoMatch = errors.New("no valid word found")

	// ErrCancelled indicates the search was cancelled by the caller.
	ErrCancelled = errors.New("search cancelled")

	// Oracle Errors.

	// ErrRateLimited indicates the dictionary service rejected a request with 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrServiceError indicates the dictionary service answered with an unexpected status.
	ErrServiceError = errors.New("dictionary service error")

	// ErrTransport indicates the dictionary service could not be reached.
	ErrTransport = errors.New("dictionary service unreachable")
)
