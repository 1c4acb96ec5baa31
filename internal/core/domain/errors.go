package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested runbook does not exist,
	// even after re-running index discovery.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input, such as an
	// empty slug or a resource URI with the wrong scheme. It is raised
	// before any cache or network interaction.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFetchFailed indicates a runbook page could not be fetched or
	// parsed when its content was requested.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
