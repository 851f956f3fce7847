package errors

import "errors"

// Common application errors shared across repositories, services and handlers.
var (
	// ErrNotFound is returned when a record or resource does not exist.
	// Cross-owner reads are also reported as ErrNotFound so that callers
	// cannot probe for the existence of other users' records.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned for missing, malformed or unrecognized tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when an authenticated user lacks admin rights.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is returned for invalid request input.
	ErrValidation = errors.New("validation failed")

	// ErrExpiredToken is returned when an auth token exists but has expired.
	ErrExpiredToken = errors.New("token is expired")

	// ErrConflict is returned for state conflicts, e.g. a duplicate email
	// on registration.
	ErrConflict = errors.New("resource state conflict")
)
