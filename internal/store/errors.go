package store

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when a user insert hits the unique
// email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicatePairingCode is returned when a generated pairing code
// collides with an existing one. Callers retry with a fresh code.
var ErrDuplicatePairingCode = errors.New("pairing code already in use")

const codeUniqueViolation = "23505"

func uniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation {
		return pqErr.Constraint == constraint
	}
	return false
}
