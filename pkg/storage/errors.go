package storage

import "errors"

// ErrNotFound is returned when a requested item does not exist.
var ErrNotFound = errors.New("item not found")

// ErrConflict is returned when a commit's preconditions no longer hold, e.g.
// a row changed since it was read or a debit would drive a balance negative.
// Callers re-read and retry.
var ErrConflict = errors.New("conditional write conflict")

// ErrTooManyChanges is returned when a change set exceeds what the backend can
// apply atomically.
var ErrTooManyChanges = errors.New("change set exceeds transaction limit")
