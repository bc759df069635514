package core

import "errors"

// Failure classes shared across feature packages. Services return these
// (wrapped or bare); handlers map them to HTTP statuses.
var (
	// ErrNotFound — a referenced platform/shop/user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict — a uniqueness constraint would be violated
	// (duplicate platform, shop, dish, user or favorite).
	ErrConflict = errors.New("already exists")

	// ErrBusy — store contention that survived the internal retries.
	ErrBusy = errors.New("store busy")
)
