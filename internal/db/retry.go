package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/HUST-25-SE/SaveBite/internal/core"
)

const (
	maxAttempts = 3
	retryDelay  = 100 * time.Millisecond
)

// WithRetry runs a write operation, retrying only the transient contention
// class with a linearly increasing backoff. Every other failure propagates
// on the first occurrence. Exhausted retries surface as core.ErrBusy.
func WithRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op(ctx)
		if err == nil || !IsTransient(err) {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-time.After(retryDelay * time.Duration(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return core.ErrBusy
}

// IsTransient reports whether err is lock contention worth retrying:
// serialization failure, deadlock, or an unavailable lock.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}

// IsUniqueViolation reports whether err is a unique-constraint reject.
// Writers pre-check uniqueness, but a concurrent insert between check and
// write loses to the constraint; callers map this to core.ErrConflict.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
