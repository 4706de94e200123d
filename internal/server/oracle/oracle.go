// Package oracle decides whether a stored file is still inside its declared
// access window. Implementations record a window at upload (Register) and
// answer Check on every access. Callers treat any error as a denial.
package oracle

import (
	"context"
	"errors"
	"time"
)

// Oracle is the external access authority.
type Oracle interface {
	// Register records that handle may be accessed for duration from now.
	Register(ctx context.Context, handle string, duration time.Duration) error
	// Check reports whether handle is inside its window right now.
	Check(ctx context.Context, handle string) (bool, error)
}

// ErrAlreadyRegistered is returned when a handle already has a window.
var ErrAlreadyRegistered = errors.New("handle already registered")
