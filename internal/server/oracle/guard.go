package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/sethvargo/go-retry"
)

// GuardOptions bounds calls into the wrapped oracle.
type GuardOptions struct {
	// Timeout applies to each attempt.
	Timeout time.Duration
	// CheckRetries is the number of extra Check attempts after a failure.
	CheckRetries uint64
	// RegisterRetries is the number of extra Register attempts. Registration
	// is not idempotent on every backend, so the default is zero.
	RegisterRetries uint64
	// Backoff is the first pause between attempts; it doubles on each retry
	// up to maxGuardBackoff.
	Backoff time.Duration
}

const (
	defaultGuardTimeout = 60 * time.Second
	defaultGuardBackoff = 200 * time.Millisecond
	maxGuardBackoff     = 5 * time.Second
)

// Guard wraps an Oracle with timeouts and retries and reports every failure
// as common.ErrOracleUnavailable. The cause stays in the chain, so callers can
// still match ErrAlreadyRegistered.
type Guard struct {
	next Oracle
	opts GuardOptions
	log  logging.Logger
}

func NewGuard(next Oracle, opts GuardOptions, log logging.Logger) *Guard {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultGuardTimeout
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultGuardBackoff
	}
	return &Guard{next: next, opts: opts, log: log.With("module", "oracle.guard")}
}

func (g *Guard) backoff(retries uint64) retry.Backoff {
	return retry.WithMaxRetries(retries, retry.WithCappedDuration(maxGuardBackoff, retry.NewExponential(g.opts.Backoff)))
}

func (g *Guard) Register(ctx context.Context, handle string, duration time.Duration) error {
	err := retry.Do(ctx, g.backoff(g.opts.RegisterRetries), func(ctx context.Context) error {
		actx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()

		if err := g.next.Register(actx, handle, duration); err != nil {
			if errors.Is(err, ErrAlreadyRegistered) {
				return err
			}
			g.log.Warn(ctx, "oracle register attempt failed", "handle", handle, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: register: %w", common.ErrOracleUnavailable, err)
	}
	return nil
}

func (g *Guard) Check(ctx context.Context, handle string) (bool, error) {
	var granted bool
	err := retry.Do(ctx, g.backoff(g.opts.CheckRetries), func(ctx context.Context) error {
		actx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()

		ok, err := g.next.Check(actx, handle)
		if err != nil {
			g.log.Warn(ctx, "oracle check attempt failed", "handle", handle, "error", err)
			return retry.RetryableError(err)
		}
		granted = ok
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: check: %w", common.ErrOracleUnavailable, err)
	}
	return granted, nil
}
