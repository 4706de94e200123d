package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/oracle"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/timevault/internal/timex"
	"github.com/google/uuid"
)

// newTokenID is a seam for tests; uuid.NewRandom draws 122 random bits.
var newTokenID = func() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// AvailabilityFunc reports whether the content behind handle can be served.
type AvailabilityFunc func(ctx context.Context, handle string) error

// Issuer mints single-use view tokens. A token moves from issued to either
// redeemed or expired; expiry is noticed only when the token is presented.
type Issuer struct {
	tokens    tokens.Repository
	oracle    oracle.Oracle
	available AvailabilityFunc
	ttl       time.Duration
	clock     timex.Clock
	log       logging.Logger
}

func NewIssuer(repo tokens.Repository, o oracle.Oracle, available AvailabilityFunc, ttl time.Duration, clock timex.Clock, log logging.Logger) *Issuer {
	if ttl <= 0 {
		ttl = common.ViewTokenTTLSeconds * time.Second
	}
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &Issuer{
		tokens:    repo,
		oracle:    o,
		available: available,
		ttl:       ttl,
		clock:     clock,
		log:       log.With("module", "issuer"),
	}
}

// Issue mints a token for handle. The oracle must grant access now and the
// content must be available; otherwise nothing is stored.
func (i *Issuer) Issue(ctx context.Context, handle string) (*models.ViewToken, error) {
	if err := checkAccess(ctx, i.oracle, handle); err != nil {
		return nil, err
	}
	if i.available != nil {
		if err := i.available(ctx, handle); err != nil {
			return nil, err
		}
	}

	id, err := newTokenID()
	if err != nil {
		return nil, fmt.Errorf("token id: %w", err)
	}

	token := &models.ViewToken{
		ID:        id,
		Handle:    handle,
		ExpiresAt: i.clock.Now().Add(i.ttl),
	}
	if err := i.tokens.Put(ctx, token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	i.log.Info(ctx, "view token issued", "handle", handle, "expires_at", token.ExpiresAt)
	return token, nil
}

// Redeem consumes tokenID for handle. A token for another handle is left in
// place, as is a token whose handle the oracle no longer grants; an
// expired token is purged. Of two concurrent redemptions at most one wins.
func (i *Issuer) Redeem(ctx context.Context, tokenID, handle string) (*models.ViewToken, error) {
	token, err := i.tokens.Get(ctx, tokenID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTokenInvalidOrExpired
		}
		return nil, fmt.Errorf("load token: %w", err)
	}

	if token.Expired(i.clock.Now()) {
		i.purge(ctx, tokenID)
		return nil, common.ErrTokenInvalidOrExpired
	}

	if token.Handle != handle {
		return nil, common.ErrTokenHandleMismatch
	}

	if err := checkAccess(ctx, i.oracle, handle); err != nil {
		return nil, err
	}

	taken, err := i.tokens.Take(ctx, tokenID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTokenInvalidOrExpired
		}
		return nil, fmt.Errorf("take token: %w", err)
	}

	// The oracle call may have outlived the token.
	if taken.Expired(i.clock.Now()) {
		return nil, common.ErrTokenInvalidOrExpired
	}

	i.log.Info(ctx, "view token redeemed", "handle", handle)
	return taken, nil
}

func (i *Issuer) purge(ctx context.Context, tokenID string) {
	if err := i.tokens.Delete(ctx, tokenID); err != nil {
		i.log.Warn(ctx, "failed to purge expired token", "error", err)
	}
}
