// Package tokens stores outstanding view tokens.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// Repository holds issued view tokens until they are redeemed or purged.
type Repository interface {
	// Put stores a new token.
	Put(ctx context.Context, token *models.ViewToken) error

	// Get returns the token without consuming it, or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.ViewToken, error)

	// Take removes and returns the token in one step. Of several concurrent
	// callers at most one succeeds; the rest get common.ErrorNotFound.
	Take(ctx context.Context, id string) (*models.ViewToken, error)

	// Delete removes the token if present.
	Delete(ctx context.Context, id string) error

	// DeleteByHandle drops every outstanding token bound to handle.
	DeleteByHandle(ctx context.Context, handle string) error
}
