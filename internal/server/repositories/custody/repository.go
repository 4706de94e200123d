// Package custody holds encrypted-object descriptors together with their data
// keys. A descriptor and its key are always written and removed as one unit,
// so a reader can never observe one without the other.
package custody

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// Repository is the key custodian contract.
type Repository interface {
	// Save stores the descriptor and its key atomically. Saving a handle that
	// is already held returns common.ErrorAlreadyExists.
	Save(ctx context.Context, obj *models.EncryptedObject, key cryptox.Key) error

	// Get returns the descriptor, or common.ErrorNotFound.
	Get(ctx context.Context, handle string) (*models.EncryptedObject, error)

	// LookupKey returns a copy of the data key. Absence is reported through
	// ok, not as an error.
	LookupKey(ctx context.Context, handle string) (key cryptox.Key, ok bool, err error)

	// MarkRegistered flips a pending descriptor to registered.
	MarkRegistered(ctx context.Context, handle string) error

	// ListPending returns descriptors still waiting for oracle registration,
	// oldest first.
	ListPending(ctx context.Context) ([]*models.EncryptedObject, error)

	// Evict removes descriptor and key together. Evicting an unknown handle
	// is not an error.
	Evict(ctx context.Context, handle string) error
}
