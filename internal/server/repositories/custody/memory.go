package custody

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

type record struct {
	obj models.EncryptedObject
	key cryptox.Key
}

// MemoryRepository keeps custody in process memory. Contents are lost on
// restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*record
}

// NewMemoryRepository returns an empty in-memory custodian.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]*record)}
}

func (r *MemoryRepository) Save(_ context.Context, obj *models.EncryptedObject, key cryptox.Key) error {
	if obj == nil || obj.Handle == "" || len(key) != cryptox.KeySize {
		return common.ErrInvalidRequest
	}

	rec := &record{obj: *obj, key: bytes.Clone(key)}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[obj.Handle]; exists {
		rec.key.Wipe()
		return common.ErrorAlreadyExists
	}
	r.records[obj.Handle] = rec
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, handle string) (*models.EncryptedObject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[handle]
	if !ok {
		return nil, common.ErrorNotFound
	}
	obj := rec.obj
	return &obj, nil
}

func (r *MemoryRepository) LookupKey(_ context.Context, handle string) (cryptox.Key, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[handle]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(rec.key), true, nil
}

func (r *MemoryRepository) MarkRegistered(_ context.Context, handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[handle]
	if !ok {
		return common.ErrorNotFound
	}
	rec.obj.Status = models.StatusRegistered
	return nil
}

func (r *MemoryRepository) ListPending(_ context.Context) ([]*models.EncryptedObject, error) {
	r.mu.RLock()
	var out []*models.EncryptedObject
	for _, rec := range r.records {
		if rec.obj.Status == models.StatusPending {
			obj := rec.obj
			out = append(out, &obj)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) Evict(_ context.Context, handle string) error {
	r.mu.Lock()
	rec, ok := r.records[handle]
	delete(r.records, handle)
	r.mu.Unlock()

	if ok {
		rec.key.Wipe()
	}
	return nil
}
