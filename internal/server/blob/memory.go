package blob

import (
	"bytes"
	"context"
	"sync"

	"github.com/dmitrijs2005/timevault/internal/common"
)

// MemoryRepository keeps blobs in a map.
type MemoryRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blobs: make(map[string][]byte)}
}

func (r *MemoryRepository) Put(_ context.Context, data []byte) (string, error) {
	h := HandleFor(data)
	c := bytes.Clone(data)
	if c == nil {
		c = []byte{}
	}

	r.mu.Lock()
	r.blobs[h] = c
	r.mu.Unlock()
	return h, nil
}

func (r *MemoryRepository) Get(_ context.Context, handle string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blobs[handle]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return bytes.Clone(b), nil
}

func (r *MemoryRepository) Exists(_ context.Context, handle string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.blobs[handle]
	return ok, nil
}

func (r *MemoryRepository) Delete(_ context.Context, handle string) error {
	r.mu.Lock()
	delete(r.blobs, handle)
	r.mu.Unlock()
	return nil
}
