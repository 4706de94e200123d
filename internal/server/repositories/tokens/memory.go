package tokens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// MemoryRepository is a mutex-guarded token table.
type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]models.ViewToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]models.ViewToken)}
}

func (r *MemoryRepository) Put(_ context.Context, token *models.ViewToken) error {
	if token == nil || token.ID == "" {
		return common.ErrInvalidRequest
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token.ID]; exists {
		return common.ErrorAlreadyExists
	}
	r.tokens[token.ID] = *token
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.ViewToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *MemoryRepository) Take(_ context.Context, id string) (*models.ViewToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.tokens, id)
	return &t, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.tokens, id)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) DeleteByHandle(_ context.Context, handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.tokens {
		if t.Handle == handle {
			delete(r.tokens, id)
		}
	}
	return nil
}

// Len reports the number of stored tokens.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}
