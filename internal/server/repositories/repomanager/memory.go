package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/custody"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/tokens"
)

// MemoryRepositoryManager hands out one process-wide instance of each
// in-memory repository. The DBTX argument is ignored.
type MemoryRepositoryManager struct {
	custody *custody.MemoryRepository
	tokens  *tokens.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		custody: custody.NewMemoryRepository(),
		tokens:  tokens.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Custody(dbx.DBTX) custody.Repository {
	return m.custody
}

func (m *MemoryRepositoryManager) Tokens(dbx.DBTX) tokens.Repository {
	return m.tokens
}
