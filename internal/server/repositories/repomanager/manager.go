package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/custody"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/tokens"
)

// RepositoryManager vends the gateway's repositories for one storage
// backend.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Custody(db dbx.DBTX) custody.Repository
	Tokens(db dbx.DBTX) tokens.Repository
}
