// Package repomanager selects the repository backend: process memory or
// PostgreSQL with goose migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/migrations"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/custody"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/tokens"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories. Custody
// keys are wrapped under masterKey.
type PostgresRepositoryManager struct {
	masterKey cryptox.Key
}

// Custody returns a custody.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Custody(db dbx.DBTX) custody.Repository {
	return custody.NewPostgresRepository(db, m.masterKey)
}

// Tokens returns a tokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Tokens(db dbx.DBTX) tokens.Repository {
	return tokens.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(masterKey cryptox.Key) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{masterKey: masterKey}
}
