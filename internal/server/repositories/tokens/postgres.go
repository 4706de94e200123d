package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Put(ctx context.Context, token *models.ViewToken) error {
	if token == nil || token.ID == "" {
		return common.ErrInvalidRequest
	}

	query := `
		INSERT INTO view_tokens (id, handle, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, token.ID, token.Handle, token.ExpiresAt); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.ViewToken, error) {
	query := `
		SELECT id, handle, expires_at
		FROM view_tokens
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// Take relies on DELETE ... RETURNING: the row lock taken by the delete lets
// exactly one concurrent statement return the row.
func (r *PostgresRepository) Take(ctx context.Context, id string) (*models.ViewToken, error) {
	query := `
		DELETE FROM view_tokens
		WHERE id = $1
		RETURNING id, handle, expires_at
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM view_tokens
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByHandle(ctx context.Context, handle string) error {
	query := `
		DELETE FROM view_tokens
		WHERE handle = $1
	`
	if _, err := r.db.ExecContext(ctx, query, handle); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.ViewToken, error) {
	t := &models.ViewToken{}
	if err := row.Scan(&t.ID, &t.Handle, &t.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
