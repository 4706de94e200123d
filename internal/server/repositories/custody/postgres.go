package custody

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository stores custody rows in PostgreSQL. The data key is
// sealed under masterKey before it is written, so the database never holds
// key material in clear.
type PostgresRepository struct {
	db        dbx.DBTX
	masterKey cryptox.Key
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX, masterKey cryptox.Key) *PostgresRepository {
	return &PostgresRepository{db: db, masterKey: masterKey}
}

// uniqueViolation is the SQLSTATE for a duplicate primary key.
const uniqueViolation = "23505"

const selectObject = `
		SELECT handle, file_name, content_type, size, duration_ms, created_at, status
		FROM custody_objects
	`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanObject(row rowScanner) (*models.EncryptedObject, error) {
	var (
		obj        models.EncryptedObject
		durationMs int64
		status     string
	)
	if err := row.Scan(&obj.Handle, &obj.FileName, &obj.ContentType, &obj.Size, &durationMs, &obj.CreatedAt, &status); err != nil {
		return nil, err
	}
	obj.Duration = time.Duration(durationMs) * time.Millisecond
	obj.Status = models.RegistrationStatus(status)
	return &obj, nil
}

func (r *PostgresRepository) Save(ctx context.Context, obj *models.EncryptedObject, key cryptox.Key) error {
	if obj == nil || obj.Handle == "" || len(key) != cryptox.KeySize {
		return common.ErrInvalidRequest
	}

	wrapped, err := cryptox.WrapKey(key, r.masterKey)
	if err != nil {
		return fmt.Errorf("wrap key: %w", err)
	}

	query := `
		INSERT INTO custody_objects (handle, file_name, content_type, size, duration_ms, created_at, status, wrapped_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		obj.Handle, obj.FileName, obj.ContentType, obj.Size,
		obj.Duration.Milliseconds(), obj.CreatedAt, string(obj.Status), wrapped)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, handle string) (*models.EncryptedObject, error) {
	query := selectObject + ` WHERE handle = $1`

	obj, err := scanObject(r.db.QueryRowContext(ctx, query, handle))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return obj, nil
}

func (r *PostgresRepository) LookupKey(ctx context.Context, handle string) (cryptox.Key, bool, error) {
	query := `
		SELECT wrapped_key
		FROM custody_objects
		WHERE handle = $1
	`
	var wrapped []byte
	if err := r.db.QueryRowContext(ctx, query, handle).Scan(&wrapped); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	key, err := cryptox.UnwrapKey(wrapped, r.masterKey)
	if err != nil {
		return nil, false, fmt.Errorf("unwrap key for %s: %w", handle, err)
	}
	return key, true, nil
}

func (r *PostgresRepository) MarkRegistered(ctx context.Context, handle string) error {
	query := `
		UPDATE custody_objects
		SET status = $2
		WHERE handle = $1
	`
	res, err := r.db.ExecContext(ctx, query, handle, string(models.StatusRegistered))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

func (r *PostgresRepository) ListPending(ctx context.Context) ([]*models.EncryptedObject, error) {
	query := selectObject + ` WHERE status = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, string(models.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.EncryptedObject
	for rows.Next() {
		obj, err := scanObject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out = append(out, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Evict(ctx context.Context, handle string) error {
	query := `
		DELETE FROM custody_objects
		WHERE handle = $1
	`
	if _, err := r.db.ExecContext(ctx, query, handle); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
