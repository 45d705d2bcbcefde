// Package memories stores Memory documents in PostgreSQL. The document is
// kept as JSONB next to the columns used for filtering; storage_used lives
// only in its column so quota deltas can be applied atomically.
package memories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/dbx"
	"github.com/dmitrijs2005/memoria/internal/server/docx"
	"github.com/dmitrijs2005/memoria/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a new memory.
func (r *PostgresRepository) Insert(ctx context.Context, m *models.Memory) error {
	doc, err := docx.Encode(m)
	if err != nil {
		return fmt.Errorf("encode memory: %w", err)
	}
	query := `
		INSERT INTO memories (id, tenant, owner_uid, public_page_id, storage_used, storage_limit, created_at, updated_at, doc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.ExecContext(ctx, query,
		m.ID, m.Tenant, m.OwnerUID, m.PublicPageID, m.StorageUsed, m.StorageLimit, m.CreatedAt, m.UpdatedAt, doc)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: memory %s already exists", common.ErrorValidation, m.ID)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the memory with the given id or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Memory, error) {
	query := `SELECT storage_used, doc FROM memories WHERE id = $1`

	var (
		used int64
		raw  []byte
	)
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&used, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return decode(used, raw)
}

// Update replaces the stored document. The tenant and owner columns are
// never rewritten and storage_used is left to AddStorageUsed.
func (r *PostgresRepository) Update(ctx context.Context, m *models.Memory) error {
	doc, err := docx.Encode(m)
	if err != nil {
		return fmt.Errorf("encode memory: %w", err)
	}
	query := `
		UPDATE memories SET public_page_id = $2, storage_limit = $3, updated_at = $4, doc = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, m.ID, m.PublicPageID, m.StorageLimit, m.UpdatedAt, doc)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes the memory. Deleting a missing memory is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM memories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's memories across all tenants.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*models.Memory, error) {
	query := `SELECT storage_used, doc FROM memories WHERE owner_uid = $1`
	return r.list(ctx, query, ownerUID)
}

// ListByTenantOwner returns the owner's memories in one tenant. With sorted
// set the rows come back newest first through the composite index; a
// failure caused by that index is reported as common.ErrIndexUnavailable.
func (r *PostgresRepository) ListByTenantOwner(ctx context.Context, tenant, ownerUID string, sorted bool) ([]*models.Memory, error) {
	query := `SELECT storage_used, doc FROM memories WHERE tenant = $1 AND owner_uid = $2`
	if sorted {
		query += ` ORDER BY updated_at DESC`
	}
	items, err := r.list(ctx, query, tenant, ownerUID)
	if err != nil && sorted && dbx.IsIndexUnavailable(err) {
		return nil, fmt.Errorf("%w: %v", common.ErrIndexUnavailable, err)
	}
	return items, err
}

// AddStorageUsed applies delta to storage_used in one statement, floored at
// zero, and returns the new value.
func (r *PostgresRepository) AddStorageUsed(ctx context.Context, id string, delta int64) (int64, error) {
	query := `
		UPDATE memories SET storage_used = GREATEST(storage_used + $2, 0)
		WHERE id = $1
		RETURNING storage_used
	`
	var used int64
	if err := r.db.QueryRowContext(ctx, query, id, delta).Scan(&used); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return used, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Memory, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select memories: %w", err)
	}
	defer rows.Close()

	var result []*models.Memory
	for rows.Next() {
		var (
			used int64
			raw  []byte
		)
		if err := rows.Scan(&used, &raw); err != nil {
			return nil, err
		}
		m, err := decode(used, raw)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func decode(used int64, raw []byte) (*models.Memory, error) {
	m := &models.Memory{}
	if err := json.Unmarshal(raw, m); err != nil {
		return nil, fmt.Errorf("decode memory: %w", err)
	}
	m.StorageUsed = used
	return m, nil
}
