// Package publicpages stores the published projections of memories.
package publicpages

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save inserts the page or replaces an existing one with the same id. The
// tenant column is written only on insert.
func (r *PostgresRepository) Save(ctx context.Context, p *models.PublicPage) error {
	doc, err := docx.Encode(p)
	if err != nil {
		return fmt.Errorf("encode public page: %w", err)
	}
	query := `
		INSERT INTO public_pages (id, tenant, memory_id, owner_uid, created_at, updated_at, doc)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET
			memory_id = EXCLUDED.memory_id,
			owner_uid = EXCLUDED.owner_uid,
			updated_at = EXCLUDED.updated_at,
			doc = EXCLUDED.doc
	`
	_, err = r.db.ExecContext(ctx, query, p.ID, p.Tenant, p.MemoryID, p.OwnerUID, p.CreatedAt, p.UpdatedAt, doc)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.PublicPage, error) {
	return r.one(ctx, `SELECT doc FROM public_pages WHERE id = $1`, id)
}

// FindByMemory returns the oldest page linked to memoryID.
func (r *PostgresRepository) FindByMemory(ctx context.Context, memoryID string) (*models.PublicPage, error) {
	query := `SELECT doc FROM public_pages WHERE memory_id = $1 ORDER BY created_at LIMIT 1`
	return r.one(ctx, query, memoryID)
}

// FindUnlinked returns a reserved page of the owner in tenant that is not
// linked to any memory yet.
func (r *PostgresRepository) FindUnlinked(ctx context.Context, tenant, ownerUID string) (*models.PublicPage, error) {
	query := `SELECT doc FROM public_pages WHERE tenant = $1 AND owner_uid = $2 AND memory_id = '' ORDER BY created_at LIMIT 1`
	return r.one(ctx, query, tenant, ownerUID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM public_pages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete public page: %w", err)
	}
	return nil
}

// DeleteByMemory removes every page referencing memoryID and reports how
// many were removed.
func (r *PostgresRepository) DeleteByMemory(ctx context.Context, memoryID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM public_pages WHERE memory_id = $1`, memoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete public pages: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.PublicPage, error) {
	var raw []byte
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p := &models.PublicPage{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decode public page: %w", err)
	}
	return p, nil
}
