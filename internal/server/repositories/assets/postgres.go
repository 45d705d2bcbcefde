// Package assets stores one record per uploaded binary so objects can be
// reclaimed even after the block showing them is gone.
package assets

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/dbx"
	"github.com/dmitrijs2005/memoria/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Asset) error {
	query := `
		INSERT INTO assets (id, memory_id, owner_uid, tenant, storage_path, url, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.MemoryID, a.OwnerUID, a.Tenant, a.StoragePath, a.URL, a.Size, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByMemory(ctx context.Context, memoryID string) ([]*models.Asset, error) {
	query := `
		SELECT id, memory_id, owner_uid, tenant, storage_path, url, size, created_at FROM assets
		WHERE memory_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, memoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to select assets: %w", err)
	}
	defer rows.Close()

	var result []*models.Asset
	for rows.Next() {
		var item models.Asset
		if err := rows.Scan(&item.ID, &item.MemoryID, &item.OwnerUID, &item.Tenant, &item.StoragePath, &item.URL, &item.Size, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes one record. A missing record is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByMemory(ctx context.Context, memoryID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE memory_id = $1`, memoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete assets: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
