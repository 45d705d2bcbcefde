// Package claims stores claim requests, one per paid order.
package claims

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

func (r *PostgresRepository) Create(ctx context.Context, c *models.ClaimRequest) error {
	doc, err := docx.Encode(c)
	if err != nil {
		return fmt.Errorf("encode claim: %w", err)
	}
	query := `
		INSERT INTO claim_requests (id, order_id, tenant, status, created_at, updated_at, doc)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query, c.ID, c.OrderID, c.Tenant, string(c.Status), c.CreatedAt, c.UpdatedAt, doc)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: claim for order %s already exists", common.ErrorValidation, c.OrderID)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.ClaimRequest, error) {
	return r.one(ctx, `SELECT doc FROM claim_requests WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByOrder(ctx context.Context, orderID string) (*models.ClaimRequest, error) {
	return r.one(ctx, `SELECT doc FROM claim_requests WHERE order_id = $1`, orderID)
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.ClaimRequest) error {
	doc, err := docx.Encode(c)
	if err != nil {
		return fmt.Errorf("encode claim: %w", err)
	}
	query := `UPDATE claim_requests SET status = $2, updated_at = $3, doc = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, c.ID, string(c.Status), c.UpdatedAt, doc)
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

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.ClaimRequest, error) {
	var raw []byte
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c := &models.ClaimRequest{}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("decode claim: %w", err)
	}
	return c, nil
}
