// Package orders stores purchase orders. Secret keys are unique across all
// orders; a NULL key means none was issued yet.
package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/dbx"
	"github.com/dmitrijs2005/memoria/internal/server/models"
)

const columns = `id, email, tenant, product_type, memory_id, secret_key, secret_key_expires_at, secret_key_consumed_at, payment_status, order_status, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *models.Order) error {
	query := `INSERT INTO orders (` + columns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID, o.Email, o.Tenant, string(o.ProductType), o.MemoryID, nullString(o.SecretKey),
		nullTime(o.SecretKeyExpiresAt), nullTime(o.SecretKeyConsumedAt), o.PaymentStatus, o.OrderStatus, o.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: order %s already exists", common.ErrorValidation, o.ID)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	return r.one(ctx, `SELECT `+columns+` FROM orders WHERE id = $1`, id)
}

func (r *PostgresRepository) GetBySecretKey(ctx context.Context, key string) (*models.Order, error) {
	return r.one(ctx, `SELECT `+columns+` FROM orders WHERE secret_key = $1`, key)
}

// Update rewrites the mutable fields of an order.
func (r *PostgresRepository) Update(ctx context.Context, o *models.Order) error {
	query := `
		UPDATE orders SET memory_id = $2, secret_key = $3, secret_key_expires_at = $4,
			secret_key_consumed_at = $5, payment_status = $6, order_status = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		o.ID, o.MemoryID, nullString(o.SecretKey), nullTime(o.SecretKeyExpiresAt),
		nullTime(o.SecretKeyConsumedAt), o.PaymentStatus, o.OrderStatus)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: secret key already in use", common.ErrorValidation)
		}
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

// Consume marks the credential of order id as used for memoryID. It fails
// with common.ErrCredentialInvalid when the credential was already consumed,
// so two concurrent creations cannot both succeed.
func (r *PostgresRepository) Consume(ctx context.Context, id, memoryID string, at time.Time) error {
	query := `
		UPDATE orders SET secret_key_consumed_at = $2, memory_id = $3, order_status = $4
		WHERE id = $1 AND secret_key_consumed_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, at, memoryID, models.OrderFulfilled)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrCredentialInvalid
	}
	return nil
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Order, error) {
	var (
		o                 models.Order
		productType       string
		key               sql.NullString
		expires, consumed sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&o.ID, &o.Email, &o.Tenant, &productType, &o.MemoryID, &key,
		&expires, &consumed, &o.PaymentStatus, &o.OrderStatus, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	o.ProductType = models.ProductType(productType)
	o.SecretKey = key.String
	if expires.Valid {
		t := expires.Time
		o.SecretKeyExpiresAt = &t
	}
	if consumed.Valid {
		t := consumed.Time
		o.SecretKeyConsumedAt = &t
	}
	return &o, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
