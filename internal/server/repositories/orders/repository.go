package orders

import (
	"context"
	"time"

	"github.com/dmitrijs2005/memoria/internal/server/models"
)

// Repository persists purchase orders and their secret credentials.
type Repository interface {
	Create(ctx context.Context, o *models.Order) error
	Get(ctx context.Context, id string) (*models.Order, error)
	GetBySecretKey(ctx context.Context, key string) (*models.Order, error)
	Update(ctx context.Context, o *models.Order) error
	Consume(ctx context.Context, id, memoryID string, at time.Time) error
}
