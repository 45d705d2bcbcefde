package claims

import (
	"context"

	"github.com/dmitrijs2005/memoria/internal/server/models"
)

// Repository persists claim requests. There is at most one per order.
type Repository interface {
	Create(ctx context.Context, c *models.ClaimRequest) error
	Get(ctx context.Context, id string) (*models.ClaimRequest, error)
	GetByOrder(ctx context.Context, orderID string) (*models.ClaimRequest, error)
	Update(ctx context.Context, c *models.ClaimRequest) error
}
