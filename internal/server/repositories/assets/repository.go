package assets

import (
	"context"

	"github.com/dmitrijs2005/memoria/internal/server/models"
)

// Repository persists upload records.
type Repository interface {
	Create(ctx context.Context, a *models.Asset) error
	ListByMemory(ctx context.Context, memoryID string) ([]*models.Asset, error)
	Delete(ctx context.Context, id string) error
	DeleteByMemory(ctx context.Context, memoryID string) (int64, error)
}
