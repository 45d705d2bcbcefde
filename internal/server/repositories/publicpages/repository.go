package publicpages

import (
	"context"

	"github.com/dmitrijs2005/memoria/internal/server/models"
)

// Repository persists PublicPage documents.
type Repository interface {
	Save(ctx context.Context, p *models.PublicPage) error
	Get(ctx context.Context, id string) (*models.PublicPage, error)
	FindByMemory(ctx context.Context, memoryID string) (*models.PublicPage, error)
	FindUnlinked(ctx context.Context, tenant, ownerUID string) (*models.PublicPage, error)
	Delete(ctx context.Context, id string) error
	DeleteByMemory(ctx context.Context, memoryID string) (int64, error)
}
