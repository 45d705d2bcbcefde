package memories

import (
	"context"

	"github.com/dmitrijs2005/memoria/internal/server/models"
)

// Repository persists Memory documents.
type Repository interface {
	Insert(ctx context.Context, m *models.Memory) error
	Get(ctx context.Context, id string) (*models.Memory, error)
	Update(ctx context.Context, m *models.Memory) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerUID string) ([]*models.Memory, error)
	ListByTenantOwner(ctx context.Context, tenant, ownerUID string, sorted bool) ([]*models.Memory, error)
	AddStorageUsed(ctx context.Context, id string, delta int64) (int64, error)
}
