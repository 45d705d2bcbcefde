package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/dbx"
	"github.com/dmitrijs2005/memoria/internal/logging"
	"github.com/dmitrijs2005/memoria/internal/server/config"
	"github.com/dmitrijs2005/memoria/internal/server/docx"
	"github.com/dmitrijs2005/memoria/internal/server/expiry"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/memoria/internal/server/storage"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Fields of a Memory that a patch may not touch.
var immutableFields = map[string]struct{}{
	"id":             {},
	"tenant":         {},
	"ownerUid":       {},
	"storageUsed":    {},
	"storageLimit":   {},
	"publicPageId":   {},
	"status":         {},
	"createdAt":      {},
	"expiresAt":      {},
	"extensionCount": {},
	"lastExtendedAt": {},
}

// NewMemory holds the initial content of a created memory.
type NewMemory struct {
	Title       string
	Description string
	Bio         string
	TopicsTitle string
}

// MemoryService is the content repository for memories and their public
// pages.
type MemoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
	config      *config.Config
	logger      logging.Logger
	now         func() time.Time
}

func NewMemoryService(db *sql.DB, rm repomanager.RepositoryManager, store storage.ObjectStore, cfg *config.Config, logger logging.Logger) *MemoryService {
	return &MemoryService{
		db:          db,
		repomanager: rm,
		store:       store,
		config:      cfg,
		logger:      logger.With("module", "memories"),
		now:         time.Now,
	}
}

// Create makes a memory for the calling user. key must be a valid
// unconsumed credential; it is consumed in the same transaction that
// stores the memory. When the credential's claim reserved a public page,
// the memory is linked to it.
func (s *MemoryService) Create(ctx context.Context, rc tenant.RequestContext, key string, in NewMemory) (_ *models.Memory, err error) {
	ctx, span := startSpan(ctx, "MemoryService.Create", attribute.String("tenant", rc.Tenant))
	defer func() { endSpan(span, err) }()

	if err := requireUser(rc); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	order, err := checkCredential(ctx, s.repomanager.Orders(s.db), key, s.config.AdminCredential, now)
	if err != nil {
		return nil, err
	}

	m := &models.Memory{
		ID:           uuid.NewString(),
		OwnerUID:     rc.OwnerUID,
		Tenant:       rc.Tenant,
		Title:        in.Title,
		Description:  in.Description,
		Bio:          in.Bio,
		TopicsTitle:  in.TopicsTitle,
		StorageLimit: s.storageLimit(),
		Status:       models.MemoryDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    expiry.ExpirationDate(now, 0),
	}

	if order != nil {
		claim, err := s.repomanager.Claims(s.db).GetByOrder(ctx, order.ID)
		switch {
		case err == nil:
			m.PublicPageID = claim.PublicPageID
		case !errors.Is(err, common.ErrorNotFound):
			s.logger.Warn(ctx, "claim lookup failed", "order_id", order.ID, "error", err)
		}
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Memories(tx).Insert(ctx, m); err != nil {
			return err
		}
		if order == nil {
			return nil
		}
		return s.repomanager.Orders(tx).Consume(ctx, order.ID, m.ID, now)
	})
	if err != nil {
		return nil, wrapInternal("create memory", err)
	}

	s.logger.Info(ctx, "memory created", "memory_id", m.ID, "tenant", m.Tenant, "owner_uid", m.OwnerUID, "admin_credential", order == nil)
	return m, nil
}

func (s *MemoryService) storageLimit() int64 {
	if s.config.DefaultStorageLimit > 0 {
		return s.config.DefaultStorageLimit
	}
	return models.DefaultStorageLimit
}

// Get returns a memory to its owner or to a service caller.
func (s *MemoryService) Get(ctx context.Context, rc tenant.RequestContext, id string) (*models.Memory, error) {
	m, err := loadForWrite(ctx, s.repomanager.Memories(s.db), rc, id, guard.Options{SkipTenantCheck: true})
	if err != nil {
		return nil, wrapInternal("get memory", err)
	}
	return m, nil
}

// ListByOwner returns the caller's memories from every tenant.
func (s *MemoryService) ListByOwner(ctx context.Context, rc tenant.RequestContext) ([]*models.Memory, error) {
	if err := requireUser(rc); err != nil {
		return nil, err
	}
	items, err := s.repomanager.Memories(s.db).ListByOwner(ctx, rc.OwnerUID)
	if err != nil {
		return nil, wrapInternal("list memories", err)
	}
	return items, nil
}

// ListForTenant returns the caller's memories in the request tenant, most
// recently updated first. When the sorted query cannot use its index the
// list is fetched unsorted and ordered here.
func (s *MemoryService) ListForTenant(ctx context.Context, rc tenant.RequestContext) ([]*models.Memory, error) {
	if err := requireUser(rc); err != nil {
		return nil, err
	}
	repo := s.repomanager.Memories(s.db)

	items, err := repo.ListByTenantOwner(ctx, rc.Tenant, rc.OwnerUID, true)
	if errors.Is(err, common.ErrIndexUnavailable) {
		s.logger.Warn(ctx, "sorted memory list unavailable, sorting in memory", "tenant", rc.Tenant, "error", err)
		items, err = repo.ListByTenantOwner(ctx, rc.Tenant, rc.OwnerUID, false)
		if err == nil {
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].UpdatedAt.After(items[j].UpdatedAt)
			})
		}
	}
	if err != nil {
		return nil, wrapInternal("list memories", err)
	}
	return items, nil
}

// Update merges patch into the stored memory. Null values in the patch are
// dropped at every depth, so an absent and a null field both mean "keep".
// Top-level keys replace the stored value wholesale. Binary URLs and their
// sizes stay under server control, see pinBinaries; status only moves
// through Publish.
func (s *MemoryService) Update(ctx context.Context, rc tenant.RequestContext, id string, patch map[string]any, opts guard.Options) (*models.Memory, error) {
	for k := range patch {
		if _, ok := immutableFields[k]; ok {
			return nil, fmt.Errorf("%w: field %q cannot be changed", common.ErrorValidation, k)
		}
	}

	repo := s.repomanager.Memories(s.db)
	m, err := loadForWrite(ctx, repo, rc, id, opts)
	if err != nil {
		return nil, wrapInternal("update memory", err)
	}

	base, err := docx.ToMap(m)
	if err != nil {
		return nil, wrapInternal("update memory", err)
	}
	var out models.Memory
	if err := docx.FromMap(docx.Merge(base, patch), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	out.StorageUsed = m.StorageUsed
	out.UpdatedAt = s.now().UTC()
	if err := s.pinBinaries(m, &out); err != nil {
		return nil, err
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, &out); err != nil {
		return nil, wrapInternal("update memory", err)
	}
	return &out, nil
}

// Extend adds one paid extension to the memory and moves its expiration
// date accordingly. The owner or a service caller may extend; MaxExtensions
// bounds the count when positive.
func (s *MemoryService) Extend(ctx context.Context, rc tenant.RequestContext, id string) (_ *models.Memory, err error) {
	ctx, span := startSpan(ctx, "MemoryService.Extend", attribute.String("memory_id", id))
	defer func() { endSpan(span, err) }()

	repo := s.repomanager.Memories(s.db)
	m, err := loadForWrite(ctx, repo, rc, id, guard.Options{SkipTenantCheck: true})
	if err != nil {
		return nil, wrapInternal("extend memory", err)
	}

	if limit := s.config.MaxExtensions; limit > 0 && m.ExtensionCount >= limit {
		return nil, fmt.Errorf("%w: memory already has %d extensions", common.ErrorValidation, m.ExtensionCount)
	}

	now := s.now().UTC()
	m.ExtensionCount++
	m.ExpiresAt = expiry.ExpirationDate(m.CreatedAt, m.ExtensionCount)
	m.LastExtendedAt = &now
	m.UpdatedAt = now

	if err := repo.Update(ctx, m); err != nil {
		return nil, wrapInternal("extend memory", err)
	}
	s.logger.Info(ctx, "memory extended", "memory_id", m.ID, "extensions", m.ExtensionCount, "expires_at", m.ExpiresAt)
	return m, nil
}

// ExpiryStatus reports how long the memory has left.
func (s *MemoryService) ExpiryStatus(ctx context.Context, rc tenant.RequestContext, id string) (expiry.Status, error) {
	m, err := s.Get(ctx, rc, id)
	if err != nil {
		return expiry.Status{}, err
	}
	return expiry.StatusAt(m.ExpiresAt, s.now()), nil
}
