package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/publicpages"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"
)

// Publish projects the memory onto its public page. A memory without a
// recorded page reuses, in order: the page handed over by the claim flow,
// any page already pointing at it, or a page reserved for the owner in the
// same tenant. Only when none exists is a new page created.
func (s *MemoryService) Publish(ctx context.Context, rc tenant.RequestContext, id string, opts guard.Options) (_ *models.PublicPage, err error) {
	ctx, span := startSpan(ctx, "MemoryService.Publish", attribute.String("memory_id", id))
	defer func() { endSpan(span, err) }()

	memRepo := s.repomanager.Memories(s.db)
	m, err := loadForWrite(ctx, memRepo, rc, id, opts)
	if err != nil {
		return nil, wrapInternal("publish memory", err)
	}

	pageRepo := s.repomanager.PublicPages(s.db)
	now := s.now().UTC()

	page, err := s.discoverPage(ctx, pageRepo, m)
	if err != nil {
		return nil, wrapInternal("publish memory", err)
	}
	if page == nil {
		page = &models.PublicPage{
			ID:        uuid.NewString(),
			Tenant:    m.Tenant,
			CreatedAt: now,
			Access:    models.Access{Public: true},
		}
	}

	page.Project(m, now)
	if err := pageRepo.Save(ctx, page); err != nil {
		return nil, wrapInternal("save public page", err)
	}

	if m.PublicPageID != page.ID || m.Status != models.MemoryPublished {
		m.PublicPageID = page.ID
		m.Status = models.MemoryPublished
		m.UpdatedAt = now
		if err := memRepo.Update(ctx, m); err != nil {
			return nil, wrapInternal("link public page", err)
		}
	}

	s.logger.Info(ctx, "memory published", "memory_id", m.ID, "public_page_id", page.ID, "version", page.Publish.Version)
	redacted := page.Redacted()
	return &redacted, nil
}

// discoverPage returns the page the memory should publish to, or nil when
// a new one is needed. Candidates from another tenant are skipped.
func (s *MemoryService) discoverPage(ctx context.Context, repo publicpages.Repository, m *models.Memory) (*models.PublicPage, error) {
	lookups := []struct {
		name string
		find func() (*models.PublicPage, error)
	}{
		{"recorded", func() (*models.PublicPage, error) {
			if m.PublicPageID == "" {
				return nil, common.ErrorNotFound
			}
			return repo.Get(ctx, m.PublicPageID)
		}},
		{"by memory", func() (*models.PublicPage, error) { return repo.FindByMemory(ctx, m.ID) }},
		{"reserved", func() (*models.PublicPage, error) { return repo.FindUnlinked(ctx, m.Tenant, m.OwnerUID) }},
	}

	for _, l := range lookups {
		page, err := l.find()
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if page.Tenant != m.Tenant {
			s.logger.Warn(ctx, "skipping public page of another tenant", "lookup", l.name, "public_page_id", page.ID, "page_tenant", page.Tenant, "memory_tenant", m.Tenant)
			continue
		}
		if page.MemoryID != "" && page.MemoryID != m.ID {
			s.logger.Warn(ctx, "skipping public page linked to another memory", "lookup", l.name, "public_page_id", page.ID)
			continue
		}
		return page, nil
	}
	return nil, nil
}

// GetPublicPage returns a page to anonymous readers. Pages are never
// tenant-restricted; a non-public page needs its password.
func (s *MemoryService) GetPublicPage(ctx context.Context, id, password string) (*models.PublicPage, error) {
	page, err := s.repomanager.PublicPages(s.db).Get(ctx, id)
	if err != nil {
		return nil, wrapInternal("get public page", err)
	}
	if !page.Access.Public {
		if page.Access.PasswordHash == "" || password == "" {
			return nil, common.ErrorUnauthorized
		}
		if err := bcrypt.CompareHashAndPassword([]byte(page.Access.PasswordHash), []byte(password)); err != nil {
			return nil, common.ErrorUnauthorized
		}
	}
	redacted := page.Redacted()
	return &redacted, nil
}

// SetPageAccess makes a page public or protects it with password.
func (s *MemoryService) SetPageAccess(ctx context.Context, rc tenant.RequestContext, pageID string, public bool, password string) error {
	repo := s.repomanager.PublicPages(s.db)
	page, err := repo.Get(ctx, pageID)
	if err != nil {
		return wrapInternal("get public page", err)
	}
	if err := guard.CheckWrite(rc, guard.Document{Tenant: page.Tenant, OwnerUID: page.OwnerUID}, guard.Options{}); err != nil {
		return err
	}

	access := models.Access{Public: public}
	if !public {
		if password == "" {
			return fmt.Errorf("%w: a private page needs a password", common.ErrorValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		access.PasswordHash = string(hash)
	}

	page.Access = access
	page.UpdatedAt = s.now().UTC()
	if err := repo.Save(ctx, page); err != nil {
		return wrapInternal("save public page", err)
	}
	return nil
}

// reservePage stores an empty page ahead of any content so its link can be
// printed or written to a tag.
func reservePage(ctx context.Context, repo publicpages.Repository, tenantID, ownerUID string, now time.Time) (*models.PublicPage, error) {
	page := &models.PublicPage{
		ID:        uuid.NewString(),
		Tenant:    tenantID,
		OwnerUID:  ownerUID,
		Access:    models.Access{Public: true},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Save(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}
