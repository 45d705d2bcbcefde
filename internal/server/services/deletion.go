package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/storage"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"go.opentelemetry.io/otel/attribute"
)

// DeletionReport summarises one cascading deletion. Failures lists the
// sub-steps that failed; they are logged, not returned.
type DeletionReport struct {
	MemoryID       string
	AlreadyGone    bool
	PagesDeleted   int64
	AssetsDeleted  int64
	ObjectsDeleted int
	Failures       []string
}

// Partial reports whether any sub-step failed.
func (r *DeletionReport) Partial() bool {
	return len(r.Failures) > 0
}

func (r *DeletionReport) fail(step string, err error) {
	r.Failures = append(r.Failures, fmt.Sprintf("%s: %v", step, err))
}

// Delete removes a memory with everything hanging off it: its public
// pages, asset records, and every binary object referenced from blocks,
// album items, cover and profile images or asset records. Only objects
// under the memory's own key prefix are deleted. Each of those
// steps is best effort; the memory document itself is deleted last and
// always attempted. Deleting a memory that no longer exists succeeds, so a
// failed run can simply be retried.
func (s *MemoryService) Delete(ctx context.Context, rc tenant.RequestContext, id string, opts guard.Options) (_ *DeletionReport, err error) {
	ctx, span := startSpan(ctx, "MemoryService.Delete", attribute.String("memory_id", id))
	defer func() { endSpan(span, err) }()

	report := &DeletionReport{MemoryID: id}
	memRepo := s.repomanager.Memories(s.db)

	if _, err := loadForWrite(ctx, memRepo, rc, id, opts); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			report.AlreadyGone = true
			return report, nil
		}
		return nil, wrapInternal("delete memory", err)
	}

	// Re-read after the check so the walk sees the latest blocks.
	m, err := memRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			report.AlreadyGone = true
			return report, nil
		}
		return nil, wrapInternal("delete memory", err)
	}

	logger := s.logger.With("memory_id", m.ID, "tenant", m.Tenant)

	pageRepo := s.repomanager.PublicPages(s.db)
	if m.PublicPageID != "" {
		if err := pageRepo.Delete(ctx, m.PublicPageID); err != nil {
			report.fail("delete public page", err)
		} else {
			report.PagesDeleted++
		}
	}
	n, err := pageRepo.DeleteByMemory(ctx, m.ID)
	if err != nil {
		report.fail("delete linked public pages", err)
	}
	report.PagesDeleted += n

	keys := newKeySet()

	assetRepo := s.repomanager.Assets(s.db)
	assets, err := assetRepo.ListByMemory(ctx, m.ID)
	if err != nil {
		report.fail("list assets", err)
	}
	for _, a := range assets {
		key := s.assetKey(a)
		if !storage.OwnedBy(m.ID, key) {
			logger.Warn(ctx, "asset record points outside the memory, skipping", "asset_id", a.ID, "key", key)
			continue
		}
		keys.add(key)
	}
	if n, err := assetRepo.DeleteByMemory(ctx, m.ID); err != nil {
		report.fail("delete assets", err)
	} else {
		report.AssetsDeleted = n
	}

	for _, u := range m.ObjectURLs() {
		key, ok := s.ownedKey(m.ID, u)
		if !ok {
			logger.Debug(ctx, "url is not a stored object of this memory, skipping", "url", u)
			continue
		}
		keys.add(key)
	}

	for _, key := range keys.list {
		if err := s.store.Delete(ctx, key); err != nil {
			report.fail("delete object "+key, err)
			continue
		}
		report.ObjectsDeleted++
	}

	if err := memRepo.Delete(ctx, m.ID); err != nil {
		logger.Error(ctx, "memory document deletion failed", "error", err, "failures", report.Failures)
		return report, wrapInternal("delete memory", err)
	}

	if report.Partial() {
		logger.Warn(ctx, "partial deletion failure", "failures", report.Failures,
			"pages_deleted", report.PagesDeleted, "assets_deleted", report.AssetsDeleted, "objects_deleted", report.ObjectsDeleted)
	} else {
		logger.Info(ctx, "memory deleted",
			"pages_deleted", report.PagesDeleted, "assets_deleted", report.AssetsDeleted, "objects_deleted", report.ObjectsDeleted)
	}
	return report, nil
}

// keySet keeps object keys unique in first-seen order.
type keySet struct {
	seen map[string]struct{}
	list []string
}

func newKeySet() *keySet {
	return &keySet{seen: make(map[string]struct{})}
}

func (k *keySet) add(key string) {
	if _, ok := k.seen[key]; ok {
		return
	}
	k.seen[key] = struct{}{}
	k.list = append(k.list, key)
}

func (k *keySet) has(key string) bool {
	_, ok := k.seen[key]
	return ok
}
