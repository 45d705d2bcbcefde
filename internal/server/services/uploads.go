package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/quota"
	"github.com/dmitrijs2005/memoria/internal/server/storage"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Upload is one file to store.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	// Caption becomes the album item text.
	Caption string
}

// BlockInput describes the block created around uploaded media.
type BlockInput struct {
	Kind        models.BlockKind
	Visibility  models.Visibility
	Title       string
	Description string
	IsTopic     bool
}

// ImageSlot names the single-image fields of a memory.
type ImageSlot string

const (
	SlotCover   ImageSlot = "cover"
	SlotProfile ImageSlot = "profile"
)

// AddMedia uploads one image, video or audio file and appends a block
// showing it. The quota is checked before any byte is transferred.
func (s *MemoryService) AddMedia(ctx context.Context, rc tenant.RequestContext, memoryID string, in BlockInput, f Upload, opts guard.Options) (_ *models.Memory, err error) {
	ctx, span := startSpan(ctx, "MemoryService.AddMedia", attribute.String("memory_id", memoryID), attribute.Int64("size", f.Size))
	defer func() { endSpan(span, err) }()

	switch in.Kind {
	case models.BlockImage, models.BlockVideo, models.BlockAudio:
	default:
		return nil, fmt.Errorf("%w: %q is not a single-file block type", common.ErrorValidation, in.Kind)
	}

	m, err := s.loadForUpload(ctx, rc, memoryID, []Upload{f}, opts)
	if err != nil {
		return nil, err
	}

	stored, err := s.putAll(ctx, m, []Upload{f})
	if err != nil {
		return nil, err
	}

	block := newBlock(in)
	block.URL = stored[0].URL
	block.FileSize = f.Size

	return s.commitUpload(ctx, m, stored, func(m *models.Memory) {
		m.Blocks = append(m.Blocks, block)
	})
}

// AddAlbum uploads files as one album block. The batch total is checked
// against the quota once; if any file fails nothing is added and the
// files already uploaded are removed again.
func (s *MemoryService) AddAlbum(ctx context.Context, rc tenant.RequestContext, memoryID string, in BlockInput, files []Upload, opts guard.Options) (_ *models.Memory, err error) {
	ctx, span := startSpan(ctx, "MemoryService.AddAlbum", attribute.String("memory_id", memoryID), attribute.Int("files", len(files)))
	defer func() { endSpan(span, err) }()

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: album needs at least one file", common.ErrorValidation)
	}

	m, err := s.loadForUpload(ctx, rc, memoryID, files, opts)
	if err != nil {
		return nil, err
	}

	stored, err := s.putAll(ctx, m, files)
	if err != nil {
		return nil, err
	}

	in.Kind = models.BlockAlbum
	block := newBlock(in)
	for i, a := range stored {
		block.Items = append(block.Items, models.AlbumItem{URL: a.URL, FileSize: a.Size, Text: files[i].Caption})
	}

	return s.commitUpload(ctx, m, stored, func(m *models.Memory) {
		m.Blocks = append(m.Blocks, block)
	})
}

// SetImage uploads a cover or profile image. A replaced image is removed
// from storage and the bytes recorded for it are returned to the quota.
func (s *MemoryService) SetImage(ctx context.Context, rc tenant.RequestContext, memoryID string, slot ImageSlot, f Upload, pos models.Position, scale float64, opts guard.Options) (_ *models.Memory, err error) {
	ctx, span := startSpan(ctx, "MemoryService.SetImage", attribute.String("memory_id", memoryID), attribute.String("slot", string(slot)))
	defer func() { endSpan(span, err) }()

	if slot != SlotCover && slot != SlotProfile {
		return nil, fmt.Errorf("%w: unknown image slot %q", common.ErrorValidation, slot)
	}

	m, err := s.loadForUpload(ctx, rc, memoryID, []Upload{f}, opts)
	if err != nil {
		return nil, err
	}

	stored, err := s.putAll(ctx, m, []Upload{f})
	if err != nil {
		return nil, err
	}

	var old *models.Image
	img := &models.Image{URL: stored[0].URL, Position: pos, Scale: scale, FileSize: f.Size}

	m, err = s.commitUpload(ctx, m, stored, func(m *models.Memory) {
		if slot == SlotCover {
			old, m.CoverImage = m.CoverImage, img
		} else {
			old, m.ProfileImage = m.ProfileImage, img
		}
	})
	if err != nil {
		return nil, err
	}

	if !old.IsZero() {
		if used, err := s.reclaim(ctx, m, s.releaseObjects(ctx, m, []string{old.URL})); err == nil {
			m.StorageUsed = used
		}
	}
	return m, nil
}

// RemoveBlock drops a block, deletes its objects and returns the bytes
// their asset records account for to the quota, never going below zero.
func (s *MemoryService) RemoveBlock(ctx context.Context, rc tenant.RequestContext, memoryID, blockID string, opts guard.Options) (_ *models.Memory, err error) {
	ctx, span := startSpan(ctx, "MemoryService.RemoveBlock", attribute.String("memory_id", memoryID), attribute.String("block_id", blockID))
	defer func() { endSpan(span, err) }()

	repo := s.repomanager.Memories(s.db)
	m, err := loadForWrite(ctx, repo, rc, memoryID, opts)
	if err != nil {
		return nil, wrapInternal("remove block", err)
	}

	block, ok := m.RemoveBlock(blockID)
	if !ok {
		return nil, common.ErrorNotFound
	}

	m.UpdatedAt = s.now().UTC()
	if err := repo.Update(ctx, m); err != nil {
		return nil, wrapInternal("remove block", err)
	}

	used, err := s.reclaim(ctx, m, s.releaseObjects(ctx, m, block.ObjectURLs()))
	if err != nil {
		return nil, wrapInternal("reclaim storage", err)
	}
	m.StorageUsed = used
	return m, nil
}

// PresignBlock returns a short-lived download URL for a media block. It is
// how owners view private blocks, which are not on the public page.
func (s *MemoryService) PresignBlock(ctx context.Context, rc tenant.RequestContext, memoryID, blockID string) (string, error) {
	m, err := s.Get(ctx, rc, memoryID)
	if err != nil {
		return "", err
	}
	block, ok := m.Block(blockID)
	if !ok || block.URL == "" {
		return "", common.ErrorNotFound
	}
	key, ok := s.store.KeyFromURL(block.URL)
	if !ok {
		return block.URL, nil
	}
	url, err := s.store.PresignGet(ctx, key, s.config.PresignTTL)
	if err != nil {
		return "", wrapInternal("presign block", err)
	}
	return url, nil
}

func (s *MemoryService) loadForUpload(ctx context.Context, rc tenant.RequestContext, memoryID string, files []Upload, opts guard.Options) (*models.Memory, error) {
	m, err := loadForWrite(ctx, s.repomanager.Memories(s.db), rc, memoryID, opts)
	if err != nil {
		return nil, wrapInternal("load memory", err)
	}

	sizes := make([]int64, 0, len(files))
	for _, f := range files {
		if f.Size < 0 || f.Body == nil {
			return nil, fmt.Errorf("%w: invalid upload %q", common.ErrorValidation, f.Filename)
		}
		sizes = append(sizes, f.Size)
	}

	total := quota.SumSizes(sizes)
	limit := m.EffectiveStorageLimit()
	if d := quota.CheckLimit(m.StorageUsed, limit, total); !d.Allowed {
		s.logger.Info(ctx, "upload rejected by quota", "memory_id", m.ID, "used", m.StorageUsed, "limit", limit, "attempted", total)
		return nil, quota.Exceeded(m.StorageUsed, limit, total)
	}
	return m, nil
}

// putAll uploads files in order. On failure the objects stored so far are
// deleted again.
func (s *MemoryService) putAll(ctx context.Context, m *models.Memory, files []Upload) ([]models.Asset, error) {
	now := s.now().UTC()
	stored := make([]models.Asset, 0, len(files))
	for _, f := range files {
		key := storage.NewObjectKey(m.ID, f.Filename)
		url, err := s.store.Put(ctx, key, f.Body, f.Size, f.ContentType)
		if err != nil {
			s.discard(ctx, stored)
			return nil, wrapInternal("upload", err)
		}
		stored = append(stored, models.Asset{
			ID:          uuid.NewString(),
			MemoryID:    m.ID,
			OwnerUID:    m.OwnerUID,
			Tenant:      m.Tenant,
			StoragePath: key,
			URL:         url,
			Size:        f.Size,
			CreatedAt:   now,
		})
	}
	return stored, nil
}

// commitUpload records the assets and adds their bytes to the quota, then
// saves the memory once apply has attached them. A failure at any step
// undoes the earlier ones: the quota delta, the asset records and the
// uploaded objects.
func (s *MemoryService) commitUpload(ctx context.Context, m *models.Memory, stored []models.Asset, apply func(*models.Memory)) (*models.Memory, error) {
	assetRepo := s.repomanager.Assets(s.db)
	memRepo := s.repomanager.Memories(s.db)

	var (
		recorded []string
		added    int64
	)
	rollback := func() {
		if added != 0 {
			if _, err := memRepo.AddStorageUsed(ctx, m.ID, -added); err != nil {
				s.logger.Error(ctx, "storage usage not rolled back", "memory_id", m.ID, "bytes", added, "error", err)
			}
		}
		for _, id := range recorded {
			if err := assetRepo.Delete(ctx, id); err != nil {
				s.logger.Warn(ctx, "asset record not rolled back", "asset_id", id, "error", err)
			}
		}
		s.discard(ctx, stored)
	}

	sizes := make([]int64, 0, len(stored))
	for i := range stored {
		if err := assetRepo.Create(ctx, &stored[i]); err != nil {
			rollback()
			return nil, wrapInternal("record asset", err)
		}
		recorded = append(recorded, stored[i].ID)
		sizes = append(sizes, stored[i].Size)
	}

	total := quota.SumSizes(sizes)
	used, err := memRepo.AddStorageUsed(ctx, m.ID, total)
	if err != nil {
		rollback()
		return nil, wrapInternal("account storage", err)
	}
	added = total

	apply(m)
	m.StorageUsed = used
	m.UpdatedAt = s.now().UTC()
	if err := m.Validate(); err != nil {
		rollback()
		return nil, err
	}
	if err := memRepo.Update(ctx, m); err != nil {
		rollback()
		return nil, wrapInternal("save memory", err)
	}
	return m, nil
}

// reclaim returns size bytes to the quota. The delta never exceeds what
// the memory is known to use.
func (s *MemoryService) reclaim(ctx context.Context, m *models.Memory, size int64) (int64, error) {
	if size <= 0 {
		return m.StorageUsed, nil
	}
	delta := quota.Reclaim(m.StorageUsed, size) - m.StorageUsed
	used, err := s.repomanager.Memories(s.db).AddStorageUsed(ctx, m.ID, delta)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "storage reclaim failed", "memory_id", m.ID, "bytes", size, "error", err)
		}
		return 0, err
	}
	return used, nil
}

// discard removes uploaded objects that will not be referenced.
func (s *MemoryService) discard(ctx context.Context, stored []models.Asset) {
	for _, a := range stored {
		if err := s.store.Delete(ctx, a.StoragePath); err != nil {
			s.logger.Warn(ctx, "orphaned object not removed", "key", a.StoragePath, "error", err)
		}
	}
}

func newBlock(in BlockInput) models.MediaBlock {
	vis := in.Visibility
	if vis == "" {
		vis = models.VisibilityPublic
	}
	return models.MediaBlock{
		ID:          uuid.NewString(),
		Kind:        in.Kind,
		Visibility:  vis,
		Title:       in.Title,
		Description: in.Description,
		IsTopic:     in.IsTopic,
	}
}
