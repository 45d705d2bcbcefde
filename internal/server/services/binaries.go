package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/storage"
)

// binaryRefs maps every binary URL of m to the size recorded for it.
func binaryRefs(m *models.Memory) map[string]int64 {
	refs := make(map[string]int64)
	for _, b := range m.Blocks {
		switch b.Kind {
		case models.BlockImage, models.BlockVideo, models.BlockAudio:
			if b.URL != "" {
				refs[b.URL] = b.FileSize
			}
		case models.BlockAlbum:
			for _, it := range b.Items {
				if it.URL != "" {
					refs[it.URL] = it.FileSize
				}
			}
		}
	}
	for _, img := range []*models.Image{m.CoverImage, m.ProfileImage} {
		if !img.IsZero() {
			refs[img.URL] = img.FileSize
		}
	}
	return refs
}

// pinBinaries makes the binary references of next agree with stored.
// Sizes are server-owned: a URL already on the memory keeps its recorded
// size and an outside URL counts for nothing. Object store URLs the memory
// does not already reference are refused, as is referencing one twice.
func (s *MemoryService) pinBinaries(stored, next *models.Memory) error {
	known := binaryRefs(stored)
	seen := make(map[string]struct{}, len(known))

	pin := func(url string, size *int64) error {
		*size = 0
		if url == "" {
			return nil
		}
		if n, ok := known[url]; ok {
			if _, dup := seen[url]; dup {
				return fmt.Errorf("%w: %s is referenced more than once", common.ErrorValidation, url)
			}
			seen[url] = struct{}{}
			*size = n
			return nil
		}
		if _, ok := s.store.KeyFromURL(url); ok {
			return fmt.Errorf("%w: %s is not a file of this memory", common.ErrorValidation, url)
		}
		return nil
	}

	for i := range next.Blocks {
		b := &next.Blocks[i]
		switch b.Kind {
		case models.BlockAlbum:
			b.URL, b.FileSize = "", 0
			for j := range b.Items {
				if err := pin(b.Items[j].URL, &b.Items[j].FileSize); err != nil {
					return err
				}
			}
		case models.BlockText:
			b.URL, b.FileSize, b.Items = "", 0, nil
		default:
			b.Items = nil
			if err := pin(b.URL, &b.FileSize); err != nil {
				return err
			}
		}
	}
	for _, img := range []*models.Image{next.CoverImage, next.ProfileImage} {
		if img == nil {
			continue
		}
		if err := pin(img.URL, &img.FileSize); err != nil {
			return err
		}
	}
	return nil
}

// ownedKey returns the object key behind url when it is one of memoryID's
// uploads.
func (s *MemoryService) ownedKey(memoryID, url string) (string, bool) {
	key, ok := s.store.KeyFromURL(url)
	if !ok || !storage.OwnedBy(memoryID, key) {
		return "", false
	}
	return key, true
}

func (s *MemoryService) assetKey(a *models.Asset) string {
	if a.StoragePath != "" {
		return a.StoragePath
	}
	key, _ := s.store.KeyFromURL(a.URL)
	return key
}

// releaseObjects deletes the objects of m behind urls together with their
// asset records, best effort. URLs outside m's key space are left alone.
// It returns the bytes the asset records accounted for, which is what the
// quota gets back.
func (s *MemoryService) releaseObjects(ctx context.Context, m *models.Memory, urls []string) int64 {
	keys := newKeySet()
	for _, u := range urls {
		key, ok := s.ownedKey(m.ID, u)
		if !ok {
			s.logger.Debug(ctx, "not a stored object of this memory, keeping", "memory_id", m.ID, "url", u)
			continue
		}
		keys.add(key)
	}
	if len(keys.list) == 0 {
		return 0
	}

	var size int64
	assetRepo := s.repomanager.Assets(s.db)
	records, err := assetRepo.ListByMemory(ctx, m.ID)
	if err != nil {
		s.logger.Warn(ctx, "asset records unavailable, storage not reclaimed", "memory_id", m.ID, "error", err)
	}
	for _, a := range records {
		if !keys.has(s.assetKey(a)) {
			continue
		}
		size += a.Size
		if err := assetRepo.Delete(ctx, a.ID); err != nil {
			s.logger.Warn(ctx, "asset record deletion failed", "asset_id", a.ID, "error", err)
		}
	}

	for _, key := range keys.list {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Warn(ctx, "object deletion failed", "key", key, "error", err)
		}
	}
	return size
}
