package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
)

// DefaultStorageLimit is the per-memory binary storage cap in bytes.
const DefaultStorageLimit int64 = 200 << 20

type MemoryStatus string

const (
	MemoryDraft     MemoryStatus = "draft"
	MemoryPublished MemoryStatus = "published"
)

// Memory is an owner's editable content item.
type Memory struct {
	ID       string `json:"id"`
	OwnerUID string `json:"ownerUid"`
	Tenant   string `json:"tenant"`

	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Bio          string            `json:"bio,omitempty"`
	ProfileImage *Image            `json:"profileImage,omitempty"`
	CoverImage   *Image            `json:"coverImage,omitempty"`
	Blocks       []MediaBlock      `json:"blocks"`
	Colors       map[string]string `json:"colors,omitempty"`
	FontSizes    map[string]int    `json:"fontSizes,omitempty"`
	TopicsTitle  string            `json:"topicsTitle,omitempty"`

	StorageUsed               int64  `json:"storageUsed"`
	StorageLimit              int64  `json:"storageLimit"`
	StorageSubscriptionStatus string `json:"storageSubscriptionStatus,omitempty"`

	Status         MemoryStatus `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	ExpiresAt      time.Time    `json:"expiresAt"`
	ExtensionCount int          `json:"extensionCount"`
	LastExtendedAt *time.Time   `json:"lastExtendedAt,omitempty"`

	PublicPageID string `json:"publicPageId,omitempty"`
}

// EffectiveStorageLimit returns StorageLimit or DefaultStorageLimit when unset.
func (m *Memory) EffectiveStorageLimit() int64 {
	if m.StorageLimit <= 0 {
		return DefaultStorageLimit
	}
	return m.StorageLimit
}

// Block returns the block with the given id.
func (m *Memory) Block(id string) (*MediaBlock, bool) {
	for i := range m.Blocks {
		if m.Blocks[i].ID == id {
			return &m.Blocks[i], true
		}
	}
	return nil, false
}

// RemoveBlock drops the block with the given id and returns it.
func (m *Memory) RemoveBlock(id string) (MediaBlock, bool) {
	for i := range m.Blocks {
		if m.Blocks[i].ID == id {
			b := m.Blocks[i]
			m.Blocks = append(m.Blocks[:i], m.Blocks[i+1:]...)
			return b, true
		}
	}
	return MediaBlock{}, false
}

// Ordering lists block ids in display order.
func (m *Memory) Ordering() []string {
	ids := make([]string, 0, len(m.Blocks))
	for _, b := range m.Blocks {
		ids = append(ids, b.ID)
	}
	return ids
}

// ObjectURLs returns every binary URL referenced by the memory: block media,
// album items, then cover and profile images.
func (m *Memory) ObjectURLs() []string {
	var urls []string
	for _, b := range m.Blocks {
		urls = append(urls, b.ObjectURLs()...)
	}
	if !m.CoverImage.IsZero() {
		urls = append(urls, m.CoverImage.URL)
	}
	if !m.ProfileImage.IsZero() {
		urls = append(urls, m.ProfileImage.URL)
	}
	return urls
}

// Validate checks the structural invariants of the document.
func (m *Memory) Validate() error {
	seen := make(map[string]struct{}, len(m.Blocks))
	for i := range m.Blocks {
		b := &m.Blocks[i]
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate block id %q", common.ErrorValidation, b.ID)
		}
		seen[b.ID] = struct{}{}
		if err := b.Validate(); err != nil {
			return err
		}
	}
	switch m.Status {
	case MemoryDraft, MemoryPublished:
	default:
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, m.Status)
	}
	return nil
}
