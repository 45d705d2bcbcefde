package models

import "time"

const PublishStatusPublished = "published"

// PublishInfo tracks the published projection's version.
type PublishInfo struct {
	Status      string     `json:"status"`
	Version     int        `json:"version"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// Access controls who may read a public page. A page is never
// tenant-restricted; a non-public page requires its password.
type Access struct {
	Public       bool   `json:"public"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// PublicPage is the externally shareable projection of a Memory. Its ID is
// what short links and NFC tags point at.
type PublicPage struct {
	ID       string `json:"id"`
	Tenant   string `json:"tenant"`
	MemoryID string `json:"memoryId"`
	OwnerUID string `json:"ownerUid"`

	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Bio          string            `json:"bio,omitempty"`
	ProfileImage *Image            `json:"profileImage,omitempty"`
	CoverImage   *Image            `json:"coverImage,omitempty"`
	Blocks       []MediaBlock      `json:"blocks"`
	Colors       map[string]string `json:"colors,omitempty"`
	FontSizes    map[string]int    `json:"fontSizes,omitempty"`
	TopicsTitle  string            `json:"topicsTitle,omitempty"`
	Ordering     []string          `json:"ordering"`

	Publish PublishInfo `json:"publish"`
	Access  Access      `json:"access"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Project copies the displayable part of m onto the page and bumps the
// publish version. Private blocks are left out of both Blocks and Ordering.
func (p *PublicPage) Project(m *Memory, now time.Time) {
	p.MemoryID = m.ID
	p.OwnerUID = m.OwnerUID
	p.Title = m.Title
	p.Description = m.Description
	p.Bio = m.Bio
	p.ProfileImage = m.ProfileImage
	p.CoverImage = m.CoverImage
	p.Colors = m.Colors
	p.FontSizes = m.FontSizes
	p.TopicsTitle = m.TopicsTitle

	p.Blocks = make([]MediaBlock, 0, len(m.Blocks))
	p.Ordering = make([]string, 0, len(m.Blocks))
	for _, b := range m.Blocks {
		if !b.IsPublic() {
			continue
		}
		p.Blocks = append(p.Blocks, b)
		p.Ordering = append(p.Ordering, b.ID)
	}

	p.Publish.Status = PublishStatusPublished
	p.Publish.Version++
	published := now
	p.Publish.PublishedAt = &published
	p.UpdatedAt = now
}

// Redacted returns a copy safe to hand to anonymous readers.
func (p PublicPage) Redacted() PublicPage {
	p.Access.PasswordHash = ""
	return p
}
