package models

import (
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/common"
)

type BlockKind string

const (
	BlockImage BlockKind = "image"
	BlockVideo BlockKind = "video"
	BlockAudio BlockKind = "audio"
	BlockAlbum BlockKind = "album"
	BlockText  BlockKind = "text"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// AlbumItem is one entry of an album block.
type AlbumItem struct {
	URL      string `json:"url"`
	FileSize int64  `json:"fileSize"`
	Text     string `json:"text,omitempty"`
}

// MediaBlock is an ordered content unit embedded in a Memory.
//
// Kind selects which of the variant fields are meaningful: URL for image,
// video and audio; Text for text; Items for album.
type MediaBlock struct {
	ID          string     `json:"id"`
	Kind        BlockKind  `json:"type"`
	Visibility  Visibility `json:"visibility"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	IsTopic     bool       `json:"isTopic,omitempty"`
	FileSize    int64      `json:"fileSize,omitempty"`

	URL   string      `json:"url,omitempty"`
	Text  string      `json:"text,omitempty"`
	Items []AlbumItem `json:"items,omitempty"`
}

// IsPublic reports whether the block is shown on the public page. Blocks
// with no visibility set are public.
func (b *MediaBlock) IsPublic() bool {
	return b.Visibility != VisibilityPrivate
}

// ObjectURLs returns the binary URLs the block references.
func (b *MediaBlock) ObjectURLs() []string {
	switch b.Kind {
	case BlockImage, BlockVideo, BlockAudio:
		if b.URL == "" {
			return nil
		}
		return []string{b.URL}
	case BlockAlbum:
		urls := make([]string, 0, len(b.Items))
		for _, it := range b.Items {
			if it.URL != "" {
				urls = append(urls, it.URL)
			}
		}
		return urls
	case BlockText:
		return nil
	}
	return nil
}

// StoredSize is the number of quota bytes the block accounts for.
func (b *MediaBlock) StoredSize() int64 {
	switch b.Kind {
	case BlockImage, BlockVideo, BlockAudio:
		return b.FileSize
	case BlockAlbum:
		var total int64
		for _, it := range b.Items {
			total += it.FileSize
		}
		return total
	case BlockText:
		return 0
	}
	return 0
}

func (b *MediaBlock) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("%w: block without id", common.ErrorValidation)
	}
	switch b.Visibility {
	case "", VisibilityPublic, VisibilityPrivate:
	default:
		return fmt.Errorf("%w: block %s: unknown visibility %q", common.ErrorValidation, b.ID, b.Visibility)
	}
	switch b.Kind {
	case BlockImage, BlockVideo, BlockAudio:
		if b.URL == "" {
			return fmt.Errorf("%w: %s block %s has no url", common.ErrorValidation, b.Kind, b.ID)
		}
	case BlockAlbum:
		for i, it := range b.Items {
			if it.URL == "" {
				return fmt.Errorf("%w: album %s item %d has no url", common.ErrorValidation, b.ID, i)
			}
		}
	case BlockText:
	default:
		return fmt.Errorf("%w: block %s: unknown type %q", common.ErrorValidation, b.ID, b.Kind)
	}
	return nil
}
