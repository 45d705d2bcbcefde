package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMemory() *Memory {
	return &Memory{
		ID:       "m1",
		OwnerUID: "u1",
		Tenant:   "acme",
		Status:   MemoryDraft,
		Blocks: []MediaBlock{
			{ID: "b1", Kind: BlockImage, URL: "https://cdn/x/1.jpg", FileSize: 10},
			{ID: "b2", Kind: BlockText, Text: "hello", Visibility: VisibilityPrivate},
			{ID: "b3", Kind: BlockAlbum, Items: []AlbumItem{
				{URL: "https://cdn/x/a.jpg", FileSize: 2},
				{URL: "https://cdn/x/b.jpg", FileSize: 3},
			}},
			{ID: "b4", Kind: BlockAudio, URL: "https://cdn/x/s.mp3", FileSize: 7, Visibility: VisibilityPrivate},
		},
		CoverImage:   &Image{URL: "https://cdn/x/cover.jpg"},
		ProfileImage: &Image{URL: "https://cdn/x/profile.jpg"},
	}
}

func TestMemory_ObjectURLs(t *testing.T) {
	m := sampleMemory()
	assert.Equal(t, []string{
		"https://cdn/x/1.jpg",
		"https://cdn/x/a.jpg",
		"https://cdn/x/b.jpg",
		"https://cdn/x/s.mp3",
		"https://cdn/x/cover.jpg",
		"https://cdn/x/profile.jpg",
	}, m.ObjectURLs())
}

func TestMediaBlock_StoredSize(t *testing.T) {
	m := sampleMemory()
	sizes := make([]int64, 0, len(m.Blocks))
	for _, b := range m.Blocks {
		sizes = append(sizes, b.StoredSize())
	}
	assert.Equal(t, []int64{10, 0, 5, 7}, sizes)
}

func TestMemory_Validate(t *testing.T) {
	m := sampleMemory()
	require.NoError(t, m.Validate())

	m.Blocks = append(m.Blocks, MediaBlock{ID: "b1", Kind: BlockText})
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorValidation))
	assert.Contains(t, err.Error(), "duplicate block id")
}

func TestMediaBlock_Validate(t *testing.T) {
	tests := []struct {
		name  string
		block MediaBlock
		ok    bool
	}{
		{"image ok", MediaBlock{ID: "x", Kind: BlockImage, URL: "u"}, true},
		{"video without url", MediaBlock{ID: "x", Kind: BlockVideo}, false},
		{"album item without url", MediaBlock{ID: "x", Kind: BlockAlbum, Items: []AlbumItem{{FileSize: 1}}}, false},
		{"unknown kind", MediaBlock{ID: "x", Kind: "gif"}, false},
		{"bad visibility", MediaBlock{ID: "x", Kind: BlockText, Visibility: "friends"}, false},
		{"missing id", MediaBlock{Kind: BlockText}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.block.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, common.ErrorValidation)
			}
		})
	}
}

func TestMemory_RemoveBlockAndOrdering(t *testing.T) {
	m := sampleMemory()
	b, ok := m.RemoveBlock("b3")
	require.True(t, ok)
	assert.Equal(t, BlockAlbum, b.Kind)
	assert.Equal(t, []string{"b1", "b2", "b4"}, m.Ordering())

	_, ok = m.RemoveBlock("missing")
	assert.False(t, ok)
}

func TestMemory_EffectiveStorageLimit(t *testing.T) {
	m := &Memory{}
	assert.Equal(t, DefaultStorageLimit, m.EffectiveStorageLimit())
	m.StorageLimit = 10
	assert.Equal(t, int64(10), m.EffectiveStorageLimit())
}

func TestPublicPage_ProjectSkipsPrivateBlocks(t *testing.T) {
	m := sampleMemory()
	m.Title = "Grandma"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	p := &PublicPage{ID: "p1", Tenant: "acme", Access: Access{Public: true, PasswordHash: "h"}}
	p.Project(m, now)
	p.Project(m, now)

	assert.Equal(t, "m1", p.MemoryID)
	assert.Equal(t, "Grandma", p.Title)
	assert.Equal(t, []string{"b1", "b3"}, p.Ordering)
	assert.Len(t, p.Blocks, 2)
	assert.Equal(t, 2, p.Publish.Version)
	assert.Equal(t, PublishStatusPublished, p.Publish.Status)
	require.NotNil(t, p.Publish.PublishedAt)
	assert.Equal(t, now, *p.Publish.PublishedAt)

	r := p.Redacted()
	assert.Empty(t, r.Access.PasswordHash)
	assert.Equal(t, "h", p.Access.PasswordHash)
}

func TestMediaBlock_JSONUsesTypeTag(t *testing.T) {
	b, err := json.Marshal(MediaBlock{ID: "b", Kind: BlockVideo, URL: "u", Visibility: VisibilityPublic})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"b","type":"video","visibility":"public","url":"u"}`, string(b))
}
