package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishable() *models.Memory {
	m := draft("m1", "u1", "acme")
	m.Blocks = []models.MediaBlock{
		{ID: "b1", Kind: models.BlockText, Text: "public"},
		{ID: "b2", Kind: models.BlockText, Text: "secret", Visibility: models.VisibilityPrivate},
	}
	return m
}

func TestPublish_Discovery(t *testing.T) {
	tests := []struct {
		name     string
		recorded string
		pages    []*models.PublicPage
		wantPage string
	}{
		{
			name:     "handed-off page wins",
			recorded: "p-handoff",
			pages: []*models.PublicPage{
				{ID: "p-handoff", Tenant: "acme"},
				{ID: "p-linked", Tenant: "acme", MemoryID: "m1"},
			},
			wantPage: "p-handoff",
		},
		{
			name: "page already linked to the memory",
			pages: []*models.PublicPage{
				{ID: "p-linked", Tenant: "acme", MemoryID: "m1", CreatedAt: t0},
				{ID: "p-reserved", Tenant: "acme", OwnerUID: "u1"},
			},
			wantPage: "p-linked",
		},
		{
			name: "reserved page of the owner is backfilled",
			pages: []*models.PublicPage{
				{ID: "p-reserved", Tenant: "acme", OwnerUID: "u1"},
				{ID: "p-other-owner", Tenant: "acme", OwnerUID: "u2"},
			},
			wantPage: "p-reserved",
		},
		{
			name:     "recorded page of another tenant is skipped",
			recorded: "p-foreign",
			pages: []*models.PublicPage{
				{ID: "p-foreign", Tenant: "globex"},
				{ID: "p-reserved", Tenant: "acme", OwnerUID: "u1"},
			},
			wantPage: "p-reserved",
		},
		{
			name:     "recorded page linked elsewhere is skipped",
			recorded: "p-taken",
			pages: []*models.PublicPage{
				{ID: "p-taken", Tenant: "acme", MemoryID: "m9"},
			},
		},
		{name: "nothing to reuse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			rm := newFakeRepoManager()
			m := publishable()
			m.PublicPageID = tt.recorded
			rm.m = newFakeMemories(m)
			rm.p = newFakePages(tt.pages...)
			s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

			page, err := s.Publish(context.Background(), owner("u1", "acme"), "m1", guard.Options{})
			require.NoError(t, err)
			if tt.wantPage != "" {
				assert.Equal(t, tt.wantPage, page.ID)
			} else {
				for _, p := range tt.pages {
					assert.NotEqual(t, p.ID, page.ID)
				}
			}

			stored := rm.p.items[page.ID]
			require.NotNil(t, stored)
			assert.Equal(t, "m1", stored.MemoryID)
			assert.Equal(t, "acme", stored.Tenant)
			assert.Equal(t, []string{"b1"}, stored.Ordering)
			assert.Equal(t, 1, stored.Publish.Version)

			saved := rm.m.items["m1"]
			assert.Equal(t, page.ID, saved.PublicPageID)
			assert.Equal(t, models.MemoryPublished, saved.Status)
		})
	}
}

func TestPublish_RepublishBumpsVersion(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.m = newFakeMemories(publishable())
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())
	ctx := context.Background()

	first, err := s.Publish(ctx, owner("u1", "acme"), "m1", guard.Options{})
	require.NoError(t, err)
	s.now = func() time.Time { return t0.Add(time.Hour) }
	second, err := s.Publish(ctx, owner("u1", "acme"), "m1", guard.Options{})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Publish.Version)
	assert.Len(t, rm.p.items, 1)
}

func TestPageAccess(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.p = newFakePages(&models.PublicPage{ID: "p1", Tenant: "acme", OwnerUID: "u1", Access: models.Access{Public: true}})
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())
	ctx := context.Background()

	page, err := s.GetPublicPage(ctx, "p1", "")
	require.NoError(t, err)
	assert.Equal(t, "p1", page.ID)

	require.ErrorIs(t, s.SetPageAccess(ctx, owner("u1", "acme"), "p1", false, ""), common.ErrorValidation)
	require.ErrorIs(t, s.SetPageAccess(ctx, owner("u2", "acme"), "p1", false, "pw"), common.ErrorUnauthorized)
	require.ErrorIs(t, s.SetPageAccess(ctx, owner("u1", "globex"), "p1", false, "pw"), common.ErrTenantMismatch)
	require.NoError(t, s.SetPageAccess(ctx, owner("u1", "acme"), "p1", false, "open sesame"))

	_, err = s.GetPublicPage(ctx, "p1", "")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = s.GetPublicPage(ctx, "p1", "wrong")
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	page, err = s.GetPublicPage(ctx, "p1", "open sesame")
	require.NoError(t, err)
	assert.Empty(t, page.Access.PasswordHash)
	assert.NotEmpty(t, rm.p.items["p1"].Access.PasswordHash)

	_, err = s.GetPublicPage(ctx, "missing", "")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
