package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/expiry"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "ABCD1234EFGH5678"

func issuedOrder(issuedAt time.Time) *models.Order {
	exp := issuedAt.Add(30 * 24 * time.Hour)
	return &models.Order{
		ID:                 "o1",
		Email:              "buyer@example.com",
		Tenant:             "acme",
		ProductType:        models.ProductMemory,
		SecretKey:          testKey,
		SecretKeyExpiresAt: &exp,
		PaymentStatus:      models.PaymentPaid,
		OrderStatus:        models.OrderCredentialIssued,
		CreatedAt:          issuedAt,
	}
}

func TestCreate_CredentialWindow(t *testing.T) {
	issued := t0.Add(-40 * 24 * time.Hour)

	tests := []struct {
		name    string
		now     time.Time
		key     string
		prep    func(rm *fakeRepoManager)
		wantErr error
	}{
		{name: "29 days after issue", now: issued.Add(29 * 24 * time.Hour), key: testKey},
		{name: "31 days after issue", now: issued.Add(31 * 24 * time.Hour), key: testKey, wantErr: common.ErrCredentialExpired},
		{name: "malformed", now: issued, key: "abcd-1234", wantErr: common.ErrCredentialInvalid},
		{name: "unknown", now: issued, key: "ZZZZ2222YYYY3333", wantErr: common.ErrCredentialInvalid},
		{name: "consumed", now: issued.Add(time.Hour), key: testKey, wantErr: common.ErrCredentialInvalid,
			prep: func(rm *fakeRepoManager) {
				at := issued
				rm.o.items["o1"].SecretKeyConsumedAt = &at
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMockDB(t)
			rm := newFakeRepoManager()
			rm.o = newFakeOrders(issuedOrder(issued))
			if tt.prep != nil {
				tt.prep(rm)
			}
			if tt.wantErr == nil {
				mock.ExpectBegin()
				mock.ExpectCommit()
			}

			s := newMemoryService(t, db, rm, newFakeStore(), testConfig())
			s.now = func() time.Time { return tt.now }

			m, err := s.Create(context.Background(), owner("u1", "acme"), tt.key, NewMemory{Title: "Grandma"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, rm.m.items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "acme", m.Tenant)
			assert.Equal(t, "u1", m.OwnerUID)
			assert.Equal(t, models.MemoryDraft, m.Status)
			assert.Equal(t, expiry.ExpirationDate(tt.now.UTC(), 0), m.ExpiresAt)

			o := rm.o.items["o1"]
			require.NotNil(t, o.SecretKeyConsumedAt)
			assert.Equal(t, m.ID, o.MemoryID)
			assert.Equal(t, models.OrderFulfilled, o.OrderStatus)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreate_AdminCredentialAndHandoff(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.o = newFakeOrders(issuedOrder(t0))
	rm.c = newFakeClaims(&models.ClaimRequest{ID: "c1", OrderID: "o1", Tenant: "acme", PublicPageID: "page-nfc"})
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

	mock.ExpectBegin()
	mock.ExpectCommit()
	m, err := s.Create(context.Background(), owner("u1", "acme"), "ADMIN0000000KEY0", NewMemory{Title: "a"})
	require.NoError(t, err)
	assert.Empty(t, m.PublicPageID)
	assert.Nil(t, rm.o.items["o1"].SecretKeyConsumedAt)

	mock.ExpectBegin()
	mock.ExpectCommit()
	m, err = s.Create(context.Background(), owner("u1", "acme"), testKey, NewMemory{Title: "b"})
	require.NoError(t, err)
	assert.Equal(t, "page-nfc", m.PublicPageID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RequiresUser(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := newMemoryService(t, db, newFakeRepoManager(), newFakeStore(), testConfig())
	_, err := s.Create(context.Background(), service("acme"), testKey, NewMemory{})
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestCreate_ConsumeRaceRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.o = newFakeOrders(issuedOrder(t0))
	// Another request consumes the key between the check and the write.
	rm.o.consumeErr = common.ErrCredentialInvalid
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.Create(context.Background(), owner("u1", "acme"), testKey, NewMemory{})
	require.ErrorIs(t, err, common.ErrCredentialInvalid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteIsolation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.m = newFakeMemories(draft("m1", "u1", "acme"))
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())
	ctx := context.Background()
	patch := map[string]any{"title": "changed"}

	_, err := s.Update(ctx, owner("u1", "globex"), "m1", patch, guard.Options{})
	require.ErrorIs(t, err, common.ErrTenantMismatch)
	assert.Equal(t, "In memory of m1", rm.m.items["m1"].Title)

	_, err = s.Update(ctx, owner("u2", "acme"), "m1", patch, guard.Options{})
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Update(ctx, owner("u2", "globex"), "m1", patch, guard.Options{SkipTenantCheck: true})
	require.ErrorIs(t, err, common.ErrTenantMismatch)

	m, err := s.Update(ctx, owner("u1", "globex"), "m1", patch, guard.Options{SkipTenantCheck: true})
	require.NoError(t, err)
	assert.Equal(t, "changed", m.Title)
	assert.Equal(t, "acme", m.Tenant)

	_, err = s.Update(ctx, service("globex"), "m1", patch, guard.Options{})
	require.ErrorIs(t, err, common.ErrTenantMismatch)
	_, err = s.Update(ctx, service("globex"), "m1", patch, guard.Options{SkipTenantCheck: true})
	require.NoError(t, err)

	_, err = s.Delete(ctx, owner("u1", "globex"), "m1", guard.Options{})
	require.ErrorIs(t, err, common.ErrTenantMismatch)
	assert.Contains(t, rm.m.items, "m1")
}

func TestUpdate_SanitizesAndRestricts(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	base := draft("m1", "u1", "acme")
	base.Bio = "kept"
	base.StorageUsed = 42
	base.Colors = map[string]string{"bg": "#fff"}
	rm.m = newFakeMemories(base)
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())
	ctx := context.Background()

	m, err := s.Update(ctx, owner("u1", "acme"), "m1", map[string]any{
		"title":  "New",
		"bio":    nil,
		"colors": map[string]any{"bg": "#000", "fg": nil},
		"blocks": []any{
			map[string]any{"id": "t1", "type": "text", "text": "hi", "title": nil},
			nil,
		},
	}, guard.Options{})
	require.NoError(t, err)
	assert.Equal(t, "New", m.Title)
	assert.Equal(t, "kept", m.Bio)
	assert.Equal(t, map[string]string{"bg": "#000"}, m.Colors)
	require.Len(t, m.Blocks, 1)
	assert.Equal(t, "t1", m.Blocks[0].ID)
	assert.Equal(t, int64(42), m.StorageUsed)
	assert.Equal(t, t0, m.UpdatedAt)

	for _, field := range []string{"tenant", "storageUsed", "ownerUid", "expiresAt", "status"} {
		_, err = s.Update(ctx, owner("u1", "acme"), "m1", map[string]any{field: "x"}, guard.Options{})
		require.ErrorIs(t, err, common.ErrorValidation, field)
	}

	_, err = s.Update(ctx, owner("u1", "acme"), "m1", map[string]any{
		"blocks": []any{
			map[string]any{"id": "dup", "type": "text"},
			map[string]any{"id": "dup", "type": "text"},
		},
	}, guard.Options{})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestUpdate_StatusOnlyMovesThroughPublish(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.m = newFakeMemories(draft("m1", "u1", "acme"))
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

	_, err := s.Update(context.Background(), owner("u1", "acme"), "m1", map[string]any{"status": string(models.MemoryPublished)}, guard.Options{})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, models.MemoryDraft, rm.m.items["m1"].Status)
}

func withUploads() *models.Memory {
	m := draft("m1", "u1", "acme")
	m.StorageUsed = 6 * mb
	m.Blocks = []models.MediaBlock{
		{ID: "b1", Kind: models.BlockImage, URL: cdn + "memories/m1/photo.jpg", FileSize: 2 * mb},
		{ID: "b2", Kind: models.BlockAlbum, Items: []models.AlbumItem{
			{URL: cdn + "memories/m1/a1.jpg", FileSize: 1 * mb},
			{URL: cdn + "memories/m1/a2.jpg", FileSize: 2 * mb},
		}},
	}
	m.CoverImage = &models.Image{URL: cdn + "memories/m1/cover.jpg", FileSize: 1 * mb}
	return m
}

func TestUpdate_BinaryReferences(t *testing.T) {
	foreign := cdn + "memories/mv/photo.jpg"

	tests := []struct {
		name  string
		patch map[string]any
	}{
		{"block pointing at another memory", map[string]any{"blocks": []any{
			map[string]any{"id": "b1", "type": "image", "url": foreign},
		}}},
		{"album item pointing at another memory", map[string]any{"blocks": []any{
			map[string]any{"id": "b2", "type": "album", "items": []any{
				map[string]any{"url": cdn + "memories/m1/a1.jpg"},
				map[string]any{"url": foreign},
			}},
		}}},
		{"cover pointing at another memory", map[string]any{"coverImage": map[string]any{"url": foreign}}},
		{"profile pointing at another memory", map[string]any{"profileImage": map[string]any{"url": foreign}}},
		{"unreferenced object of this memory", map[string]any{"profileImage": map[string]any{"url": cdn + "memories/m1/other.jpg"}}},
		{"same object twice", map[string]any{"profileImage": map[string]any{"url": cdn + "memories/m1/cover.jpg"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			rm := newFakeRepoManager()
			rm.m = newFakeMemories(withUploads())
			s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

			_, err := s.Update(context.Background(), owner("u1", "acme"), "m1", tt.patch, guard.Options{})
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Equal(t, withUploads().Blocks, rm.m.items["m1"].Blocks)
			assert.Equal(t, withUploads().CoverImage, rm.m.items["m1"].CoverImage)
		})
	}
}

func TestUpdate_FileSizesAreServerOwned(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.m = newFakeMemories(withUploads())
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

	m, err := s.Update(context.Background(), owner("u1", "acme"), "m1", map[string]any{
		"blocks": []any{
			map[string]any{"id": "b2", "type": "album", "items": []any{
				map[string]any{"url": cdn + "memories/m1/a2.jpg", "fileSize": 1},
				map[string]any{"url": cdn + "memories/m1/a1.jpg", "fileSize": 190 * mb},
			}},
			map[string]any{"id": "b1", "type": "image", "url": cdn + "memories/m1/photo.jpg", "fileSize": 0},
			map[string]any{"id": "yt", "type": "video", "url": "https://video.example.com/embed/1", "fileSize": 190 * mb},
			map[string]any{"id": "t1", "type": "text", "text": "hi", "fileSize": 5 * mb},
		},
		"coverImage": map[string]any{"url": cdn + "memories/m1/cover.jpg", "fileSize": 100 * mb, "scale": 1.5},
	}, guard.Options{})
	require.NoError(t, err)

	require.Len(t, m.Blocks, 4)
	assert.Equal(t, []models.AlbumItem{
		{URL: cdn + "memories/m1/a2.jpg", FileSize: 2 * mb},
		{URL: cdn + "memories/m1/a1.jpg", FileSize: 1 * mb},
	}, m.Blocks[0].Items)
	assert.Equal(t, 2*mb, m.Blocks[1].FileSize)
	assert.Zero(t, m.Blocks[2].FileSize, "outside urls carry no quota bytes")
	assert.Zero(t, m.Blocks[3].FileSize)
	assert.Equal(t, 1*mb, m.CoverImage.FileSize)
	assert.Equal(t, 1.5, m.CoverImage.Scale)
	assert.Equal(t, 6*mb, m.StorageUsed)
}

func TestUpdate_ForgedBlockCannotRefundQuota(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	m := draft("m1", "u1", "acme")
	m.StorageUsed = 190 * mb
	m.StorageLimit = 200 * mb
	rm.m = newFakeMemories(m)
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())
	ctx := context.Background()

	_, err := s.Update(ctx, owner("u1", "acme"), "m1", map[string]any{"blocks": []any{
		map[string]any{"id": "fake", "type": "video", "url": "https://video.example.com/big.mp4", "fileSize": 190 * mb},
	}}, guard.Options{})
	require.NoError(t, err)

	got, err := s.RemoveBlock(ctx, owner("u1", "acme"), "m1", "fake", guard.Options{})
	require.NoError(t, err)
	assert.Equal(t, 190*mb, got.StorageUsed)
	assert.Equal(t, 190*mb, rm.m.items["m1"].StorageUsed)

	_, err = s.AddMedia(ctx, owner("u1", "acme"), "m1", BlockInput{Kind: models.BlockVideo}, upload("big.mp4", 150*mb), guard.Options{})
	require.ErrorIs(t, err, common.ErrQuotaExceeded)
}

func TestListForTenant_IndexFallback(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	older := draft("a-old", "u1", "acme")
	newer := draft("b-new", "u1", "acme")
	newer.UpdatedAt = t0.Add(time.Hour)
	middle := draft("c-mid", "u1", "acme")
	middle.UpdatedAt = t0.Add(time.Minute)
	other := draft("d-other", "u1", "globex")
	rm.m = newFakeMemories(older, newer, middle, other)
	rm.m.sortedErr = common.ErrIndexUnavailable
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

	items, err := s.ListForTenant(context.Background(), owner("u1", "acme"))
	require.NoError(t, err)
	ids := make([]string, 0, len(items))
	for _, m := range items {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"b-new", "c-mid", "a-old"}, ids)
	assert.Equal(t, 1, rm.m.sortedCalls)
	assert.Equal(t, 1, rm.m.unsortedCalls)

	rm.m.sortedErr = errBoom
	_, err = s.ListForTenant(context.Background(), owner("u1", "acme"))
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestListByOwner_AllTenants(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.m = newFakeMemories(draft("m1", "u1", "acme"), draft("m2", "u1", "globex"), draft("m3", "u2", "acme"))
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

	items, err := s.ListByOwner(context.Background(), owner("u1", "acme"))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "m1", items[0].ID)
	assert.Equal(t, "m2", items[1].ID)
}

func TestExtend(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	m := draft("m1", "u1", "acme")
	m.CreatedAt = created
	m.ExpiresAt = expiry.ExpirationDate(created, 0)
	rm.m = newFakeMemories(m)
	cfg := testConfig()
	cfg.MaxExtensions = 2
	s := newMemoryService(t, db, rm, newFakeStore(), cfg)
	ctx := context.Background()

	got, err := s.Extend(ctx, owner("u1", "other-tenant"), "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ExtensionCount)
	assert.Equal(t, created.AddDate(30, 0, 0), got.ExpiresAt)
	require.NotNil(t, got.LastExtendedAt)
	assert.Equal(t, t0, *got.LastExtendedAt)

	got, err = s.Extend(ctx, service("acme"), "m1")
	require.NoError(t, err)
	assert.Equal(t, created.AddDate(40, 0, 0), got.ExpiresAt)

	_, err = s.Extend(ctx, service("acme"), "m1")
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, 2, rm.m.items["m1"].ExtensionCount)

	_, err = s.Extend(ctx, owner("u2", "acme"), "m1")
	require.Error(t, err)
}

func TestExtend_Unlimited(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.m = newFakeMemories(draft("m1", "u1", "acme"))
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

	for i := 0; i < 5; i++ {
		_, err := s.Extend(context.Background(), owner("u1", "acme"), "m1")
		require.NoError(t, err)
	}
	assert.Equal(t, 5, rm.m.items["m1"].ExtensionCount)
	assert.Equal(t, t0.AddDate(70, 0, 0), rm.m.items["m1"].ExpiresAt)
}

func TestExpiryStatus(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	m := draft("m1", "u1", "acme")
	m.ExpiresAt = t0.Add(10 * 24 * time.Hour)
	rm.m = newFakeMemories(m)
	s := newMemoryService(t, db, rm, newFakeStore(), testConfig())

	st, err := s.ExpiryStatus(context.Background(), owner("u1", "acme"), "m1")
	require.NoError(t, err)
	assert.Equal(t, 10, st.DaysRemaining)
}
