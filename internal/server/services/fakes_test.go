package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/dbx"
	"github.com/dmitrijs2005/memoria/internal/logging"
	"github.com/dmitrijs2005/memoria/internal/server/config"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/notify"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/assets"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/claims"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/memories"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/orders"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/publicpages"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
)

const mb = int64(1 << 20)

var errBoom = errors.New("boom")

// clone deep-copies documents so fakes never share state with callers.
func clone[T any](t *T) *T {
	b, err := json.Marshal(t)
	if err != nil {
		panic(err)
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		panic(err)
	}
	return &out
}

// -------- repositories --------

type fakeMemories struct {
	memories.Repository
	items map[string]*models.Memory

	sortedErr error
	updateErr error
	deleteErr error
	addErr    error

	sortedCalls   int
	unsortedCalls int
}

func newFakeMemories(ms ...*models.Memory) *fakeMemories {
	f := &fakeMemories{items: map[string]*models.Memory{}}
	for _, m := range ms {
		f.items[m.ID] = clone(m)
	}
	return f
}

func (f *fakeMemories) Insert(ctx context.Context, m *models.Memory) error {
	if _, ok := f.items[m.ID]; ok {
		return common.ErrorValidation
	}
	f.items[m.ID] = clone(m)
	return nil
}

func (f *fakeMemories) Get(ctx context.Context, id string) (*models.Memory, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(m), nil
}

func (f *fakeMemories) Update(ctx context.Context, m *models.Memory) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.items[m.ID]
	if !ok {
		return common.ErrorNotFound
	}
	c := clone(m)
	c.StorageUsed = stored.StorageUsed
	f.items[m.ID] = c
	return nil
}

func (f *fakeMemories) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMemories) ListByOwner(ctx context.Context, ownerUID string) ([]*models.Memory, error) {
	var out []*models.Memory
	for _, m := range f.items {
		if m.OwnerUID == ownerUID {
			out = append(out, clone(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMemories) ListByTenantOwner(ctx context.Context, tenantID, ownerUID string, sorted bool) ([]*models.Memory, error) {
	if sorted {
		f.sortedCalls++
		if f.sortedErr != nil {
			return nil, f.sortedErr
		}
	} else {
		f.unsortedCalls++
	}
	var out []*models.Memory
	for _, m := range f.items {
		if m.Tenant == tenantID && m.OwnerUID == ownerUID {
			out = append(out, clone(m))
		}
	}
	// Unsorted results come back in id order, which is not the display order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if sorted {
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	}
	return out, nil
}

func (f *fakeMemories) AddStorageUsed(ctx context.Context, id string, delta int64) (int64, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	m, ok := f.items[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	m.StorageUsed += delta
	if m.StorageUsed < 0 {
		m.StorageUsed = 0
	}
	return m.StorageUsed, nil
}

type fakePages struct {
	publicpages.Repository
	items map[string]*models.PublicPage

	deleteErr error
	saved     []string
}

func newFakePages(ps ...*models.PublicPage) *fakePages {
	f := &fakePages{items: map[string]*models.PublicPage{}}
	for _, p := range ps {
		f.items[p.ID] = clone(p)
	}
	return f
}

func (f *fakePages) Save(ctx context.Context, p *models.PublicPage) error {
	if stored, ok := f.items[p.ID]; ok {
		c := clone(p)
		c.Tenant = stored.Tenant
		f.items[p.ID] = c
	} else {
		f.items[p.ID] = clone(p)
	}
	f.saved = append(f.saved, p.ID)
	return nil
}

func (f *fakePages) Get(ctx context.Context, id string) (*models.PublicPage, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(p), nil
}

func (f *fakePages) FindByMemory(ctx context.Context, memoryID string) (*models.PublicPage, error) {
	for _, p := range f.sorted() {
		if p.MemoryID == memoryID {
			return clone(p), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakePages) FindUnlinked(ctx context.Context, tenantID, ownerUID string) (*models.PublicPage, error) {
	for _, p := range f.sorted() {
		if p.MemoryID == "" && p.Tenant == tenantID && p.OwnerUID == ownerUID {
			return clone(p), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakePages) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakePages) DeleteByMemory(ctx context.Context, memoryID string) (int64, error) {
	var n int64
	for id, p := range f.items {
		if p.MemoryID == memoryID {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

func (f *fakePages) sorted() []*models.PublicPage {
	out := make([]*models.PublicPage, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

type fakeOrders struct {
	orders.Repository
	items map[string]*models.Order

	// collisions makes the next Update calls fail as a duplicate key.
	collisions int
	consumeErr error
}

func newFakeOrders(os ...*models.Order) *fakeOrders {
	f := &fakeOrders{items: map[string]*models.Order{}}
	for _, o := range os {
		f.items[o.ID] = clone(o)
	}
	return f
}

func (f *fakeOrders) Create(ctx context.Context, o *models.Order) error {
	if _, ok := f.items[o.ID]; ok {
		return common.ErrorValidation
	}
	f.items[o.ID] = clone(o)
	return nil
}

func (f *fakeOrders) Get(ctx context.Context, id string) (*models.Order, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(o), nil
}

func (f *fakeOrders) GetBySecretKey(ctx context.Context, key string) (*models.Order, error) {
	for _, o := range f.items {
		if o.SecretKey == key {
			return clone(o), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeOrders) Update(ctx context.Context, o *models.Order) error {
	if f.collisions > 0 {
		f.collisions--
		return fmt.Errorf("%w: secret key already in use", common.ErrorValidation)
	}
	if _, ok := f.items[o.ID]; !ok {
		return common.ErrorNotFound
	}
	f.items[o.ID] = clone(o)
	return nil
}

func (f *fakeOrders) Consume(ctx context.Context, id, memoryID string, at time.Time) error {
	if f.consumeErr != nil {
		return f.consumeErr
	}
	o, ok := f.items[id]
	if !ok || o.SecretKeyConsumedAt != nil {
		return common.ErrCredentialInvalid
	}
	o.SecretKeyConsumedAt = &at
	o.MemoryID = memoryID
	o.OrderStatus = models.OrderFulfilled
	return nil
}

type fakeClaims struct {
	claims.Repository
	items   map[string]*models.ClaimRequest
	updates int
}

func newFakeClaims(cs ...*models.ClaimRequest) *fakeClaims {
	f := &fakeClaims{items: map[string]*models.ClaimRequest{}}
	for _, c := range cs {
		f.items[c.ID] = clone(c)
	}
	return f
}

func (f *fakeClaims) Create(ctx context.Context, c *models.ClaimRequest) error {
	for _, existing := range f.items {
		if existing.OrderID == c.OrderID {
			return common.ErrorValidation
		}
	}
	f.items[c.ID] = clone(c)
	return nil
}

func (f *fakeClaims) Get(ctx context.Context, id string) (*models.ClaimRequest, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(c), nil
}

func (f *fakeClaims) GetByOrder(ctx context.Context, orderID string) (*models.ClaimRequest, error) {
	for _, c := range f.items {
		if c.OrderID == orderID {
			return clone(c), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeClaims) Update(ctx context.Context, c *models.ClaimRequest) error {
	if _, ok := f.items[c.ID]; !ok {
		return common.ErrorNotFound
	}
	f.items[c.ID] = clone(c)
	f.updates++
	return nil
}

type fakeAssets struct {
	assets.Repository
	items     []*models.Asset
	createErr error
	listErr   error
}

func (f *fakeAssets) Create(ctx context.Context, a *models.Asset) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, clone(a))
	return nil
}

func (f *fakeAssets) ListByMemory(ctx context.Context, memoryID string) ([]*models.Asset, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Asset
	for _, a := range f.items {
		if a.MemoryID == memoryID {
			out = append(out, clone(a))
		}
	}
	return out, nil
}

func (f *fakeAssets) Delete(ctx context.Context, id string) error {
	for i, a := range f.items {
		if a.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeAssets) DeleteByMemory(ctx context.Context, memoryID string) (int64, error) {
	var (
		kept []*models.Asset
		n    int64
	)
	for _, a := range f.items {
		if a.MemoryID == memoryID {
			n++
			continue
		}
		kept = append(kept, a)
	}
	f.items = kept
	return n, nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	m *fakeMemories
	p *fakePages
	c *fakeClaims
	o *fakeOrders
	a *fakeAssets
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		m: newFakeMemories(),
		p: newFakePages(),
		c: newFakeClaims(),
		o: newFakeOrders(),
		a: &fakeAssets{},
	}
}

func (r *fakeRepoManager) Memories(db dbx.DBTX) memories.Repository       { return r.m }
func (r *fakeRepoManager) PublicPages(db dbx.DBTX) publicpages.Repository { return r.p }
func (r *fakeRepoManager) Claims(db dbx.DBTX) claims.Repository           { return r.c }
func (r *fakeRepoManager) Orders(db dbx.DBTX) orders.Repository           { return r.o }
func (r *fakeRepoManager) Assets(db dbx.DBTX) assets.Repository           { return r.a }

// -------- object store --------

const cdn = "https://cdn.test/"

type fakeStore struct {
	objects map[string]int64
	puts    []string
	deleted []string

	// failPutAt fails the n-th Put (1-based); zero never fails.
	failPutAt int
	deleteErr map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]int64{}, deleteErr: map[string]error{}}
}

func (s *fakeStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	s.puts = append(s.puts, key)
	if s.failPutAt > 0 && len(s.puts) == s.failPutAt {
		return "", errBoom
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	s.objects[key] = size
	return cdn + key, nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	if err := s.deleteErr[key]; err != nil {
		return err
	}
	s.deleted = append(s.deleted, key)
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return fmt.Sprintf("%s%s?ttl=%d", cdn, key, int(ttl.Seconds())), nil
}

func (s *fakeStore) KeyFromURL(raw string) (string, bool) {
	if !strings.HasPrefix(raw, cdn) {
		return "", false
	}
	return strings.TrimPrefix(raw, cdn), true
}

// -------- notifier --------

type fakeNotifier struct {
	credentials []string
	logins      []notify.LoginDetails
	err         error
}

func (n *fakeNotifier) SendCredential(ctx context.Context, email, tenantID, credential string) error {
	n.credentials = append(n.credentials, credential)
	return n.err
}

func (n *fakeNotifier) SendLoginDetails(ctx context.Context, d notify.LoginDetails) error {
	n.logins = append(n.logins, d)
	return n.err
}

// -------- helpers --------

var t0 = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type mockDB struct {
	DB   *sql.DB
	mock sqlmock.Sqlmock
}

func newMockDB(t *testing.T) mockDB {
	t.Helper()
	db, mock := newSQLMockDB(t)
	return mockDB{DB: db, mock: mock}
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:         "k",
		DefaultTenant:     "acme",
		PublicPageBaseURL: "https://pages.test/p/",
		LoginURL:          "https://app.test/login",
		PresignTTL:        10 * time.Minute,
		AdminCredential:   "ADMIN0000000KEY0",
	}
}

func newMemoryService(t *testing.T, db *sql.DB, rm *fakeRepoManager, store *fakeStore, cfg *config.Config) *MemoryService {
	t.Helper()
	s := NewMemoryService(db, rm, store, cfg, logging.Nop())
	s.now = func() time.Time { return t0 }
	return s
}

func owner(uid, tenantID string) tenant.RequestContext {
	return tenant.RequestContext{Tenant: tenantID, OwnerUID: uid, Authority: tenant.AuthorityUser}
}

func service(tenantID string) tenant.RequestContext {
	return tenant.RequestContext{Tenant: tenantID, Authority: tenant.AuthorityService}
}

func draft(id, uid, tenantID string) *models.Memory {
	return &models.Memory{
		ID:           id,
		OwnerUID:     uid,
		Tenant:       tenantID,
		Title:        "In memory of " + id,
		Status:       models.MemoryDraft,
		StorageLimit: models.DefaultStorageLimit,
		CreatedAt:    t0,
		UpdatedAt:    t0,
	}
}

func upload(name string, size int64) Upload {
	return Upload{Filename: name, ContentType: "image/jpeg", Size: size, Body: strings.NewReader("x")}
}
