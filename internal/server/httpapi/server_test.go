package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/logging"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/services"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServiceKey = "svc-secret"

type fakePages struct {
	PageReader
	pages     map[string]*models.PublicPage
	passwords map[string]string
	err       error
}

func (f *fakePages) GetPublicPage(_ context.Context, id, password string) (*models.PublicPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pages[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if pw := f.passwords[id]; pw != "" && password != pw {
		return nil, common.ErrorUnauthorized
	}
	return p, nil
}

type fakeClaims struct {
	ClaimAPI
	lastRC    tenant.RequestContext
	lastEvent services.PaymentEvent
	payErr    error
	finalize  *services.FinalizeResult
	lastReq   services.FinalizeRequest
}

func (f *fakeClaims) HandlePaymentEvent(_ context.Context, rc tenant.RequestContext, ev services.PaymentEvent) (*services.PaymentResult, error) {
	f.lastRC = rc
	f.lastEvent = ev
	if f.payErr != nil {
		return nil, f.payErr
	}
	return &services.PaymentResult{
		Claim:    &models.ClaimRequest{ID: "claim-1", Status: models.ClaimSecretIssued},
		Replayed: ev.OrderID == "replayed",
	}, nil
}

func (f *fakeClaims) FinalizeURLs(_ context.Context, rc tenant.RequestContext, req services.FinalizeRequest) (*services.FinalizeResult, error) {
	f.lastRC = rc
	f.lastReq = req
	return f.finalize, nil
}

func newTestServer(t *testing.T) (*Server, *fakePages, *fakeClaims) {
	t.Helper()
	pages := &fakePages{pages: map[string]*models.PublicPage{
		"open":   {ID: "open", Title: "Open page"},
		"locked": {ID: "locked", Title: "Locked"},
	}, passwords: map[string]string{"locked": "pw"}}
	claims := &fakeClaims{finalize: &services.FinalizeResult{OK: true, PublicPageURL: "https://pages.test/p/open"}}
	resolver := tenant.NewResolver(map[string]string{"acme.example": "acme"}, "default")
	s := NewHTTPServer("127.0.0.1:0", logging.Nop(), pages, claims, resolver, testServiceKey)
	return s, pages, claims
}

func do(t *testing.T, s *Server, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestPublicPage(t *testing.T) {
	s, _, _ := newTestServer(t)

	tests := []struct {
		name     string
		target   string
		headers  map[string]string
		wantCode int
	}{
		{"open page", "/p/open", nil, http.StatusOK},
		{"missing page", "/p/nope", nil, http.StatusNotFound},
		{"locked without password", "/p/locked", nil, http.StatusForbidden},
		{"locked with query password", "/p/locked?password=pw", nil, http.StatusOK},
		{"locked with header password", "/p/locked", map[string]string{"X-Page-Password": "pw"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.target, "", tt.headers)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPublicPage_InternalErrorIsOpaque(t *testing.T) {
	s, pages, _ := newTestServer(t)
	pages.err = common.ErrorInternal

	rec := do(t, s, http.MethodGet, "/p/open", "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decode[errorResponse](t, rec).Error)
}

func TestPaymentWebhook_RequiresServiceKey(t *testing.T) {
	s, _, claims := newTestServer(t)

	for _, key := range []string{"", "wrong"} {
		rec := do(t, s, http.MethodPost, "/webhooks/payment", `{"orderId":"o1"}`, map[string]string{ServiceKeyHeader: key})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "key %q", key)
	}
	assert.Empty(t, claims.lastEvent.OrderID)
}

func TestPaymentWebhook(t *testing.T) {
	s, _, claims := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/webhooks/payment",
		`{"orderId":"o1","email":"buyer@example.com","productType":"memory"}`,
		map[string]string{ServiceKeyHeader: testServiceKey, "Origin": "https://acme.example"})

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[PaymentWebhookResponse](t, rec)
	assert.Equal(t, "o1", out.OrderID)
	assert.Equal(t, "claim-1", out.ClaimID)
	assert.Equal(t, string(models.ClaimSecretIssued), out.Status)
	assert.False(t, out.Replayed)

	assert.Equal(t, "buyer@example.com", claims.lastEvent.Email)
	assert.Equal(t, "acme", claims.lastRC.Tenant)
	assert.True(t, claims.lastRC.IsService())
}

func TestPaymentWebhook_Errors(t *testing.T) {
	s, _, claims := newTestServer(t)
	hdr := map[string]string{ServiceKeyHeader: testServiceKey}

	rec := do(t, s, http.MethodPost, "/webhooks/payment", `{not json`, hdr)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	claims.payErr = common.ErrorValidation
	rec = do(t, s, http.MethodPost, "/webhooks/payment", `{"orderId":""}`, hdr)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinalize(t *testing.T) {
	s, _, claims := newTestServer(t)
	hdr := map[string]string{ServiceKeyHeader: testServiceKey}

	body := `{"requestId":"c1","publicPageId":"open","publicPageUrl":"https://acme.example/m/open",` +
		`"loginUrl":"https://acme.example/login","loginEmail":"l@x","loginPassword":"pw","claimedByUid":"u7"}`
	rec := do(t, s, http.MethodPost, "/claims/finalize", body, hdr)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[services.FinalizeResult](t, rec).OK)
	assert.Equal(t, "default", claims.lastRC.Tenant)
	assert.Equal(t, services.FinalizeRequest{
		RequestID:     "c1",
		PublicPageID:  "open",
		PublicPageURL: "https://acme.example/m/open",
		LoginURL:      "https://acme.example/login",
		LoginEmail:    "l@x",
		LoginPassword: "pw",
		ClaimedByUID:  "u7",
	}, claims.lastReq)

	claims.finalize = &services.FinalizeResult{Error: "claim request not found"}
	rec = do(t, s, http.MethodPost, "/claims/finalize", `{"requestId":"missing","publicPageId":"open"}`, hdr)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "claim request not found", decode[services.FinalizeResult](t, rec).Error)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&common.QuotaError{Used: 1, Limit: 2, Attempted: 3}, http.StatusRequestEntityTooLarge},
		{common.ErrTenantMismatch, http.StatusForbidden},
		{common.ErrorNotFound, http.StatusNotFound},
		{common.ErrCredentialExpired, http.StatusGone},
		{common.ErrCredentialInvalid, http.StatusBadRequest},
		{common.ErrorValidation, http.StatusBadRequest},
		{common.ErrorInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		code, _ := statusOf(tt.err)
		assert.Equal(t, tt.want, code, tt.err.Error())
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	s, _, _ := newTestServer(t)
	s.address = addr

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
