package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, "default", c.DefaultTenant)
	assert.Equal(t, int64(200<<20), c.DefaultStorageLimit)
	assert.Equal(t, 30*24*time.Hour, c.CredentialValidity)
	assert.Equal(t, 0, c.MaxExtensions)
	assert.Empty(t, c.AdminCredential)
	assert.NotNil(t, c.TenantOrigins)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	got, err := Load(nil, map[string]string{})
	require.NoError(t, err)

	want := defaults()
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_LayerPrecedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_grpc":             ":7000",
		"database_dsn":                   "postgres://json",
		"access_token_validity_duration": "90s",
		"default_tenant":                 "json-tenant",
		"tenant_origins":                 map[string]string{"a.example": "a"},
		"max_extensions":                 3,
		"credential_validity":            "48h",
	})

	environ := map[string]string{
		"MEMORIA_DATABASE_DSN":   "postgres://env",
		"MEMORIA_DEFAULT_TENANT": "env-tenant",
		"MEMORIA_SERVICE_KEY":    "svc",
		"MEMORIA_PRESIGN_TTL":    "2m",
	}

	got, err := Load([]string{"-c", path, "-n", "flag-tenant", "-o", "b.example=b, c.example=c"}, environ)
	require.NoError(t, err)

	want := defaults()
	want.EndpointAddrGRPC = ":7000"
	want.DatabaseDSN = "postgres://env"
	want.AccessTokenValidityDuration = 90 * time.Second
	want.DefaultTenant = "flag-tenant"
	want.TenantOrigins = map[string]string{"b.example": "b", "c.example": "c"}
	want.MaxExtensions = 3
	want.CredentialValidity = 48 * time.Hour
	want.ServiceKey = "svc"
	want.PresignTTL = 2 * time.Minute

	if diff := cmp.Diff(&want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvTenantOrigins(t *testing.T) {
	got, err := Load(nil, map[string]string{"MEMORIA_TENANT_ORIGINS": "shop.example=shop,gifts.example=gifts"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"shop.example": "shop", "gifts.example": "gifts"}, got.TenantOrigins)
}

func TestLoad_FlagDurationInMinutes(t *testing.T) {
	got, err := Load([]string{"-t", "5", "-x", "2"}, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, got.AccessTokenValidityDuration)
	assert.Equal(t, 2, got.MaxExtensions)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "nope.json")}, map[string]string{})
		require.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		_, err := Load([]string{"-c", bad}, map[string]string{})
		require.Error(t, err)
	})

	t.Run("bad env duration", func(t *testing.T) {
		_, err := Load(nil, map[string]string{"MEMORIA_PRESIGN_TTL": "soon"})
		require.Error(t, err)
	})

	t.Run("bad flag value", func(t *testing.T) {
		_, err := Load([]string{"-x", "many"}, map[string]string{})
		require.Error(t, err)
	})

	t.Run("negative max extensions", func(t *testing.T) {
		_, err := Load([]string{"-x", "-1"}, map[string]string{})
		require.Error(t, err)
	})

	t.Run("malformed admin credential", func(t *testing.T) {
		_, err := Load(nil, map[string]string{"MEMORIA_ADMIN_CREDENTIAL": "short"})
		require.Error(t, err)
	})
}

func TestLoadConfig_PanicsOnBadInput(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "missing.json")}
	require.Panics(t, func() { LoadConfig() })
}
