package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/memoria/internal/flagx"
	"github.com/dmitrijs2005/memoria/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept both strings
// such as "15m" and integer nanoseconds. Zero values leave the current
// setting untouched.
type JsonConfig struct {
	EndpointAddrGRPC            string            `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP            string            `json:"endpoint_addr_http"`
	DatabaseDSN                 string            `json:"database_dsn"`
	LogLevel                    string            `json:"log_level"`
	SecretKey                   string            `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration    `json:"access_token_validity_duration"`
	S3RootUser                  string            `json:"s3_root_user"`
	S3RootPassword              string            `json:"s3_root_password"`
	S3Bucket                    string            `json:"s3_bucket"`
	S3Region                    string            `json:"s3_region"`
	S3BaseEndpoint              string            `json:"s3_base_endpoint"`
	PublicObjectBaseURL         string            `json:"public_object_base_url"`
	PresignTTL                  timex.Duration    `json:"presign_ttl"`
	PublicPageBaseURL           string            `json:"public_page_base_url"`
	LoginURL                    string            `json:"login_url"`
	DefaultTenant               string            `json:"default_tenant"`
	TenantOrigins               map[string]string `json:"tenant_origins"`
	DefaultStorageLimit         int64             `json:"default_storage_limit"`
	CredentialValidity          timex.Duration    `json:"credential_validity"`
	AdminCredential             string            `json:"admin_credential"`
	ServiceKey                  string            `json:"service_key"`
	MaxExtensions               *int              `json:"max_extensions"`
	OTelEndpoint                string            `json:"otel_endpoint"`
}

// parseJSON overlays the file given with -c or -config in args. Without
// the flag nothing is loaded.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var c JsonConfig
	if err := json.Unmarshal(b, &c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&cfg.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&cfg.DatabaseDSN, c.DatabaseDSN)
	setString(&cfg.LogLevel, c.LogLevel)
	setString(&cfg.SecretKey, c.SecretKey)
	setString(&cfg.S3RootUser, c.S3RootUser)
	setString(&cfg.S3RootPassword, c.S3RootPassword)
	setString(&cfg.S3Bucket, c.S3Bucket)
	setString(&cfg.S3Region, c.S3Region)
	setString(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&cfg.PublicObjectBaseURL, c.PublicObjectBaseURL)
	setString(&cfg.PublicPageBaseURL, c.PublicPageBaseURL)
	setString(&cfg.LoginURL, c.LoginURL)
	setString(&cfg.DefaultTenant, c.DefaultTenant)
	setString(&cfg.AdminCredential, c.AdminCredential)
	setString(&cfg.ServiceKey, c.ServiceKey)
	setString(&cfg.OTelEndpoint, c.OTelEndpoint)

	if c.AccessTokenValidityDuration.Duration > 0 {
		cfg.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.PresignTTL.Duration > 0 {
		cfg.PresignTTL = c.PresignTTL.Duration
	}
	if c.CredentialValidity.Duration > 0 {
		cfg.CredentialValidity = c.CredentialValidity.Duration
	}
	if c.DefaultStorageLimit > 0 {
		cfg.DefaultStorageLimit = c.DefaultStorageLimit
	}
	if c.MaxExtensions != nil {
		cfg.MaxExtensions = *c.MaxExtensions
	}
	if len(c.TenantOrigins) > 0 {
		cfg.TenantOrigins = c.TenantOrigins
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
