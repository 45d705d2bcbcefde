// Package common contains shared constants and sentinel errors used across
// memoria components.
package common

// Metadata keys carried on inbound gRPC calls.
const (
	// AccessTokenHeaderName carries the end-user session JWT.
	AccessTokenHeaderName = "access_token"
	// OriginHeaderName carries the storefront origin the request came from.
	OriginHeaderName = "origin"
	// ServiceKeyHeaderName carries the shared key of trusted callers
	// (payment webhook relay, claim finalization).
	ServiceKeyHeaderName = "service_key"
)
