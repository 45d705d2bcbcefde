package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrIndexUnavailable = errors.New("index unavailable")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Isolation and accounting errors.
	ErrTenantMismatch = errors.New("tenant mismatch")
	ErrQuotaExceeded  = errors.New("storage quota exceeded")

	// Credential lifecycle errors.
	ErrCredentialInvalid = errors.New("invalid credential")
	ErrCredentialExpired = errors.New("credential expired")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

// QuotaError reports a rejected write together with the sizes that caused it.
// It matches ErrQuotaExceeded with errors.Is.
type QuotaError struct {
	Used      int64
	Limit     int64
	Attempted int64
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("storage quota exceeded: used %d of %d bytes, attempted to add %d", e.Used, e.Limit, e.Attempted)
}

func (e *QuotaError) Is(target error) bool {
	return target == ErrQuotaExceeded
}
