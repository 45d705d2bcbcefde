// Package guard enforces tenant isolation on writes of tenant-scoped
// documents.
package guard

import (
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
)

// Document is the stored identity of the document being written.
type Document struct {
	Tenant   string
	OwnerUID string
}

// Options tune a single check.
type Options struct {
	// SkipTenantCheck replaces tenant-based authorization with owner- or
	// service-based authorization. It only takes effect when the caller is
	// the document owner or a service; otherwise the tenant check runs.
	SkipTenantCheck bool
}

// CheckWrite decides whether rc may update or delete doc. The caller loads
// doc from the store first so the comparison is against persisted state.
func CheckWrite(rc tenant.RequestContext, doc Document, opts Options) error {
	if rc.Authority == tenant.AuthorityPublic {
		return common.ErrorUnauthorized
	}

	if opts.SkipTenantCheck && skipQualifies(rc, doc) {
		return nil
	}

	if doc.Tenant != rc.Tenant {
		return fmt.Errorf("%w: document belongs to %q, request resolved to %q", common.ErrTenantMismatch, doc.Tenant, rc.Tenant)
	}

	if rc.IsService() {
		return nil
	}
	if doc.OwnerUID != "" && doc.OwnerUID != rc.OwnerUID {
		return common.ErrorUnauthorized
	}
	return nil
}

func skipQualifies(rc tenant.RequestContext, doc Document) bool {
	if rc.IsService() {
		return true
	}
	return rc.IsUser() && doc.OwnerUID != "" && doc.OwnerUID == rc.OwnerUID
}
