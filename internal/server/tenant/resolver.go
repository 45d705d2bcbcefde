// Package tenant resolves which storefront a request belongs to and carries
// the resulting request identity through the call chain.
package tenant

import (
	"net/url"
	"strings"
)

// Resolver maps request origins to tenant identifiers.
type Resolver struct {
	byHost        map[string]string
	defaultTenant string
}

// NewResolver builds a Resolver from a host→tenant map. Hosts are matched
// case-insensitively, without port and without a leading "www.".
func NewResolver(origins map[string]string, defaultTenant string) *Resolver {
	byHost := make(map[string]string, len(origins))
	for origin, t := range origins {
		if h := hostOf(origin); h != "" {
			byHost[h] = t
		}
	}
	return &Resolver{byHost: byHost, defaultTenant: defaultTenant}
}

// Default returns the tenant used for unknown origins.
func (r *Resolver) Default() string {
	return r.defaultTenant
}

// Resolve returns the tenant for a request. A tenant persisted in the
// session at claim/login time wins over the origin mapping; unknown origins
// fall back to the default tenant.
func (r *Resolver) Resolve(origin, sessionTenant string) string {
	if t := strings.TrimSpace(sessionTenant); t != "" {
		return t
	}
	if t, ok := r.byHost[hostOf(origin)]; ok {
		return t
	}
	return r.defaultTenant
}

func hostOf(origin string) string {
	origin = strings.TrimSpace(strings.ToLower(origin))
	if origin == "" {
		return ""
	}
	if !strings.Contains(origin, "://") {
		origin = "//" + origin
	}
	u, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
