package tenant

import "context"

// Authority says how a caller proved who it is.
type Authority int

const (
	// AuthorityPublic is an anonymous reader.
	AuthorityPublic Authority = iota
	// AuthorityUser is an end user with a verified session token.
	AuthorityUser
	// AuthorityService is a trusted backend caller (payment webhook relay,
	// claim finalization) authenticated by the service key.
	AuthorityService
)

func (a Authority) String() string {
	switch a {
	case AuthorityUser:
		return "user"
	case AuthorityService:
		return "service"
	default:
		return "public"
	}
}

// RequestContext is the identity every service call runs under.
type RequestContext struct {
	Tenant    string
	OwnerUID  string
	Authority Authority
}

// IsUser reports whether the caller is an authenticated end user.
func (rc RequestContext) IsUser() bool {
	return rc.Authority == AuthorityUser && rc.OwnerUID != ""
}

// IsService reports whether the caller is a trusted backend.
func (rc RequestContext) IsService() bool {
	return rc.Authority == AuthorityService
}

type requestContextKey struct{}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or an anonymous one.
func FromContext(ctx context.Context) RequestContext {
	if ctx == nil {
		return RequestContext{}
	}
	rc, _ := ctx.Value(requestContextKey{}).(RequestContext)
	return rc
}
