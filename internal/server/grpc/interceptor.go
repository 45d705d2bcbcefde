package grpc

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/auth"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// requestContextInterceptor resolves the caller's tenant and authority from
// metadata and stores them in the context. Calls without credentials run
// as anonymous readers; presenting bad credentials fails the call.
func (s *Server) requestContextInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	origin := firstValue(md, common.OriginHeaderName)

	rc := tenant.RequestContext{Authority: tenant.AuthorityPublic}

	if key := firstValue(md, common.ServiceKeyHeaderName); key != "" {
		if s.serviceKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.serviceKey)) != 1 {
			return nil, status.Error(codes.Unauthenticated, "invalid service key")
		}
		rc.Authority = tenant.AuthorityService
		rc.Tenant = s.resolver.Resolve(origin, "")
	} else if token := firstValue(md, common.AccessTokenHeaderName); token != "" {
		session, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		rc.Authority = tenant.AuthorityUser
		rc.OwnerUID = session.UserID
		rc.Tenant = s.resolver.Resolve(origin, session.Tenant)
	} else {
		rc.Tenant = s.resolver.Resolve(origin, "")
	}

	return handler(tenant.WithRequestContext(ctx, rc), req)
}

// loggingInterceptor logs every call with its outcome.
func (s *Server) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	rc := tenant.FromContext(ctx)
	s.logger.Debug(ctx, "grpc call", "method", info.FullMethod, "code", status.Code(err).String(),
		"duration", time.Since(start), "tenant", rc.Tenant, "authority", rc.Authority.String())
	return resp, err
}
