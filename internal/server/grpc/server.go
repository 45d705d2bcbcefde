// Package grpc exposes the memoria services over gRPC using the generated
// MemoriaService API in internal/proto.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/memoria/internal/logging"
	pb "github.com/dmitrijs2005/memoria/internal/proto"
	"github.com/dmitrijs2005/memoria/internal/server/expiry"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/services"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// maxMessageSize bounds a request; uploads travel inline.
const maxMessageSize = 64 << 20

// MemoryAPI is the memory content repository used by the handlers.
type MemoryAPI interface {
	Create(ctx context.Context, rc tenant.RequestContext, key string, in services.NewMemory) (*models.Memory, error)
	Get(ctx context.Context, rc tenant.RequestContext, id string) (*models.Memory, error)
	ListByOwner(ctx context.Context, rc tenant.RequestContext) ([]*models.Memory, error)
	ListForTenant(ctx context.Context, rc tenant.RequestContext) ([]*models.Memory, error)
	Update(ctx context.Context, rc tenant.RequestContext, id string, patch map[string]any, opts guard.Options) (*models.Memory, error)
	Publish(ctx context.Context, rc tenant.RequestContext, id string, opts guard.Options) (*models.PublicPage, error)
	Extend(ctx context.Context, rc tenant.RequestContext, id string) (*models.Memory, error)
	ExpiryStatus(ctx context.Context, rc tenant.RequestContext, id string) (expiry.Status, error)
	Delete(ctx context.Context, rc tenant.RequestContext, id string, opts guard.Options) (*services.DeletionReport, error)

	AddMedia(ctx context.Context, rc tenant.RequestContext, memoryID string, in services.BlockInput, f services.Upload, opts guard.Options) (*models.Memory, error)
	AddAlbum(ctx context.Context, rc tenant.RequestContext, memoryID string, in services.BlockInput, files []services.Upload, opts guard.Options) (*models.Memory, error)
	SetImage(ctx context.Context, rc tenant.RequestContext, memoryID string, slot services.ImageSlot, f services.Upload, pos models.Position, scale float64, opts guard.Options) (*models.Memory, error)
	RemoveBlock(ctx context.Context, rc tenant.RequestContext, memoryID, blockID string, opts guard.Options) (*models.Memory, error)
	PresignBlock(ctx context.Context, rc tenant.RequestContext, memoryID, blockID string) (string, error)

	GetPublicPage(ctx context.Context, id, password string) (*models.PublicPage, error)
	SetPageAccess(ctx context.Context, rc tenant.RequestContext, pageID string, public bool, password string) error
}

// ClaimAPI is the claim/issuance state machine used by the handlers.
type ClaimAPI interface {
	HandlePaymentEvent(ctx context.Context, rc tenant.RequestContext, ev services.PaymentEvent) (*services.PaymentResult, error)
	ReservePublicPage(ctx context.Context, rc tenant.RequestContext) (*models.PublicPage, error)
	FinalizeURLs(ctx context.Context, rc tenant.RequestContext, req services.FinalizeRequest) (*services.FinalizeResult, error)
	MarkClaimed(ctx context.Context, rc tenant.RequestContext, id string) (*models.ClaimRequest, error)
	ValidateCredential(ctx context.Context, key string) (*services.CredentialCheck, error)
}

type Server struct {
	pb.UnimplementedMemoriaServiceServer
	address    string
	memories   MemoryAPI
	claims     ClaimAPI
	resolver   *tenant.Resolver
	jwtSecret  []byte
	serviceKey string
	logger     logging.Logger
	health     *health.Server
}

func NewGRPCServer(address string, l logging.Logger, ms MemoryAPI, cs ClaimAPI, resolver *tenant.Resolver, secretKey, serviceKey string) *Server {
	return &Server{
		address:    address,
		memories:   ms,
		claims:     cs,
		resolver:   resolver,
		jwtSecret:  []byte(secretKey),
		serviceKey: serviceKey,
		logger:     l.With("module", "grpc_server"),
		health:     health.NewServer(),
	}
}

func (s *Server) newGRPCServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.requestContextInterceptor, s.loggingInterceptor),
		grpc.MaxRecvMsgSize(maxMessageSize),
	)

	pb.RegisterMemoriaServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.MemoriaService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newGRPCServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
