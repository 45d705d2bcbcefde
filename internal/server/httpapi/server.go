// Package httpapi serves the HTTP endpoints that cannot speak gRPC: the
// payment provider webhook, claim finalization, and public page reads
// behind short links.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/memoria/internal/logging"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/services"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ServiceKeyHeader authenticates trusted callers.
const ServiceKeyHeader = "X-Service-Key"

// pageRequestsPerSecond limits public page reads per client IP, which also
// bounds password guessing.
const pageRequestsPerSecond = 10

// PageReader serves public pages.
type PageReader interface {
	GetPublicPage(ctx context.Context, id, password string) (*models.PublicPage, error)
}

// ClaimAPI is the part of the claim state machine reachable over HTTP.
type ClaimAPI interface {
	HandlePaymentEvent(ctx context.Context, rc tenant.RequestContext, ev services.PaymentEvent) (*services.PaymentResult, error)
	FinalizeURLs(ctx context.Context, rc tenant.RequestContext, req services.FinalizeRequest) (*services.FinalizeResult, error)
}

type Server struct {
	address    string
	echo       *echo.Echo
	pages      PageReader
	claims     ClaimAPI
	resolver   *tenant.Resolver
	serviceKey string
	logger     logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, pages PageReader, claims ClaimAPI, resolver *tenant.Resolver, serviceKey string) *Server {
	s := &Server{
		address:    address,
		echo:       echo.New(),
		pages:      pages,
		claims:     claims,
		resolver:   resolver,
		serviceKey: serviceKey,
		logger:     l.With("module", "http_server"),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) setupMiddleware() {
	e := s.echo
	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info(c.Request().Context(), "http request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.BodyLimit("1M"))
}

func (s *Server) setupRoutes() {
	e := s.echo
	e.GET("/healthz", s.handleHealth)
	e.GET("/p/:id", s.handlePublicPage, middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(pageRequestsPerSecond)))

	e.POST("/webhooks/payment", s.handlePaymentWebhook, s.requireServiceKey)
	e.POST("/claims/finalize", s.handleFinalize, s.requireServiceKey)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- s.echo.Start(s.address)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
