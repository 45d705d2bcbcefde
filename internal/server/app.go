// Package server initializes and runs the memoria server: it opens the
// database, applies migrations, builds the services and serves them over
// gRPC and HTTP until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/memoria/internal/logging"
	"github.com/dmitrijs2005/memoria/internal/server/config"
	"github.com/dmitrijs2005/memoria/internal/server/httpapi"
	"github.com/dmitrijs2005/memoria/internal/server/notify"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/memoria/internal/server/services"
	"github.com/dmitrijs2005/memoria/internal/server/storage"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"github.com/dmitrijs2005/memoria/internal/telemetry"

	gs "github.com/dmitrijs2005/memoria/internal/server/grpc"
)

const serviceName = "memoria"

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	resolver      *tenant.Resolver
	memoryService *services.MemoryService
	claimService  *services.ClaimService
	shutdownOTel  func(context.Context) error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logLevel(c.LogLevel))

	shutdownOTel, err := telemetry.Setup(ctx, serviceName, c.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Region:        c.S3Region,
		AccessKey:     c.S3RootUser,
		SecretKey:     c.S3RootPassword,
		Endpoint:      c.S3BaseEndpoint,
		Bucket:        c.S3Bucket,
		PublicBaseURL: c.PublicObjectBaseURL,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("object storage init error: %w", err)
	}

	ms := services.NewMemoryService(db, rm, store, c, logger)
	cs := services.NewClaimService(db, rm, c, notify.NewLogNotifier(logger), ms, logger)

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		resolver:      tenant.NewResolver(c.TenantOrigins, c.DefaultTenant),
		memoryService: ms,
		claimService:  cs,
		shutdownOTel:  shutdownOTel,
	}, nil
}

func logLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.memoryService, app.claimService,
		app.resolver, app.config.SecretKey, app.config.ServiceKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.memoryService, app.claimService,
		app.resolver, app.config.ServiceKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a signal arrives or one of the servers fails, then
// releases the database and flushes traces.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	if err := app.shutdownOTel(context.Background()); err != nil {
		app.logger.Error(ctx, "telemetry shutdown error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
