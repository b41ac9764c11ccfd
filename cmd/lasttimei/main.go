package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/http/api"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/http/swagger"
	awslambda "github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/lambda"
	repository "github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/repository"
	service "github.com/armandopadilla/lasttimei-lamdbda/internal/app"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/config"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/registry"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/db"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "lasttimei exited", logger.Error(err))
		os.Exit(1)
	}
}

// run configures logging, builds the store and service once per process, then
// hands control to the Lambda runtime or the local HTTP listener.
func run(ctx context.Context, cfg *config.Config) error {
	if err := setupLogging(cfg); err != nil {
		return err
	}
	log := logger.Get()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	svc := service.New(store, service.WithRegistry(registry.Default().WithEntries(cfg.Actions)))
	log.Info(ctx, "service ready",
		logger.String("mode", cfg.Mode),
		logger.String("store", store.Backend()),
		logger.Int("registered_devices", svc.GetStats()["registeredDevices"].(int)),
	)

	switch cfg.Mode {
	case config.ModeHTTP:
		return serveHTTP(ctx, cfg, svc)
	default:
		awslambda.Start(awslambda.NewHandler(svc, nil))
		return nil
	}
}

// setupLogging swaps the bootstrap text logger for the configured one.
func setupLogging(cfg *config.Config) error {
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	if err := logger.Init(logger.WithFormat(format)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(context.Background(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return nil
}

// buildStore returns the configured record backend.
func buildStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return repository.NewMemoryStore(), nil
	case config.StoreDynamoDB:
		client, err := db.Connect(ctx, db.Options{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize dynamodb: %w", err)
		}
		return repository.NewDynamoStore(client,
			repository.WithTableName(cfg.TableName),
			repository.WithDynamoLogger(logger.Named("dynamodb")),
		)
	default:
		return nil, fmt.Errorf("%w: unknown store %q", config.ErrInvalidConfig, cfg.Store)
	}
}

// newHTTPServer builds the local listener with every route registered.
func newHTTPServer(ctx context.Context, cfg *config.Config, svc *service.Service) *http.Server {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc).Register(ctx, mux)

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// serveHTTP runs the local listener until ctx is cancelled.
func serveHTTP(ctx context.Context, cfg *config.Config, svc *service.Service) error {
	log := logger.Get()
	srv := newHTTPServer(ctx, cfg, svc)

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info(ctx, "server stopped")
	return nil
}
