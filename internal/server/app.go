// Package server initializes and runs the account server.
// It configures the storage backend, applies migrations, serves the HTTP
// API and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/config"
	"github.com/dmitrijs2005/contactkeeper/internal/server/httpx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
)

const serviceName = "contactkeeper"

// storeManager is a repository manager that can also report liveness.
type storeManager interface {
	repomanager.RepositoryManager
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	logger logging.Logger
	store  storeManager
	server *httpx.Server
}

// NewApp builds the application from c using a JSON logger on stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.NewJSONLogger(os.Stdout, serviceName, slog.LevelInfo))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	store, err := newStoreManager(c)
	if err != nil {
		return nil, err
	}

	if err := store.RunMigrations(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)
	issuer := auth.NewTokenIssuer(c.SecretKey, c.TokenValidityDuration)
	us := services.NewUserService(store, hasher, issuer)

	router := httpx.NewRouter(logger, us, store.Ping)
	srv := httpx.NewServer(c.EndpointAddrHTTP, router, logger, c.ShutdownTimeout)

	return &App{config: c, logger: logger, store: store, server: srv}, nil
}

func newStoreManager(c *config.Config) (storeManager, error) {
	switch c.StorageType {
	case config.StorageMemory:
		return repomanager.NewInMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		m, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", c.StorageType)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a stop signal arrives, then closes
// the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageType)

	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.store.Close(); cerr != nil {
		app.logger.Error(ctx, cerr.Error())
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
