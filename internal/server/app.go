// Package server initializes and runs the account service: it wires the
// store, the password hasher, and the user service together, starts the
// HTTP endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/esavelyev/accountd/internal/logging"
	"github.com/esavelyev/accountd/internal/server/auth"
	"github.com/esavelyev/accountd/internal/server/config"
	"github.com/esavelyev/accountd/internal/server/httpapi"
	"github.com/esavelyev/accountd/internal/server/shared/db"
	"github.com/esavelyev/accountd/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       db.RepositoryManager
	userService *users.Service
}

// NewApp validates the configuration and constructs the application.
// A missing secret key or database DSN is a fatal configuration error;
// there are no fallback values for either.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	store, err := db.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher, err := auth.NewHasher(cfg.PasswordScheme)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	us := users.NewService(store.Users(), hasher, cfg)

	return &App{config: cfg, logger: logger, store: store, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives, then shuts the HTTP
// server down and releases the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "address", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	defer func() {
		if err := app.store.Close(); err != nil {
			app.logger.Error(ctx, "store close error", "error", err.Error())
		}
	}()

	srv := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.store)
	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server error", "error", err.Error())
	}
}
