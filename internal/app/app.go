// Package app assembles and runs the accountd process: one shared account
// service behind two entry points, the network HTTP API and the interactive
// console. Both are wired to the same store, hasher and token codec, so a
// token issued through either one is accepted by the other.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mkarpovs/accountd/internal/accounts"
	"github.com/mkarpovs/accountd/internal/auth"
	"github.com/mkarpovs/accountd/internal/config"
	"github.com/mkarpovs/accountd/internal/console"
	"github.com/mkarpovs/accountd/internal/httpapi"
	"github.com/mkarpovs/accountd/internal/logging"
	"github.com/mkarpovs/accountd/internal/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   storage.Manager
	service *accounts.Service
	codec   *auth.Codec
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	// logs go to stderr: stdout belongs to the interactive console
	logger := logging.NewJSONLogger(os.Stderr)

	codec, err := auth.NewCodec([]byte(cfg.SecretKey), cfg.TokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("token codec init error: %w", err)
	}

	store, err := storage.NewPostgresManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	service := accounts.NewService(store.Accounts(), hasher, codec, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		store:   store,
		service: service,
		codec:   codec,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.Addr, app.logger, app.service, app.codec)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts the HTTP server in the background and, unless running headless,
// hands the foreground to the interactive console. The process stops when
// the console exits, a signal arrives, or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if !app.config.Headless {
		console.NewApp(app.service, app.codec).Run(ctx)
		cancelFunc()
	}

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
