// Package server wires configuration, the store mode, services and the HTTP
// bridge together, and runs them until the process is signalled.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/croissant/internal/cryptox"
	"github.com/dmitrijs2005/croissant/internal/logging"
	"github.com/dmitrijs2005/croissant/internal/server/api"
	"github.com/dmitrijs2005/croissant/internal/server/commands"
	"github.com/dmitrijs2005/croissant/internal/server/config"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/croissant/internal/server/services"
	"github.com/dmitrijs2005/croissant/internal/server/shared/db"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	dispatcher *commands.Dispatcher
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel)
	return &App{config: c, logger: logger, dispatcher: NewDispatcher(c, logger)}, nil
}

// NewDispatcher builds the command surface for c.Mode. The mode is fixed for
// the lifetime of the returned dispatcher.
func NewDispatcher(c *config.Config, logger logging.Logger) *commands.Dispatcher {
	var (
		provider db.Provider
		manager  repomanager.RepositoryManager
	)

	switch c.Mode {
	case config.ModeMock:
		provider = db.NewMemoryProvider()
		manager = repomanager.NewInMemoryRepositoryManager()
	default:
		pp := db.NewPostgresProvider(c.Database, logger)
		if err := pp.Err(); err != nil {
			// every store command will report this error
			logger.Warn(context.Background(), "store is not configured", "error", err.Error())
		}
		provider = pp
		manager = repomanager.NewPostgresRepositoryManager(accounts.SchemaFor(c.Database.AccountSchema))
	}

	hasher := cryptox.NewHasher(c.BcryptCost)

	logger.Info(context.Background(), "store selected", "mode", string(c.Mode))

	return commands.NewDispatcher(
		services.NewAccountService(provider, manager, hasher),
		services.NewUserService(provider, manager),
		services.NewMessageService(provider, manager),
		commands.AppConfig{Demo: c.Demo, LocalDev: c.LocalDev, Mode: string(c.Mode)},
		logger,
	)
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := api.NewServer(app.config.HTTPAddr, app.dispatcher, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or the
// HTTP bridge fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "mode", string(app.config.Mode))

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
}
