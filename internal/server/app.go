// Package server runs the pizza store development backend: an echo HTTP API
// over in-memory stores seeded with demo data.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/server/api"
	"github.com/dmitrijs2005/pizzastore/internal/server/catalog"
	"github.com/dmitrijs2005/pizzastore/internal/server/config"
	"github.com/dmitrijs2005/pizzastore/internal/server/identity"
	"github.com/dmitrijs2005/pizzastore/internal/server/promotions"
	"github.com/dmitrijs2005/pizzastore/internal/server/sessions"
	"github.com/dmitrijs2005/pizzastore/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	router *echo.Echo
}

// NewApp wires the stores and services and seeds the demo data.
func NewApp(cfg *config.Config, logger logging.Logger, opts ...users.Option) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	us := users.NewService(users.NewMemoryRepository(), opts...)
	ps := promotions.NewService(promotions.NewMemoryRepository())

	if err := seed(context.Background(), us, ps, cfg.CompanyDomain); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	router := api.NewRouter(api.Deps{
		Resolver:   identity.NewResolver(cfg.CompanyDomain),
		Users:      us,
		Sessions:   sessions.NewStore(cfg.SessionIdleTimeout),
		Promotions: ps,
		Catalog:    catalog.NewDemo(),
		Logger:     logger,
	})

	return &App{config: cfg, logger: logger, router: router}, nil
}

// Handler exposes the router, e.g. for httptest servers.
func (app *App) Handler() http.Handler {
	return app.router
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	srv := &http.Server{
		Addr:              app.config.Addr,
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		app.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(context.Background(), "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.Addr, "company_domain", app.config.CompanyDomain)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		<-stopped
		return err
	}
	<-stopped
	return nil
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	for _, a := range append(DemoStaff(app.config.CompanyDomain), DemoCustomers...) {
		app.logger.Info(ctx, "demo account", "email", a.Email, "password", a.Password)
	}

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	return runErr
}
