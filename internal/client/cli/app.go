package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/pizzastore/internal/client/client"
	"github.com/dmitrijs2005/pizzastore/internal/client/config"
	"github.com/dmitrijs2005/pizzastore/internal/client/metrics"
	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/client/services"
	"github.com/dmitrijs2005/pizzastore/internal/client/session"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	metrics *metrics.Metrics
	session *session.Store

	authService      services.AuthService
	storeService     services.StoreService
	profileService   services.ProfileService
	promotionService services.PromotionService

	mu       sync.RWMutex
	mode     Mode
	userName string
	category models.AccountCategory

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the HTTP client, metrics and services for cfg.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	m := metrics.New()

	apiClient, err := client.NewHTTPClient(c.ServerURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithTransport(m.InstrumentTransport(nil)),
		client.WithLogger(log.With("component", "http")),
	)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	store := session.NewStore()
	a := &App{
		config:           c,
		log:              log,
		metrics:          m,
		session:          store,
		authService:      services.NewAuthService(apiClient, store, log.With("component", "auth")),
		storeService:     services.NewStoreService(apiClient, log.With("component", "store")),
		profileService:   services.NewProfileService(apiClient),
		promotionService: services.NewPromotionService(apiClient, log.With("component", "promotions")),
		reader:           bufio.NewReader(os.Stdin),
		out:              os.Stdout,
	}
	return a, nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) currentMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

// Run blocks until the user exits the REPL or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	if a.config.MetricsAddr != "" {
		go func() {
			if err := a.metrics.Serve(ctx, a.config.MetricsAddr, a.log); err != nil {
				a.log.Error(ctx, "metrics server stopped", "error", err)
			}
		}()
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) isWorker() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.category == models.CategoryWorker
}

func (a *App) setCategory(c models.AccountCategory) {
	a.mu.Lock()
	a.category = c
	a.mu.Unlock()
}

// onSessionChange keeps the prompt in step with the session store.
func (a *App) onSessionChange(user *models.CurrentUser) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if user == nil {
		a.userName = ""
		a.category = ""
		return
	}
	a.userName = user.DisplayName()
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err := a.authService.Ping(ctx)
	cancel()

	if err != nil {
		a.log.Debug(ctx, "status probe failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher probes the backend right away and then every
// interval until ctx is done. The mode is informational only.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
