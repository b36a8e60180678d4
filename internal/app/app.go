package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gungun-1908/InsightCart/internal/catalog"
	"github.com/gungun-1908/InsightCart/internal/config"
	handler "github.com/gungun-1908/InsightCart/internal/handler/http"
	"github.com/gungun-1908/InsightCart/internal/render"
	redisstore "github.com/gungun-1908/InsightCart/internal/repository/redis"
	"github.com/gungun-1908/InsightCart/internal/scrape"
	"github.com/gungun-1908/InsightCart/internal/service"
	"github.com/gungun-1908/InsightCart/internal/ui"
	"github.com/gungun-1908/InsightCart/pkg/health"
	"github.com/gungun-1908/InsightCart/pkg/httpclient"
	"github.com/gungun-1908/InsightCart/pkg/middleware"
	"github.com/gungun-1908/InsightCart/pkg/tracing"
	"github.com/gungun-1908/InsightCart/web"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	svc             *service.StorefrontService
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing (no-op unless enabled).
	tracingCfg := tracing.DefaultConfig("storefront")
	tracingCfg.Environment = cfg.Environment
	tracingCfg.OTLPEndpoint = cfg.TracingEndpoint
	tracingCfg.Enabled = cfg.TracingEnabled
	tracingShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Redis holds the per-client carts and sessions.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Build the dependency graph.
	clientTTL := time.Duration(cfg.ClientTTL) * time.Hour
	store := redisstore.NewStore(rdb, clientTTL)

	backend := catalog.NewClient(httpclient.New(httpclient.DefaultConfig()), cfg.CatalogBaseURL)
	svc := service.NewStorefrontService(store, backend, logger)

	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("load page templates: %w", err)
	}

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	// HTTP router.
	router := handler.NewRouter(
		svc,
		renderer,
		ui.NewRegistry(),
		ui.NewDispatcher(),
		templates,
		healthHandler,
		logger,
		handler.RouterConfig{
			ClientCookieTTL: clientTTL,
			AuthRateLimit:   cfg.AuthRateLimit,
			AuthRateBurst:   cfg.AuthRateBurst,
			CORS:            middleware.DefaultCORSConfig(),
		},
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		svc:             svc,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	a.syncShowcase(ctx)

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// syncShowcase scrapes the embedded showcase markup and pushes the products
// to the backend catalog. Failures are logged and tolerated: the storefront
// serves pages either way and the sync runs again on the next start.
func (a *App) syncShowcase(ctx context.Context) {
	html, err := web.ShowcaseHTML()
	if err != nil {
		a.logger.Error("showcase render failed", slog.String("error", err.Error()))
		return
	}

	products, err := scrape.ShowcaseProducts(strings.NewReader(html))
	if err != nil {
		a.logger.Error("showcase scrape failed", slog.String("error", err.Error()))
		return
	}

	syncCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := a.svc.SyncShowcase(syncCtx, products); err != nil {
		a.logger.Warn("showcase sync failed", slog.String("error", err.Error()))
	}
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.logger.Info("application stopped")
	return nil
}
