package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gungun-1908/InsightCart/internal/render"
	"github.com/gungun-1908/InsightCart/internal/service"
	"github.com/gungun-1908/InsightCart/internal/ui"
	"github.com/gungun-1908/InsightCart/pkg/health"
	"github.com/gungun-1908/InsightCart/pkg/middleware"
)

// RouterConfig collects the router's tunables.
type RouterConfig struct {
	ClientCookieTTL time.Duration
	AuthRateLimit   int
	AuthRateBurst   int
	CORS            middleware.CORSConfig
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	svc *service.StorefrontService,
	renderer *render.Renderer,
	uiRegistry *ui.Registry,
	dispatcher *ui.Dispatcher,
	pageTemplates *template.Template,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	handler := NewStorefrontHandler(svc, renderer, uiRegistry, dispatcher, logger)
	pageHandler := NewPageHandler(svc, renderer, uiRegistry, pageTemplates, logger)

	// Everything below identifies the browser by its client cookie.
	r.Group(func(r chi.Router) {
		r.Use(ClientCookie(cfg.ClientCookieTTL))

		r.Get("/", pageHandler.Index)

		r.Get("/fragments/products/{container}", handler.ProductFragment)

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(ContentTypeJSON)

			r.Route("/session", func(r chi.Router) {
				r.Use(middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst, logger))

				r.Post("/register", handler.Register)
				r.Post("/login", handler.Login)
			})

			r.Get("/cart", handler.GetCart)
			r.Post("/cart/items", handler.AddItem)
			r.Post("/checkout", handler.Checkout)

			r.Get("/products/most-bought", handler.MostBought)
			r.Get("/products/recommended", handler.Recommended)
			r.Get("/products/search", handler.Search)

			r.Post("/ui/actions", handler.UIAction)
		})
	})

	return r
}
