package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gungun-1908/InsightCart/internal/domain"
	"github.com/gungun-1908/InsightCart/internal/render"
	"github.com/gungun-1908/InsightCart/internal/service"
	"github.com/gungun-1908/InsightCart/internal/ui"
	apperrors "github.com/gungun-1908/InsightCart/pkg/errors"
	"github.com/gungun-1908/InsightCart/pkg/httputil"
	"github.com/gungun-1908/InsightCart/pkg/validator"
)

// StorefrontHandler handles the storefront's JSON API, the rendered product
// fragments, and the UI action dispatch.
type StorefrontHandler struct {
	service    *service.StorefrontService
	renderer   *render.Renderer
	uiRegistry *ui.Registry
	dispatcher *ui.Dispatcher
	logger     *slog.Logger
}

// NewStorefrontHandler creates a new storefront HTTP handler.
func NewStorefrontHandler(
	svc *service.StorefrontService,
	renderer *render.Renderer,
	uiRegistry *ui.Registry,
	dispatcher *ui.Dispatcher,
	logger *slog.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		service:    svc,
		renderer:   renderer,
		uiRegistry: uiRegistry,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// --- Session ---

// Register handles POST /api/v1/session/register. The registration schema
// belongs to the backend, so the field set is forwarded as-is after a
// minimal email check.
func (h *StorefrontHandler) Register(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid JSON body"), h.logger)
		return
	}

	result, err := h.service.Register(r.Context(), clientIDFromContext(r.Context()), fields)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: result})
}

// Login handles POST /api/v1/session/login.
func (h *StorefrontHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), clientIDFromContext(r.Context()), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// --- Cart ---

// GetCart handles GET /api/v1/cart.
func (h *StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), clientIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// AddItem handles POST /api/v1/cart/items.
func (h *StorefrontHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req service.AddItemInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.service.AddItem(r.Context(), clientIDFromContext(r.Context()), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// Checkout handles POST /api/v1/checkout.
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Checkout(r.Context(), clientIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// --- Products ---

// MostBought handles GET /api/v1/products/most-bought.
func (h *StorefrontHandler) MostBought(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.MostBought(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// Recommended handles GET /api/v1/products/recommended.
func (h *StorefrontHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Recommendations(r.Context(), clientIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// Search handles GET /api/v1/products/search.
func (h *StorefrontHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// --- Fragments ---

// ProductFragment handles GET /fragments/products/{container}. It renders
// one of the three product listings as an HTML fragment for the container
// named in the path. A listing with no products renders its empty notice.
func (h *StorefrontHandler) ProductFragment(w http.ResponseWriter, r *http.Request) {
	variant, err := render.ParseVariant(chi.URLParam(r, "container"))
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput(err.Error()), h.logger)
		return
	}

	products, err := h.fetchListing(r, variant)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if len(products) == 0 {
		if msg := variant.EmptyMessage(); msg != "" {
			fmt.Fprintf(w, `<p class="empty-notice">%s</p>`, msg)
		}
		return
	}

	if err := h.renderer.RenderProducts(w, variant, products); err != nil {
		h.logger.ErrorContext(r.Context(), "fragment render failed", "error", err)
	}
}

func (h *StorefrontHandler) fetchListing(r *http.Request, variant render.Variant) ([]domain.Product, error) {
	ctx := r.Context()
	switch variant {
	case render.VariantMostBought:
		return h.service.MostBought(ctx)
	case render.VariantRecommended:
		return h.service.Recommendations(ctx, clientIDFromContext(ctx))
	default:
		return h.service.Search(ctx, r.URL.Query().Get("query"))
	}
}

// --- UI actions ---

// UIAction handles POST /api/v1/ui/actions. Each interactive element posts
// its declared action; the response carries the client's resulting chrome
// state.
func (h *StorefrontHandler) UIAction(w http.ResponseWriter, r *http.Request) {
	var req ui.Request
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	state := h.uiRegistry.For(clientIDFromContext(r.Context()))
	snapshot, err := h.dispatcher.Dispatch(state, req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: snapshot})
}
