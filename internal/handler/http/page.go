package http

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gungun-1908/InsightCart/internal/domain"
	"github.com/gungun-1908/InsightCart/internal/render"
	"github.com/gungun-1908/InsightCart/internal/service"
	"github.com/gungun-1908/InsightCart/internal/ui"
)

// PageHandler renders the storefront page. Every dynamic listing is
// best-effort: a backend failure logs and leaves its section empty rather
// than failing the page.
type PageHandler struct {
	service    *service.StorefrontService
	renderer   *render.Renderer
	uiRegistry *ui.Registry
	tmpl       *template.Template
	logger     *slog.Logger
}

// NewPageHandler creates the storefront page handler.
func NewPageHandler(
	svc *service.StorefrontService,
	renderer *render.Renderer,
	uiRegistry *ui.Registry,
	tmpl *template.Template,
	logger *slog.Logger,
) *PageHandler {
	return &PageHandler{
		service:    svc,
		renderer:   renderer,
		uiRegistry: uiRegistry,
		tmpl:       tmpl,
		logger:     logger,
	}
}

type pageData struct {
	ShowAuthOverlay    bool
	VisibleForm        ui.Form
	NavMenuActive      bool
	CategoryMenuActive bool
	OverlayActive      bool
	OpenAccordion      string
	MostBought         template.HTML
	Recommended        template.HTML
	CartCount          int
}

// Index handles GET /. A client without a session gets the auth overlay
// open and page scroll locked; logging in is the page's front door.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := clientIDFromContext(ctx)

	email, err := h.service.Session(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "session lookup failed", "error", err)
		email = ""
	}

	snap := h.uiRegistry.For(clientID).Snapshot()

	data := pageData{
		ShowAuthOverlay: email == "",
		VisibleForm:     snap.VisibleForm,
		OverlayActive:   snap.OverlayActive,
		OpenAccordion:   snap.OpenAccordion,
	}
	for _, panel := range snap.ActivePanels {
		switch panel {
		case "nav-menu":
			data.NavMenuActive = true
		case "category-menu":
			data.CategoryMenuActive = true
		}
	}

	data.MostBought = h.listingHTML(r, render.VariantMostBought)
	if email != "" {
		data.Recommended = h.listingHTML(r, render.VariantRecommended)

		cart, err := h.service.GetCart(ctx, clientID)
		if err != nil {
			h.logger.ErrorContext(ctx, "cart lookup failed", "error", err)
		} else {
			data.CartCount = cart.ItemCount()
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		h.logger.ErrorContext(ctx, "page render failed", "error", err)
	}
}

func (h *PageHandler) listingHTML(r *http.Request, variant render.Variant) template.HTML {
	ctx := r.Context()

	products, err := h.fetchPageListing(r, variant)
	if err != nil {
		h.logger.WarnContext(ctx, "listing fetch failed", "listing", string(variant), "error", err)
		return ""
	}

	html, err := h.renderer.ProductsHTML(variant, products)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing render failed", "listing", string(variant), "error", err)
		return ""
	}
	return html
}

func (h *PageHandler) fetchPageListing(r *http.Request, variant render.Variant) ([]domain.Product, error) {
	ctx := r.Context()
	if variant == render.VariantMostBought {
		return h.service.MostBought(ctx)
	}
	return h.service.Recommendations(ctx, clientIDFromContext(ctx))
}
