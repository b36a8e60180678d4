// Package render produces the storefront's product listing fragments. All
// three listings (best sellers, recommendations, search results) come from a
// single template; the variant decides the optional lines.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/gungun-1908/InsightCart/internal/domain"
)

//go:embed templates/products.tmpl
var templateFS embed.FS

// Renderer renders product listings as HTML fragments.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded listing template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/products.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse products template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type templateData struct {
	Products      []domain.Product
	ShowCategory  bool
	ShowPurchases bool
}

// RenderProducts writes the listing fragment for the given variant. An empty
// product list produces an empty fragment: writing it into a container
// replaces whatever was shown before.
func (r *Renderer) RenderProducts(w io.Writer, v Variant, products []domain.Product) error {
	data := templateData{
		Products:      products,
		ShowCategory:  v.showCategory(),
		ShowPurchases: v.showPurchases(),
	}
	if err := r.tmpl.ExecuteTemplate(w, "products.tmpl", data); err != nil {
		return fmt.Errorf("render %s listing: %w", v, err)
	}
	return nil
}

// ProductsHTML renders the listing fragment to a template.HTML value for
// embedding into the storefront page.
func (r *Renderer) ProductsHTML(v Variant, products []domain.Product) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.RenderProducts(&buf, v, products); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
