package render

import (
	"fmt"
)

// Variant selects which product listing is being rendered. The listings share
// one template; a variant only toggles which optional lines appear and which
// page container receives the fragment.
type Variant string

const (
	// VariantMostBought lists best sellers with their purchase counts.
	VariantMostBought Variant = "most-bought"

	// VariantRecommended lists per-user recommendations.
	VariantRecommended Variant = "recommended"

	// VariantSearch lists category search results with their categories.
	VariantSearch Variant = "search"
)

// containerIDs maps each variant to its page container element ID.
var containerIDs = map[Variant]string{
	VariantMostBought:  "most-bought-products",
	VariantRecommended: "recommended-products",
	VariantSearch:      "search-results",
}

// ParseVariant resolves a variant from its name or its container ID, so both
// the fragment URL and the page containers address the same listing.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if _, ok := containerIDs[v]; ok {
		return v, nil
	}
	for variant, container := range containerIDs {
		if container == s {
			return variant, nil
		}
	}
	return "", fmt.Errorf("unknown product listing %q", s)
}

// ContainerID returns the page element ID this variant renders into.
func (v Variant) ContainerID() string {
	return containerIDs[v]
}

// EmptyMessage returns the user-facing notice for a listing with no
// products, or empty string when the listing shows nothing in that case.
func (v Variant) EmptyMessage() string {
	switch v {
	case VariantRecommended:
		return "No recommendations found."
	case VariantSearch:
		return "No products found."
	default:
		return ""
	}
}

func (v Variant) showCategory() bool {
	return v == VariantSearch
}

func (v Variant) showPurchases() bool {
	return v == VariantMostBought
}
