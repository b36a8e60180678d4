package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gungun-1908/InsightCart/internal/domain"
)

func renderToDoc(t *testing.T, v Variant, products []domain.Product) *goquery.Document {
	t.Helper()

	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderProducts(&buf, v, products))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "prod-1", Name: "Mens Winter Leathers Jacket", Category: "jackets", Price: 48.0, ImageURL: "/images/products/jacket-3.jpg", PurchaseCount: 12},
		{ID: "prod-2", Name: "Casual Sneakers", Category: "shoes", Price: 60.0, ImageURL: "/images/products/shoe-1.jpg", PurchaseCount: 7},
	}
}

func TestRenderProducts_MostBought(t *testing.T) {
	doc := renderToDoc(t, VariantMostBought, sampleProducts())

	cards := doc.Find("div.product")
	require.Equal(t, 2, cards.Length())

	first := cards.First()
	id, _ := first.Attr("data-product-id")
	assert.Equal(t, "prod-1", id)

	src, _ := first.Find("img").Attr("src")
	assert.Equal(t, "/images/products/jacket-3.jpg", src)
	assert.Equal(t, "Mens Winter Leathers Jacket", first.Find("h3").Text())

	paragraphs := first.Find("p")
	require.Equal(t, 2, paragraphs.Length())
	assert.Contains(t, paragraphs.Eq(0).Text(), "Price:")
	assert.Equal(t, "Purchased: 12 times", paragraphs.Eq(1).Text())

	btnID, _ := first.Find("button.buy-btn").Attr("data-product-id")
	assert.Equal(t, "prod-1", btnID)
	assert.Equal(t, "Add to Cart", first.Find("button.buy-btn").Text())
}

func TestRenderProducts_Recommended_OmitsCategoryAndPurchases(t *testing.T) {
	doc := renderToDoc(t, VariantRecommended, sampleProducts())

	first := doc.Find("div.product").First()
	paragraphs := first.Find("p")
	require.Equal(t, 1, paragraphs.Length())
	assert.Contains(t, paragraphs.Eq(0).Text(), "Price:")
}

func TestRenderProducts_Search_ShowsCategoryBeforePrice(t *testing.T) {
	doc := renderToDoc(t, VariantSearch, sampleProducts())

	first := doc.Find("div.product").First()
	paragraphs := first.Find("p")
	require.Equal(t, 2, paragraphs.Length())
	assert.Equal(t, "Category: jackets", paragraphs.Eq(0).Text())
	assert.Contains(t, paragraphs.Eq(1).Text(), "Price:")
}

func TestRenderProducts_PriceUsesRupeeEntity(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderProducts(&buf, VariantSearch, sampleProducts()[:1]))

	assert.Contains(t, buf.String(), "Price: &#8377;48")
}

func TestRenderProducts_EmptyListYieldsEmptyFragment(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderProducts(&buf, VariantMostBought, nil))

	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestRenderProducts_EscapesProductFields(t *testing.T) {
	doc := renderToDoc(t, VariantSearch, []domain.Product{
		{ID: "prod-1", Name: "<script>alert(1)</script>", Category: "misc", Price: 1.0, ImageURL: "/img.jpg"},
	})

	// The name must land as text, not as a parsed script element.
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, "<script>alert(1)</script>", doc.Find("h3").Text())
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input string
		want  Variant
	}{
		{"most-bought", VariantMostBought},
		{"most-bought-products", VariantMostBought},
		{"recommended", VariantRecommended},
		{"recommended-products", VariantRecommended},
		{"search", VariantSearch},
		{"search-results", VariantSearch},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseVariant("sidebar")
	assert.Error(t, err)
}

func TestVariant_ContainerID(t *testing.T) {
	assert.Equal(t, "most-bought-products", VariantMostBought.ContainerID())
	assert.Equal(t, "recommended-products", VariantRecommended.ContainerID())
	assert.Equal(t, "search-results", VariantSearch.ContainerID())
}

func TestVariant_EmptyMessage(t *testing.T) {
	assert.Equal(t, "No recommendations found.", VariantRecommended.EmptyMessage())
	assert.Equal(t, "No products found.", VariantSearch.EmptyMessage())
	assert.Empty(t, VariantMostBought.EmptyMessage())
}
