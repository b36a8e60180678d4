// Package scrape extracts product data from the storefront's showcase
// markup. The showcase cards in the page template are the source of truth
// for the displayed catalog; scraping them keeps the backend catalog in sync
// without maintaining the product list twice.
package scrape

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gungun-1908/InsightCart/internal/domain"
)

var nonNumeric = regexp.MustCompile(`[^0-9.-]+`)

// ShowcaseProducts parses storefront HTML and returns one product per
// complete showcase card. Cards missing a product ID, name, or parseable
// price are skipped rather than producing partial records.
func ShowcaseProducts(r io.Reader) ([]domain.Product, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse showcase html: %w", err)
	}

	var products []domain.Product
	doc.Find(".showcase").Each(func(_ int, card *goquery.Selection) {
		id, _ := card.Find(".buy-btn").Attr("data-product-id")
		name := trimText(card.Find(".showcase-title"))
		category := trimText(card.Find(".showcase-category"))
		imageURL, _ := card.Find(".showcase-img").Attr("src")

		price, ok := parsePrice(trimText(card.Find(".price")))
		if id == "" || name == "" || !ok {
			return
		}

		products = append(products, domain.Product{
			ID:       id,
			Name:     name,
			Category: category,
			Price:    price,
			ImageURL: imageURL,
		})
	})

	return products, nil
}

func trimText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.First().Text())
}

// parsePrice strips currency symbols and separators, keeping digits, dots
// and minus signs, then parses the remainder as a decimal amount.
func parsePrice(text string) (float64, bool) {
	cleaned := nonNumeric.ReplaceAllString(text, "")
	if cleaned == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
