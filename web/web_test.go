package web

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("index"))
	assert.NotNil(t, tmpl.Lookup("showcase"))
}

func TestShowcaseHTML_CardsAreComplete(t *testing.T) {
	html, err := ShowcaseHTML()
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	cards := doc.Find(".showcase")
	require.Greater(t, cards.Length(), 0)

	// Every card must carry the full set of scrapeable fields.
	cards.Each(func(_ int, card *goquery.Selection) {
		_, hasImg := card.Find(".showcase-img").Attr("src")
		assert.True(t, hasImg)
		assert.NotEmpty(t, card.Find(".showcase-title").Text())
		assert.NotEmpty(t, card.Find(".showcase-category").Text())
		assert.NotEmpty(t, card.Find(".price").Text())
		id, hasID := card.Find(".buy-btn").Attr("data-product-id")
		assert.True(t, hasID)
		assert.NotEmpty(t, id)
	})
}
