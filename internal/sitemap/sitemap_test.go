package sitemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optical-storefront/internal/domain"
)

func TestGenerate(t *testing.T) {
	out, err := Generate([]domain.Product{
		{ID: 1, Name: "Aviator Frame"},
		{ID: 2, Name: "Round Frame"},
	}, "https://www.example.com/")
	require.NoError(t, err)

	xml := string(out)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, xml, "<loc>https://www.example.com/products/product-1</loc>")
	assert.Contains(t, xml, "<loc>https://www.example.com/products/product-2</loc>")
	assert.Equal(t, 2, strings.Count(xml, "<url>"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "product-42", Slug(domain.Product{ID: 42, Name: "Cat Eye Frame"}))
}
