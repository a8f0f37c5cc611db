// Package sitemap renders the product sitemap XML.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"

	"optical-storefront/internal/domain"
)

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlEntry
}

type urlEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

// Generate builds a sitemap with one /products/<slug> URL per product.
func Generate(products []domain.Product, siteURL string) ([]byte, error) {
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range products {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        fmt.Sprintf("%s/products/%s", strings.TrimRight(siteURL, "/"), Slug(p)),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// Slug derives a URL slug from the product, product-<id> by default.
func Slug(p domain.Product) string {
	slug := fmt.Sprintf("product-%d", p.ID)
	return strings.ToLower(strings.ReplaceAll(slug, " ", "-"))
}
