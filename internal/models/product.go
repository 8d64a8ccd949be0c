// ABOUTME: Product catalog models for indexing and retrieval
// ABOUTME: Defines Product, Document, and SearchResult structures
package models

import (
	"fmt"
	"strings"
)

// Recognized gender categories for catalog products and search filters
const (
	GenderWomen = "Women"
	GenderMen   = "Men"
)

// ImageURLDelimiter separates image URLs in the catalog's images column
const ImageURLDelimiter = "~"

// Product is one catalog entry. ID is the 0-based row ordinal from the
// source catalog, so re-ingesting the same file reproduces the same IDs.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Gender      string   `json:"gender"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURLs   []string `json:"image_urls"`
}

// ParseImageURLs splits a tilde-delimited URL list from the catalog,
// dropping empty entries but preserving order.
func ParseImageURLs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ImageURLDelimiter)
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			urls = append(urls, p)
		}
	}
	return urls
}

// ValidGender reports whether g is one of the recognized categories.
func ValidGender(g string) bool {
	return g == GenderWomen || g == GenderMen
}

// DocumentText derives the searchable text stored in the index. The shape
// matches what the embedding model sees at both ingest and query time.
func (p *Product) DocumentText() string {
	return fmt.Sprintf("For %s - %s - %s", p.Gender, p.Name, p.Description)
}

// Validate checks the fields required for ingestion
func (p *Product) Validate() error {
	if p.ID < 0 {
		return fmt.Errorf("product ID must be non-negative, got %d", p.ID)
	}
	if p.Name == "" {
		return fmt.Errorf("product name cannot be empty")
	}
	if p.Gender == "" {
		return fmt.Errorf("product gender cannot be empty")
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must be non-negative, got %f", p.Price)
	}
	return nil
}

// Document is the unit stored in the vector index: the synthesized search
// text, its embedding, and a denormalized copy of the product metadata so
// retrieval needs no second lookup.
type Document struct {
	Text    string    `json:"text"`
	Vector  []float64 `json:"vector"`
	Product Product   `json:"product"`
}

// ValidateDimension checks the vector against the expected embedding size
func (d *Document) ValidateDimension(expectedDim int) error {
	if len(d.Vector) == 0 {
		return fmt.Errorf("document vector cannot be empty")
	}
	if len(d.Vector) != expectedDim {
		return fmt.Errorf("vector dimension mismatch: expected %d, got %d", expectedDim, len(d.Vector))
	}
	return nil
}

// SearchResult is one ranked hit from a similarity search. Rank is 1-based.
type SearchResult struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
	Rank     int      `json:"rank"`
}
