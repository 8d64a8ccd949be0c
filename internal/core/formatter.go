// ABOUTME: Renders ranked search results as text plus a composite image
// ABOUTME: Broken image URLs degrade single cells, never the response
package core

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/harper/stylist/internal/imaging"
	"github.com/harper/stylist/internal/models"
)

// Rendered is a user-presentable recommendation: a text summary and an
// optional JPEG composite of the matched products.
type Rendered struct {
	Text  string
	Image []byte
}

// Formatter renders search results using an image fetcher for composites
type Formatter struct {
	fetcher      *imaging.Fetcher
	maxPerRow    int
	resultHeader string
}

// NewFormatter creates a Formatter. maxPerRow bounds images per product
// row; 0 means the default of 3.
func NewFormatter(fetcher *imaging.Fetcher, maxPerRow int) *Formatter {
	if maxPerRow <= 0 {
		maxPerRow = imaging.MaxImagesPerRow
	}
	return &Formatter{
		fetcher:      fetcher,
		maxPerRow:    maxPerRow,
		resultHeader: "Our suggested products for this query:",
	}
}

// Format renders results in rank order. An empty result set returns nil,
// signaling "no match" for the caller to message; it is never an error
// and never produces a zero-row composite.
func (f *Formatter) Format(ctx context.Context, results []models.SearchResult) (*Rendered, error) {
	if len(results) == 0 {
		return nil, nil
	}

	var blocks []string
	var rows []image.Image

	for _, result := range results {
		product := result.Document.Product
		blocks = append(blocks, fmt.Sprintf(
			"Result %d:\nPrice: %.2f\nName: %s\nID: %d\n------------------------",
			result.Rank, product.Price, product.Name, product.ID))

		if f.fetcher == nil || len(product.ImageURLs) == 0 {
			continue
		}
		images := f.fetcher.FetchAll(ctx, product.ImageURLs, f.maxPerRow)
		if row := imaging.ConcatRow(images, f.maxPerRow); row != nil {
			rows = append(rows, row)
		}
	}

	rendered := &Rendered{
		Text: f.resultHeader + "\n\n" + strings.Join(blocks, "\n"),
	}

	if grid := imaging.ConcatGrid(rows); grid != nil {
		data, err := imaging.EncodeJPEG(grid)
		if err != nil {
			return nil, fmt.Errorf("rendering composite: %w", err)
		}
		rendered.Image = data
	}

	return rendered, nil
}
