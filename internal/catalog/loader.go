// ABOUTME: Catalog CSV loader producing stable-ID product records
// ABOUTME: Required columns gender/name/price; description and images optional
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/harper/stylist/internal/models"
)

// ErrCatalogNotFound indicates the catalog file is missing or unreadable
var ErrCatalogNotFound = errors.New("catalog file not found")

// RowError reports a malformed catalog row. Ingestion is all-or-nothing, so
// a single RowError aborts the whole batch.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("catalog row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

var requiredColumns = []string{"gender", "name", "price"}

// Load reads the catalog CSV at path and returns one product per data row.
// Product IDs are the 0-based row ordinals, so loading the same file twice
// yields identical records.
func Load(path string) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogNotFound, path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads catalog rows from r. Split out from Load so tests and other
// sources (stdin, archives) can feed records without a file on disk.
func Parse(r io.Reader) ([]models.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrCatalogNotFound, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrCatalogNotFound, name)
		}
	}

	var products []models.Product
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}

		product, err := parseRow(record, columns, row)
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}
		products = append(products, product)
	}

	return products, nil
}

// parseRow builds a product from one CSV record. Description and images
// default to empty when the column is absent or short.
func parseRow(record []string, columns map[string]int, row int) (models.Product, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	gender := field("gender")
	name := field("name")
	priceRaw := field("price")

	if gender == "" {
		return models.Product{}, fmt.Errorf("gender is required")
	}
	if name == "" {
		return models.Product{}, fmt.Errorf("name is required")
	}
	if priceRaw == "" {
		return models.Product{}, fmt.Errorf("price is required")
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid price %q: %v", priceRaw, err)
	}
	if price < 0 {
		return models.Product{}, fmt.Errorf("price must be non-negative, got %f", price)
	}

	return models.Product{
		ID:          row,
		Name:        name,
		Gender:      gender,
		Description: field("description"),
		Price:       price,
		ImageURLs:   models.ParseImageURLs(field("images")),
	}, nil
}
