// ABOUTME: Document persistence and cosine similarity search for the index
// ABOUTME: Stores vectors as BLOBs with denormalized product metadata
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/harper/stylist/internal/models"
)

// DocumentStore handles indexed document persistence
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Save persists one indexed document. The document id is the product id,
// so re-saving a product replaces its previous entry.
func (s *DocumentStore) Save(doc *models.Document) error {
	if len(doc.Vector) == 0 {
		return fmt.Errorf("document %d: vector cannot be empty", doc.Product.ID)
	}

	_, err := s.db.Exec(`
		INSERT INTO documents (id, text, vector, name, gender, description, price, image_urls)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			vector = excluded.vector,
			name = excluded.name,
			gender = excluded.gender,
			description = excluded.description,
			price = excluded.price,
			image_urls = excluded.image_urls
	`, doc.Product.ID, doc.Text, vectorToBlob(doc.Vector),
		doc.Product.Name, doc.Product.Gender, doc.Product.Description,
		doc.Product.Price, strings.Join(doc.Product.ImageURLs, models.ImageURLDelimiter))

	return err
}

// Count returns the number of indexed documents
func (s *DocumentStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return n, nil
}

// GetByID retrieves a single document by product id, nil if absent
func (s *DocumentStore) GetByID(id int) (*models.Document, error) {
	rows, err := s.db.Query(`
		SELECT id, text, vector, name, gender, description, price, image_urls
		FROM documents
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

// SearchSimilar returns up to maxResults documents ranked by cosine
// similarity to queryVector. A non-empty gender restricts candidates by
// metadata equality before scoring. An empty corpus or filter match set
// yields an empty result, not an error.
func (s *DocumentStore) SearchSimilar(queryVector []float64, maxResults int, gender string) ([]models.SearchResult, error) {
	query := `
		SELECT id, text, vector, name, gender, description, price, image_urls
		FROM documents
	`
	var args []interface{}
	if gender != "" {
		query += ` WHERE gender = ?`
		args = append(args, gender)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, models.SearchResult{
			Document: doc,
			Score:    CosineSimilarity(queryVector, doc.Vector),
		})
	}

	// Sort by similarity descending
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	return results, nil
}

// scanDocuments scans rows into documents
func scanDocuments(rows *sql.Rows) ([]models.Document, error) {
	var docs []models.Document

	for rows.Next() {
		var (
			doc  models.Document
			blob []byte
			urls string
		)

		if err := rows.Scan(&doc.Product.ID, &doc.Text, &blob, &doc.Product.Name,
			&doc.Product.Gender, &doc.Product.Description, &doc.Product.Price, &urls); err != nil {
			return nil, err
		}

		doc.Vector = blobToVector(blob)
		doc.Product.ImageURLs = models.ParseImageURLs(urls)
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}
