// ABOUTME: Catalog indexer building the persisted vector index from CSV
// ABOUTME: Rebuilds into a temp directory then atomically swaps it in
package catalog

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/harper/stylist/internal/models"
	"github.com/harper/stylist/internal/storage"
	"github.com/harper/stylist/internal/storage/sqlite"
)

// Indexer embeds catalog products and persists them as a fresh index.
// Ingestion is all-or-nothing: any bad row or failed embedding aborts the
// batch and leaves the previous index untouched.
type Indexer struct {
	embedder storage.Embedder
	verbose  bool
}

// NewIndexer creates an Indexer using the given embedding provider
func NewIndexer(embedder storage.Embedder) *Indexer {
	return &Indexer{embedder: embedder}
}

// SetVerbose enables per-batch progress logging
func (ix *Indexer) SetVerbose(v bool) {
	ix.verbose = v
}

// IngestFile loads the catalog CSV at catalogPath and rebuilds the index
// at indexDir. Any pre-existing index at indexDir is replaced; the old
// index stays in place until the new one is fully built.
func (ix *Indexer) IngestFile(ctx context.Context, catalogPath, indexDir string) (int, error) {
	products, err := Load(catalogPath)
	if err != nil {
		return 0, err
	}
	return ix.Ingest(ctx, products, indexDir)
}

// Ingest embeds every product and writes a fresh index at indexDir.
// Returns the number of documents indexed.
func (ix *Indexer) Ingest(ctx context.Context, products []models.Product, indexDir string) (int, error) {
	if len(products) == 0 {
		return 0, fmt.Errorf("catalog is empty, refusing to build an empty index")
	}

	// Build into a sibling temp directory so readers of the current index
	// never observe a half-written one.
	tmpDir := indexDir + ".building"
	if err := os.RemoveAll(tmpDir); err != nil {
		return 0, fmt.Errorf("clearing stale build directory: %w", err)
	}

	count, err := ix.buildInto(ctx, products, tmpDir)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return 0, err
	}

	// Swap the finished build into place
	if err := os.RemoveAll(indexDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return 0, fmt.Errorf("removing previous index: %w", err)
	}
	if err := os.Rename(tmpDir, indexDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return 0, fmt.Errorf("installing new index: %w", err)
	}

	return count, nil
}

// buildInto writes all product documents into a fresh index at dir
func (ix *Indexer) buildInto(ctx context.Context, products []models.Product, dir string) (int, error) {
	db, err := sqlite.Open(sqlite.IndexPath(dir))
	if err != nil {
		return 0, fmt.Errorf("creating index database: %w", err)
	}
	defer func() { _ = db.Close() }()

	docs := sqlite.NewDocumentStore(db)

	for i, product := range products {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := product.Validate(); err != nil {
			return 0, &RowError{Row: product.ID, Err: err}
		}

		text := product.DocumentText()
		vector, err := ix.embedder.Embed(ctx, text)
		if err != nil {
			return 0, &RowError{Row: product.ID, Err: fmt.Errorf("embedding failed: %w", err)}
		}

		doc := models.Document{
			Text:    text,
			Vector:  vector,
			Product: product,
		}
		if err := docs.Save(&doc); err != nil {
			return 0, &RowError{Row: product.ID, Err: fmt.Errorf("saving document: %w", err)}
		}

		if ix.verbose && (i+1)%100 == 0 {
			log.Printf("Indexed %d/%d products...", i+1, len(products))
		}
	}

	return len(products), nil
}
