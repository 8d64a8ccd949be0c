// ABOUTME: Store facade over the SQLite vector index with query embedding
// ABOUTME: Supports strict must-exist opens and lazy build-on-miss opens
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/harper/stylist/internal/models"
	"github.com/harper/stylist/internal/storage/sqlite"
)

// ErrStoreNotFound indicates no persisted index exists at the given path.
// Recoverable by running ingestion.
var ErrStoreNotFound = errors.New("vector index not found")

// Embedder converts free text into a fixed-length numeric vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Store is a read handle on a persisted product index plus the embedding
// provider used to vectorize queries. Safe for concurrent readers; Reopen
// may swap the underlying database while searches run.
type Store struct {
	mu       sync.RWMutex
	dir      string
	db       *sqlite.DB
	docs     *sqlite.DocumentStore
	embedder Embedder
}

// Open opens the persisted index at dir, failing with ErrStoreNotFound if
// the index is absent or holds no documents. This is the strict "must
// pre-exist" contract used by serving paths that require a prior ingest.
func Open(dir string, embedder Embedder) (*Store, error) {
	path := sqlite.IndexPath(dir)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, dir)
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	docs := sqlite.NewDocumentStore(db)
	count, err := docs.Count()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("inspecting index: %w", err)
	}
	if count == 0 {
		_ = db.Close()
		return nil, fmt.Errorf("%w: index at %s is empty", ErrStoreNotFound, dir)
	}

	return &Store{dir: dir, db: db, docs: docs, embedder: embedder}, nil
}

// OpenOrBuild opens the index at dir, lazily building it via build when no
// usable index exists. build is expected to create and populate the index
// directory (see catalog.Indexer).
func OpenOrBuild(dir string, embedder Embedder, build func() error) (*Store, error) {
	store, err := Open(dir, embedder)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, ErrStoreNotFound) {
		return nil, err
	}

	if err := build(); err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}

	return Open(dir, embedder)
}

// Reopen swaps this handle to the index currently on disk. A rebuild
// replaces the index directory wholesale, so an already-open handle keeps
// reading the deleted old database file until it reopens. Callers that
// trigger an ingest while holding a Store must Reopen it afterwards.
func (s *Store) Reopen() error {
	fresh, err := Open(s.dir, s.embedder)
	if err != nil {
		return fmt.Errorf("reopening index: %w", err)
	}

	s.mu.Lock()
	old := s.db
	s.db = fresh.db
	s.docs = fresh.docs
	s.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Count returns the number of indexed documents
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs.Count()
}

// GetByID returns the indexed document for a product id, nil if absent
func (s *Store) GetByID(id int) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs.GetByID(id)
}

// Search embeds query and returns up to k documents ranked by similarity.
// A non-empty gender restricts candidates by metadata equality. Zero
// matches yield an empty slice, never an error.
func (s *Store) Search(ctx context.Context, query string, k int, gender string) ([]models.SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs.SearchSimilar(vector, k, gender)
}
