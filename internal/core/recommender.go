// ABOUTME: Recommender orchestrates search, formatting, and generation
// ABOUTME: Entry points for the conversation controller and tool surfaces
package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/harper/stylist/internal/models"
	"github.com/harper/stylist/internal/storage"
)

// ErrInvalidGender indicates a filter value outside the recognized
// categories. Recoverable; callers re-prompt the user.
var ErrInvalidGender = errors.New("gender must be Women or Men")

// DefaultResultCount is the fixed top-k for product search
const DefaultResultCount = 3

// OutfitGenerator runs a single stylist inference and returns raw text
type OutfitGenerator interface {
	GenerateOutfits(ctx context.Context, details, event string) (string, error)
}

// Recommender answers product queries against the index and produces
// structured outfit suggestions from the generative model.
type Recommender struct {
	store     *storage.Store
	formatter *Formatter
	generator OutfitGenerator
}

// NewRecommender wires a store, formatter, and generator. generator may
// be nil when only catalog search is served.
func NewRecommender(store *storage.Store, formatter *Formatter, generator OutfitGenerator) *Recommender {
	return &Recommender{
		store:     store,
		formatter: formatter,
		generator: generator,
	}
}

// Recommend searches the catalog for query restricted to gender and
// renders the ranked results. A nil Rendered with nil error means no
// products matched; callers show their empty-result message.
func (r *Recommender) Recommend(ctx context.Context, query, gender string, k int) (*Rendered, error) {
	if gender != "" && !models.ValidGender(gender) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidGender, gender)
	}
	if k <= 0 {
		k = DefaultResultCount
	}

	results, err := r.store.Search(ctx, query, k, gender)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}

	return r.formatter.Format(ctx, results)
}

// SuggestOutfits generates outfit combinations for a style profile and
// event. Unparseable model output is expected occasionally and surfaces
// as ErrNoOutfits so the caller can ask the user to retry.
func (r *Recommender) SuggestOutfits(ctx context.Context, details, event string) ([]models.Outfit, error) {
	if r.generator == nil {
		return nil, fmt.Errorf("no outfit generator configured")
	}

	raw, err := r.generator.GenerateOutfits(ctx, details, event)
	if err != nil {
		return nil, fmt.Errorf("generating outfits: %w", err)
	}

	outfits, err := ParseOutfits(raw)
	if err != nil {
		log.Printf("Warning: stylist output unparseable (%d bytes): %v", len(raw), err)
		return nil, err
	}
	return outfits, nil
}
