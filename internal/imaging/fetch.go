// ABOUTME: Best-effort remote image fetching with bounded timeouts
// ABOUTME: Fan-out fetcher drops broken URLs instead of failing the caller
package imaging

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"time"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchTimeout bounds a single image download
const DefaultFetchTimeout = 8 * time.Second

// fetchConcurrency bounds parallel downloads within one product row
const fetchConcurrency = 3

// Fetcher downloads and decodes remote product images
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher using the given HTTP client. Pass nil for
// a client with the default per-image timeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &Fetcher{client: client}
}

// Fetch downloads url and decodes it as an image. Any network or decode
// failure is returned for the caller to absorb; a broken URL is never
// fatal to a response.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}

	return img, nil
}

// FetchAll downloads urls in parallel and returns the first max images
// that fetched successfully, in URL order. Failed fetches are logged and
// skipped, and later URLs still count toward max, so a broken URL only
// costs a cell when not enough URLs work. The result may be shorter than
// max or empty.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, max int) []image.Image {
	// Each worker writes its own slot, so no locking is needed
	fetched := make([]image.Image, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, url := range urls {
		g.Go(func() error {
			img, err := f.Fetch(ctx, url)
			if err != nil {
				log.Printf("Warning: could not fetch image from %s: %v", url, err)
				return nil
			}
			fetched[i] = img
			return nil
		})
	}
	// Workers only return nil; Wait is for completion, not errors
	_ = g.Wait()

	images := make([]image.Image, 0, len(fetched))
	for _, img := range fetched {
		if img == nil {
			continue
		}
		images = append(images, img)
		if max > 0 && len(images) == max {
			break
		}
	}
	return images
}
