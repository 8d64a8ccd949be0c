// ABOUTME: Tests for best-effort image fetching and fan-out degradation
// ABOUTME: Uses httptest servers for valid, broken, and slow image URLs
package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

// pngBytes encodes a small solid PNG for test servers
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func imageServer(t *testing.T) *httptest.Server {
	t.Helper()
	data := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png", "/ok2.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(data)
		case "/garbage":
			_, _ = w.Write([]byte("this is not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetcher_Fetch(t *testing.T) {
	server := imageServer(t)
	fetcher := NewFetcher(server.Client())

	img, err := fetcher.Fetch(context.Background(), server.URL+"/ok.png")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("decoded width = %d, want 4", img.Bounds().Dx())
	}
}

func TestFetcher_Fetch_Errors(t *testing.T) {
	server := imageServer(t)
	fetcher := NewFetcher(server.Client())

	tests := []struct {
		name string
		url  string
	}{
		{"not found", server.URL + "/missing.png"},
		{"decode failure", server.URL + "/garbage"},
		{"unreachable host", "http://127.0.0.1:1/nope.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fetcher.Fetch(context.Background(), tt.url); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFetcher_FetchAll_DegradesOnBrokenURL(t *testing.T) {
	server := imageServer(t)
	fetcher := NewFetcher(server.Client())

	urls := []string{
		server.URL + "/ok.png",
		server.URL + "/missing.png",
		server.URL + "/ok2.png",
	}

	images := fetcher.FetchAll(context.Background(), urls, 3)
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2 (broken URL dropped)", len(images))
	}
}

func TestFetcher_FetchAll_TriesPastFailures(t *testing.T) {
	server := imageServer(t)
	fetcher := NewFetcher(server.Client())

	// The broken first URL must not consume a slot; later URLs fill it
	urls := []string{
		server.URL + "/missing.png",
		server.URL + "/ok.png",
		server.URL + "/ok2.png",
		server.URL + "/ok.png",
	}

	images := fetcher.FetchAll(context.Background(), urls, 3)
	if len(images) != 3 {
		t.Fatalf("got %d images, want 3 (failures skipped, later URLs used)", len(images))
	}
}

func TestFetcher_FetchAll_RespectsMax(t *testing.T) {
	server := imageServer(t)
	fetcher := NewFetcher(server.Client())

	urls := []string{
		server.URL + "/ok.png",
		server.URL + "/ok.png",
		server.URL + "/ok.png",
		server.URL + "/ok.png",
	}

	images := fetcher.FetchAll(context.Background(), urls, 2)
	if len(images) != 2 {
		t.Errorf("got %d images, want max 2", len(images))
	}
}

func TestFetcher_FetchAll_AllBroken(t *testing.T) {
	server := imageServer(t)
	fetcher := NewFetcher(server.Client())

	images := fetcher.FetchAll(context.Background(), []string{
		server.URL + "/missing.png",
		server.URL + "/garbage",
	}, 3)
	if len(images) != 0 {
		t.Errorf("got %d images, want 0", len(images))
	}
}

func TestFetcher_FetchAll_Empty(t *testing.T) {
	fetcher := NewFetcher(nil)
	if images := fetcher.FetchAll(context.Background(), nil, 3); len(images) != 0 {
		t.Errorf("got %d images for no urls, want 0", len(images))
	}
}
