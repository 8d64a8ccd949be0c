// ABOUTME: Tests for image normalization and composite assembly
// ABOUTME: Verifies cell sizing, row caps, and empty-input contracts
package imaging

import (
	"image"
	"image/color"
	"testing"
)

// solid returns a solid-color test image of the given size
func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestResize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"smaller than cell", 100, 80},
		{"larger than cell", 1024, 768},
		{"already cell sized", CellSize, CellSize},
		{"extreme aspect ratio", 1000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resize(solid(tt.w, tt.h, color.White))
			b := got.Bounds()
			if b.Dx() != CellSize || b.Dy() != CellSize {
				t.Errorf("Resize() bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), CellSize, CellSize)
			}
		})
	}
}

func TestConcatRow(t *testing.T) {
	tests := []struct {
		name      string
		images    []image.Image
		max       int
		wantNil   bool
		wantWidth int
	}{
		{
			name:    "no images returns nil",
			images:  nil,
			max:     3,
			wantNil: true,
		},
		{
			name:      "single image",
			images:    []image.Image{solid(10, 10, color.White)},
			max:       3,
			wantWidth: CellSize,
		},
		{
			name: "three images",
			images: []image.Image{
				solid(10, 10, color.White),
				solid(20, 20, color.Black),
				solid(30, 30, color.White),
			},
			max:       3,
			wantWidth: 3 * CellSize,
		},
		{
			name: "max caps row length",
			images: []image.Image{
				solid(10, 10, color.White),
				solid(10, 10, color.White),
				solid(10, 10, color.White),
				solid(10, 10, color.White),
				solid(10, 10, color.White),
			},
			max:       3,
			wantWidth: 3 * CellSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConcatRow(tt.images, tt.max)
			if tt.wantNil {
				if got != nil {
					t.Errorf("ConcatRow() = %v, want nil", got.Bounds())
				}
				return
			}
			if got == nil {
				t.Fatal("ConcatRow() = nil, want image")
			}
			b := got.Bounds()
			if b.Dx() != tt.wantWidth {
				t.Errorf("row width = %d, want %d", b.Dx(), tt.wantWidth)
			}
			if b.Dy() != CellSize {
				t.Errorf("row height = %d, want %d", b.Dy(), CellSize)
			}
		})
	}
}

func TestConcatGrid(t *testing.T) {
	if got := ConcatGrid(nil); got != nil {
		t.Errorf("ConcatGrid(nil) = %v, want nil", got.Bounds())
	}

	rows := []image.Image{
		ConcatRow([]image.Image{solid(10, 10, color.White)}, 3),
		ConcatRow([]image.Image{solid(10, 10, color.White), solid(10, 10, color.Black)}, 3),
	}

	grid := ConcatGrid(rows)
	if grid == nil {
		t.Fatal("ConcatGrid() = nil, want image")
	}

	b := grid.Bounds()
	if b.Dx() != 2*CellSize {
		t.Errorf("grid width = %d, want widest row %d", b.Dx(), 2*CellSize)
	}
	if b.Dy() != 2*CellSize {
		t.Errorf("grid height = %d, want stacked rows %d", b.Dy(), 2*CellSize)
	}
}

func TestEncodeJPEG(t *testing.T) {
	data, err := EncodeJPEG(solid(10, 10, color.White))
	if err != nil {
		t.Fatalf("EncodeJPEG() error: %v", err)
	}
	if len(data) == 0 {
		t.Error("EncodeJPEG() returned empty bytes")
	}
	// JPEG magic bytes
	if data[0] != 0xFF || data[1] != 0xD8 {
		t.Errorf("output does not start with JPEG marker: % x", data[:2])
	}
}
