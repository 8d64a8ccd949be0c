// ABOUTME: Composite image assembly for ranked product results
// ABOUTME: Normalizes cells to 256x256 then concatenates rows and grids
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"

	xdraw "golang.org/x/image/draw"
)

// CellSize is the fixed square every source image is normalized to before
// concatenation. Source imagery is heterogeneous; a fixed cell keeps the
// composite dimensions predictable.
const CellSize = 256

// MaxImagesPerRow caps how many images one product contributes to its row
const MaxImagesPerRow = 3

// Resize scales img to the fixed CellSize square
func Resize(img image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, CellSize, CellSize))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// ConcatRow normalizes up to max images and concatenates them into one
// horizontal strip. Returns nil when given no images.
func ConcatRow(images []image.Image, max int) image.Image {
	if len(images) == 0 {
		return nil
	}
	if max > 0 && len(images) > max {
		images = images[:max]
	}

	row := image.NewRGBA(image.Rect(0, 0, CellSize*len(images), CellSize))
	for i, img := range images {
		cell := Resize(img)
		target := image.Rect(i*CellSize, 0, (i+1)*CellSize, CellSize)
		draw.Draw(row, target, cell, image.Point{}, draw.Src)
	}
	return row
}

// ConcatGrid stacks row images vertically into the final composite.
// Rows may have different widths; the canvas takes the widest. Returns
// nil when given no rows.
func ConcatGrid(rows []image.Image) image.Image {
	if len(rows) == 0 {
		return nil
	}

	width, height := 0, 0
	for _, row := range rows {
		if w := row.Bounds().Dx(); w > width {
			width = w
		}
		height += row.Bounds().Dy()
	}

	grid := image.NewRGBA(image.Rect(0, 0, width, height))
	y := 0
	for _, row := range rows {
		b := row.Bounds()
		target := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(grid, target, row, b.Min, draw.Src)
		y += b.Dy()
	}
	return grid
}

// EncodeJPEG renders img as JPEG bytes for delivery
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encoding composite: %w", err)
	}
	return buf.Bytes(), nil
}
