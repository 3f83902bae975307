package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// CropImage creates a sub-image from the source image.
// This is a convenience wrapper around SubImage.
//
// Parameters:
//   - src: The source image to crop
//   - rect: The rectangle region to extract
//
// Returns:
//   - A new ebiten.Image containing only the cropped region
func CropImage(src *ebiten.Image, rect image.Rectangle) *ebiten.Image {
	if src == nil {
		return nil
	}

	// Clamp rect to the source bounds
	rect = rect.Intersect(src.Bounds())

	return src.SubImage(rect).(*ebiten.Image)
}

// SliceTileset cuts a tileset image into size x size cells in row-major order.
// Partial cells at the right and bottom edges are dropped, the same way
// Tiled numbers a tileset whose dimensions are not a multiple of the cell size.
//
// Returns nil if src is nil or size is not positive.
//
// Usage Example:
//
//	tileset, _ := rm.LoadImage("world/terrain/terrain_tiles.png")
//	cells := utils.SliceTileset(tileset, 64)
//	tile := scenery.NewStaticTile(64, x, y, cells[index])
func SliceTileset(src *ebiten.Image, size int) []*ebiten.Image {
	if src == nil || size <= 0 {
		return nil
	}

	bounds := src.Bounds()
	cols := bounds.Dx() / size
	rows := bounds.Dy() / size

	cells := make([]*ebiten.Image, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := bounds.Min.X + c*size
			y := bounds.Min.Y + r*size
			cells = append(cells, CropImage(src, image.Rect(x, y, x+size, y+size)))
		}
	}
	return cells
}
