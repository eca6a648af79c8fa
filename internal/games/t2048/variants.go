// Package t2048 implements the board-state engine of the 2048 sliding-tile puzzle:
// an N×N grid of tiles, directional shifts that slide and merge equal tiles,
// tile spawning, game-over detection and scoring.
package t2048

import "github.com/vovakirdan/tile2048/internal/registry"

// DefaultVariant is the classic 4x4 board.
const DefaultVariant = "2048"

// Variants defines the built-in board presets.
var Variants = []registry.Variant{
	{ID: "2048_mini", Title: "2048 Mini (3x3)", Size: 3},
	{ID: DefaultVariant, Title: "2048 (4x4)", Size: 4},
	{ID: "2048_big", Title: "2048 Big (5x5)", Size: 5},
	{ID: "2048_huge", Title: "2048 Huge (6x6)", Size: 6},
}

func init() {
	for _, v := range Variants {
		registry.Register(v)
	}
}

// VariantForSize returns the built-in variant ID for a board size,
// or "custom" when no preset matches.
func VariantForSize(size int) string {
	for _, v := range Variants {
		if v.Size == size {
			return v.ID
		}
	}
	return "custom"
}
