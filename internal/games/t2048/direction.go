package t2048

import (
	"fmt"

	"github.com/vovakirdan/tile2048/internal/core"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts direction names, arrow glyphs, WASD and vim keys.
func ParseDirection(s string) (Direction, error) {
	switch core.ActionForKey(s) {
	case core.ActionUp:
		return DirUp, nil
	case core.ActionDown:
		return DirDown, nil
	case core.ActionLeft:
		return DirLeft, nil
	case core.ActionRight:
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
