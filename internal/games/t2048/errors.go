package t2048

import "errors"

var (
	// ErrNoEmptyCell is returned when a tile is spawned on a full board.
	ErrNoEmptyCell = errors.New("t2048: no empty cell available")

	// ErrMalformedGrid is returned for non-square, undersized or non power-of-two input.
	ErrMalformedGrid = errors.New("t2048: malformed grid")

	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("t2048: coordinate out of bounds")

	// ErrUnknownDirection is returned when a direction name cannot be parsed.
	ErrUnknownDirection = errors.New("t2048: unknown direction")
)
