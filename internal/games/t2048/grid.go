package t2048

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// MinSize is the smallest supported board dimension.
const MinSize = 2

// MaxTileValue is the largest tile a board can hold. Doubling it would overflow int,
// so two tiles at this value slide past each other without merging.
const MaxTileValue = 1 << (bits.UintSize - 2)

// Coord addresses a cell. X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// Grid is a size×size board of cells stored row-major: index = y*size + x.
// A Grid is owned by one caller and is not safe for concurrent use.
type Grid struct {
	size  int
	cells []Cell
	rng   Source

	// Per-line scratch buffers reused by every shift.
	work   []int
	before []int
	out    []Cell
}

// NewGrid creates an empty size×size grid and spawns the two starting tiles.
// A nil src uses a time-seeded source.
func NewGrid(size int, src Source) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: size %d is below %d", ErrMalformedGrid, size, MinSize)
	}

	g := newGrid(size, src)
	for i := 0; i < 2; i++ {
		if _, err := g.SpawnNewTile(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FromValues loads an exact snapshot. Values are copied verbatim with no
// annotation, and no merge or spawn runs. A nil src uses a time-seeded source.
func FromValues(values [][]int, src Source) (*Grid, error) {
	size := len(values)
	if size < MinSize {
		return nil, fmt.Errorf("%w: size %d is below %d", ErrMalformedGrid, size, MinSize)
	}
	for y, row := range values {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), size)
		}
		for x, v := range row {
			if !isTileValue(v) {
				return nil, fmt.Errorf("%w: value %d at row %d col %d", ErrMalformedGrid, v, y, x)
			}
		}
	}

	g := newGrid(size, src)
	for y, row := range values {
		for x, v := range row {
			g.cells[g.index(Coord{X: x, Y: y})] = NewCell(v)
		}
	}
	return g, nil
}

func newGrid(size int, src Source) *Grid {
	if src == nil {
		src = NewSource(0)
	}
	return &Grid{
		size:   size,
		cells:  make([]Cell, size*size),
		rng:    src,
		work:   make([]int, size),
		before: make([]int, size),
		out:    make([]Cell, size),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.size + c.X
}

// Size returns the board dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the coordinate is on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// At returns the cell at c.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, c.X, c.Y, g.size, g.size)
	}
	return g.cells[g.index(c)], nil
}

// Values returns a copy of the tile values as rows.
func (g *Grid) Values() [][]int {
	rows := make([][]int, g.size)
	for y := 0; y < g.size; y++ {
		rows[y] = make([]int, g.size)
		for x := 0; x < g.size; x++ {
			rows[y][x] = g.cells[g.index(Coord{X: x, Y: y})].value
		}
	}
	return rows
}

// HasEmptyCell returns true if any cell is empty.
func (g *Grid) HasEmptyCell() bool {
	for _, c := range g.cells {
		if c.value == 0 {
			return true
		}
	}
	return false
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Coord {
	var cells []Coord
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c := Coord{X: x, Y: y}
			if g.cells[g.index(c)].value == 0 {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// HasAvailableMoves returns true if any cell equals its right or bottom neighbour.
// Equal empty neighbours count as well.
func (g *Grid) HasAvailableMoves() bool {
	last := g.size - 1
	for y := 0; y < last; y++ {
		for x := 0; x < last; x++ {
			v := g.valueAt(x, y)
			if v == g.valueAt(x+1, y) || v == g.valueAt(x, y+1) {
				return true
			}
		}
	}

	// Bottom row only has right neighbours.
	for x := 0; x < last; x++ {
		if g.valueAt(x, last) == g.valueAt(x+1, last) {
			return true
		}
	}

	return false
}

// IsGameOver returns true if the board is full and no neighbours are equal.
func (g *Grid) IsGameOver() bool {
	return !g.HasEmptyCell() && !g.HasAvailableMoves()
}

func (g *Grid) valueAt(x, y int) int {
	return g.cells[y*g.size+x].value
}

// SpawnNewTile places a 2 (7 in 8) or a 4 (1 in 8) on an empty cell and marks it spawned.
//
// The cell is drawn from the first len(empty)-1 empty cells in row-major order, so
// the last empty cell is never picked while another one exists.
func (g *Grid) SpawnNewTile() (Coord, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Coord{}, ErrNoEmptyCell
	}

	value := 2
	if g.rng.Intn(8) > 6 {
		value = 4
	}

	pick := 0
	if n := len(empty) - 1; n > 0 {
		pick = g.rng.Intn(n)
	}

	c := empty[pick]
	cell := &g.cells[g.index(c)]
	cell.SetValue(value)
	cell.Annotate(AnnotationSpawned)
	return c, nil
}

// ShiftUp slides all tiles up and merges. Returns whether any value changed.
func (g *Grid) ShiftUp() bool {
	return g.shift(orientations[DirUp])
}

// ShiftDown slides all tiles down and merges.
func (g *Grid) ShiftDown() bool {
	return g.shift(orientations[DirDown])
}

// ShiftLeft slides all tiles left and merges.
func (g *Grid) ShiftLeft() bool {
	return g.shift(orientations[DirLeft])
}

// ShiftRight slides all tiles right and merges.
func (g *Grid) ShiftRight() bool {
	return g.shift(orientations[DirRight])
}

// Shift performs a move in the given direction.
// Unknown directions leave the board untouched and report no change.
func (g *Grid) Shift(dir Direction) bool {
	o, ok := orientations[dir]
	if !ok {
		return false
	}
	return g.shift(o)
}

// shift runs shiftLine over every line of the orientation and writes the result
// back, replacing annotations. It reports whether any value differs from before.
func (g *Grid) shift(o orientation) bool {
	changed := false

	for line := 0; line < g.size; line++ {
		for pos := 0; pos < g.size; pos++ {
			v := g.cells[g.index(o.coord(g.size, line, pos))].value
			g.work[pos] = v
			g.before[pos] = v
		}

		shiftLine(g.work, g.out)

		for pos := 0; pos < g.size; pos++ {
			if g.before[pos] != g.out[pos].value {
				changed = true
			}
			g.cells[g.index(o.coord(g.size, line, pos))] = g.out[pos]
		}
	}

	return changed
}

// Score returns the sum of value*log2(value) over all tiles.
func (g *Grid) Score() int {
	score := 0
	for _, c := range g.cells {
		if c.value == 0 {
			continue
		}
		score += c.value * int(math.Log2(float64(c.value)))
	}
	return score
}

// MaxTile returns the highest tile value on the board.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, c := range g.cells {
		if c.value > maxVal {
			maxVal = c.value
		}
	}
	return maxVal
}

// String renders the values as space-separated rows.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(g.valueAt(x, y)))
		}
	}
	return sb.String()
}
