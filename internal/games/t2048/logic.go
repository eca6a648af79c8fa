package t2048

// orientation maps "position k of line i, counted from the edge tiles move toward"
// onto grid coordinates. Every direction is one orientation around shiftLine.
type orientation struct {
	columns  bool // lines are columns instead of rows
	reversed bool // lines are read from the far edge
}

var orientations = map[Direction]orientation{
	DirLeft:  {columns: false, reversed: false},
	DirRight: {columns: false, reversed: true},
	DirUp:    {columns: true, reversed: false},
	DirDown:  {columns: true, reversed: true},
}

// coord returns the grid coordinate of position pos in line.
func (o orientation) coord(size, line, pos int) Coord {
	if o.reversed {
		pos = size - 1 - pos
	}
	if o.columns {
		return Coord{X: line, Y: pos}
	}
	return Coord{X: pos, Y: line}
}

// shiftLine compacts items toward index 0 into result.
//
// A non-zero tile looks past zeros for the next tile. An equal partner merges into
// one tile of double value annotated merged, and the partner is zeroed in items so
// it cannot merge again this pass. Tiles at MaxTileValue never merge. Otherwise the
// tile moves unchanged. Trailing result slots are left empty. items is used as
// scratch and is modified.
func shiftLine(items []int, result []Cell) {
	for k := range result {
		result[k] = Cell{}
	}

	n := len(items)
	out := 0
	for i := 0; i < n; i++ {
		if items[i] == 0 {
			continue
		}

		next := 0
		j := i
		for next == 0 {
			j++
			if j == n {
				break
			}
			next = items[j]
		}

		if items[i] == next && items[i] < MaxTileValue {
			result[out].SetValue(items[i] * 2)
			result[out].Annotate(AnnotationMerged)
			items[j] = 0
		} else {
			result[out].SetValue(items[i])
		}

		// Resume at the partner (or next tile); positions in between are spent.
		i = j - 1
		out++
	}
}

// isTileValue reports whether v is a legal cell value: 0 or a power of two
// between 2 and MaxTileValue.
func isTileValue(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v <= MaxTileValue && v&(v-1) == 0
}
