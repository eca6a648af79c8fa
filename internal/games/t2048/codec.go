package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// Board text format: rows separated by '/', cells by ','.
// A 2x2 board with one tile reads "2,0/0,0".
const (
	rowSep  = "/"
	cellSep = ","
)

// FormatBoard encodes rows of values in board text format.
func FormatBoard(values [][]int) string {
	rows := make([]string, len(values))
	for y, row := range values {
		cells := make([]string, len(row))
		for x, v := range row {
			cells[x] = strconv.Itoa(v)
		}
		rows[y] = strings.Join(cells, cellSep)
	}
	return strings.Join(rows, rowSep)
}

// ParseBoard decodes board text format. Whitespace around cells is ignored.
// Only the text shape is checked here; FromValues validates the values.
func ParseBoard(s string) ([][]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty board", ErrMalformedGrid)
	}

	rows := strings.Split(s, rowSep)
	values := make([][]int, len(rows))
	for y, row := range rows {
		cells := strings.Split(row, cellSep)
		values[y] = make([]int, len(cells))
		for x, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q is not a number", ErrMalformedGrid, y, x, cell)
			}
			values[y][x] = v
		}
	}
	return values, nil
}
