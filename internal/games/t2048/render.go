package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tile2048/internal/core"
)

const (
	minCellWidth = 5 // Width of each cell (including left border)
	cellHeight   = 2 // Height of each cell (including top border)
	hudHeight    = 3 // Framed HUD line
	hudPadding   = 4 // Frame plus one space each side
)

// annotationColors maps cell annotations to tile colours.
var annotationColors = map[Annotation]core.Color{
	AnnotationNone:    core.ColorDefault,
	AnnotationSpawned: core.ColorGreen,
	AnnotationMerged:  core.ColorYellow,
}

// cellWidthFor sizes cells so the widest tile keeps one space of padding.
func cellWidthFor(g *Grid) int {
	return core.Max(minCellWidth, len(strconv.Itoa(g.MaxTile()))+3)
}

// BoardDimensions returns the screen area the bordered board occupies.
func BoardDimensions(g *Grid) (w, h int) {
	return g.Size()*cellWidthFor(g) + 1, g.Size()*cellHeight + 1
}

// ScreenDimensions returns the screen size needed by Session.Render.
func ScreenDimensions(s *Session) (w, h int) {
	_, bh := BoardDimensions(s.grid)
	return hudRect(s).W, bh + hudHeight + 1
}

// hudRect is the frame around the HUD line. It spans the board or the text,
// whichever is wider.
func hudRect(s *Session) core.Rect {
	bw, _ := BoardDimensions(s.grid)
	return core.NewRect(0, 0, core.Max(bw, len(hudLine(s))+hudPadding), hudHeight)
}

// RenderGrid draws the bordered board with its top-left corner at (boardX, boardY).
// Tiles are coloured by annotation.
func RenderGrid(g *Grid, dst *core.Screen, boardX, boardY int) {
	size := g.Size()
	cellWidth := cellWidthFor(g)

	for y := 0; y < size+1; y++ {
		for x := 0; x < size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := g.cells[g.index(Coord{X: x, Y: y})]
			if cell.IsEmpty() {
				continue
			}

			valStr := strconv.Itoa(cell.Value())
			padLeft := core.Max(0, (cellWidth-1-len(valStr))/2)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, annotationColors[cell.Annotation()])
		}
	}
}

// Render draws the HUD and board for the session. The screen should be at least
// ScreenDimensions in size; anything beyond it is clipped.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	hud := hudRect(s)
	dst.DrawBox(hud)
	dst.DrawTextColored(hud.X+hudPadding/2, hud.Y+1, hudLine(s), core.ColorCyan)
	RenderGrid(s.grid, dst, 0, hud.Bottom())

	_, bh := BoardDimensions(s.grid)
	footY := hudHeight + bh
	if s.gameOver {
		dst.DrawTextColored(0, footY, "GAME OVER", core.ColorMagenta)
		return
	}
	dst.DrawText(0, footY, fmt.Sprintf("Moves: %d", s.moves))
}

func hudLine(s *Session) string {
	return fmt.Sprintf("%s  Score: %d  Max: %d", s.variant, s.grid.Score(), s.grid.MaxTile())
}
