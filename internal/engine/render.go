package engine

import (
	"strconv"

	"github.com/vovakirdan/weather2048/internal/core"
)

const (
	cellWidth  = 4 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
)

// GridTextSize returns the width and height DrawGrid needs.
func GridTextSize() (w, h int) {
	return GridSize*cellWidth + 1, GridSize*cellHeight + 1
}

// DrawGrid draws the grid with box-drawing borders and numeric levels,
// top-left corner at (x, y).
func DrawGrid(dst *core.Screen, x, y int, g Grid) {
	for row := 0; row < GridSize+1; row++ {
		for col := 0; col < GridSize+1; col++ {
			px := x + col*cellWidth
			py := y + row*cellHeight

			var corner rune
			switch {
			case row == 0 && col == 0:
				corner = '┌'
			case row == 0 && col == GridSize:
				corner = '┐'
			case row == GridSize && col == 0:
				corner = '└'
			case row == GridSize && col == GridSize:
				corner = '┘'
			case row == 0:
				corner = '┬'
			case row == GridSize:
				corner = '┴'
			case col == 0:
				corner = '├'
			case col == GridSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if col < GridSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if row < GridSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			val := g[row][col]
			if val == 0 {
				continue
			}
			text := strconv.Itoa(val)
			pad := (cellWidth - 1 - len(text)) / 2
			dst.DrawText(x+col*cellWidth+1+pad, y+row*cellHeight+1, text)
		}
	}
}

// String renders the grid as bordered text.
func (g Grid) String() string {
	w, h := GridTextSize()
	s := core.NewScreen(w, h)
	DrawGrid(s, 0, 0, g)
	return s.String()
}
