package engine

import (
	"fmt"
	"strings"
)

// GridSize is the board dimension.
const GridSize = 4

// WinLevel is the highest tile level. Reaching it wins the game, and tiles
// at this level never merge again.
const WinLevel = 8

// SpawnLevel is the level of every newly spawned tile.
const SpawnLevel = 1

// Grid is a GridSize x GridSize board of tile levels. Zero means empty.
type Grid [GridSize][GridSize]int

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists every direction in rotation order.
var Directions = []Direction{Left, Up, Right, Down}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// rotations returns how many counter-clockwise quarter turns bring d onto Left.
func (d Direction) rotations() int {
	return int(d) % 4
}

// ParseDirection parses a direction name or its first letter (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return Left, nil
	case "u", "up":
		return Up, nil
	case "r", "right":
		return Right, nil
	case "d", "down":
		return Down, nil
	}
	return Left, fmt.Errorf("engine: unknown direction %q", s)
}

// ParseMoves parses a compact move string such as "LLUR" or a list separated
// by spaces or commas ("left, up").
func ParseMoves(s string) ([]Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) == 1 && len(fields[0]) > 1 {
		if _, err := ParseDirection(fields[0]); err != nil {
			// Compact form: one letter per move.
			fields = strings.Split(fields[0], "")
		}
	}

	dirs := make([]Direction, 0, len(fields))
	for _, f := range fields {
		d, err := ParseDirection(f)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// FormatMoves writes moves in the compact form ParseMoves reads back.
func FormatMoves(dirs []Direction) string {
	var b strings.Builder
	for _, d := range dirs {
		b.WriteString(strings.ToUpper(d.String()[:1]))
	}
	return b.String()
}

// SlideResult describes the outcome of sliding a grid in one direction.
type SlideResult struct {
	Score      int  // Points awarded by merges
	Merges     int  // Number of merges performed
	ReachedWin bool // A merge produced a WinLevel tile
	Moved      bool // At least one cell changed
}

// Rotate turns the grid a quarter turn counter-clockwise.
// Four rotations return the original grid.
func Rotate(g Grid) Grid {
	var out Grid
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			out[GridSize-1-c][r] = g[r][c]
		}
	}
	return out
}

// rotateN applies n counter-clockwise quarter turns.
func rotateN(g Grid, n int) Grid {
	for _i := 0; _i < n%4; _i++ {
		g = Rotate(g)
	}
	return g
}

// slideRow compacts a row to the left and merges equal neighbours in a single
// pass. A tile produced by a merge is not merged again in the same pass.
func slideRow(row [GridSize]int) (result [GridSize]int, res SlideResult) {
	writePos := 0
	justMerged := false

	for _, v := range row {
		if v == 0 {
			continue
		}

		if writePos > 0 && !justMerged && result[writePos-1] == v && v < WinLevel {
			next := v + 1
			result[writePos-1] = next
			res.Score += next * next * 10
			res.Merges++
			if next == WinLevel {
				res.ReachedWin = true
			}
			justMerged = true
			continue
		}

		result[writePos] = v
		writePos++
		justMerged = false
	}

	res.Moved = result != row
	return result, res
}

// slideLeft applies slideRow to every row.
func slideLeft(g Grid) (Grid, SlideResult) {
	var out Grid
	var total SlideResult

	for r := 0; r < GridSize; r++ {
		row, res := slideRow(g[r])
		out[r] = row
		total.Score += res.Score
		total.Merges += res.Merges
		total.ReachedWin = total.ReachedWin || res.ReachedWin
		total.Moved = total.Moved || res.Moved
	}

	return out, total
}

// Slide moves every tile in the given direction and merges equal pairs.
// It does not spawn a tile. All directions share the left-slide routine by
// rotating the grid first and rotating the result back.
func Slide(g Grid, dir Direction) (Grid, SlideResult) {
	k := dir.rotations()
	slid, res := slideLeft(rotateN(g, k))
	return rotateN(slid, (4-k)%4), res
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []struct{ Row, Col int } {
	var cells []struct{ Row, Col int }
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] == 0 {
				cells = append(cells, struct{ Row, Col int }{r, c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if two orthogonal neighbours share a level
// below WinLevel. WinLevel cells are skipped entirely.
func HasPossibleMerge(g Grid) bool {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			val := g[r][c]
			if val == WinLevel {
				continue
			}
			if r < GridSize-1 && g[r+1][c] == val {
				return true
			}
			if c < GridSize-1 && g[r][c+1] == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true if the grid is full and no merge is available.
func IsTerminal(g Grid) bool {
	return !HasEmptyCell(g) && !HasPossibleMerge(g)
}

// Hints returns the directions that would change g, in rotation order.
func Hints(g Grid) []Direction {
	var out []Direction
	for _, d := range Directions {
		if _, res := Slide(g, d); res.Moved {
			out = append(out, d)
		}
	}
	return out
}

// MaxLevel returns the highest level on the grid.
func MaxLevel(g Grid) int {
	maxVal := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// Valid reports whether every cell is within [0, WinLevel].
func (g Grid) Valid() bool {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] < 0 || g[r][c] > WinLevel {
				return false
			}
		}
	}
	return true
}
