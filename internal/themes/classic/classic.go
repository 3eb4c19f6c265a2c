// Package classic renders levels as the familiar powers of two.
package classic

import (
	"strconv"

	"github.com/vovakirdan/weather2048/internal/registry"
)

func init() {
	registry.Register(Theme{})
}

var backgrounds = [...]string{
	"#cdc1b4", "#eee4da", "#ede0c8", "#f2b179", "#f59563",
	"#f67c5f", "#f65e3b", "#edcf72", "#edc22e",
}

// Theme is the numeric tile set.
type Theme struct{}

func (Theme) ID() string    { return "classic" }
func (Theme) Title() string { return "Classic 2048" }

// Tile shows level n as 2^n.
func (Theme) Tile(level int) registry.Tile {
	if level <= 0 {
		return registry.Tile{BG: backgrounds[0]}
	}

	n := strconv.Itoa(1 << level)
	bg := backgrounds[len(backgrounds)-1]
	if level < len(backgrounds) {
		bg = backgrounds[level]
	}
	fg := "#776e65"
	if level >= 3 {
		fg = "#f9f6f2"
	}
	return registry.Tile{Glyph: n, Label: n, FG: fg, BG: bg}
}
