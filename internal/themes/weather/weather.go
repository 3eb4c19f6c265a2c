// Package weather provides the default theme: clouds build into rain,
// storms and typhoons, and two typhoons make a rainbow.
package weather

import "github.com/vovakirdan/weather2048/internal/registry"

func init() {
	registry.Register(Theme{})
}

const ink = "#334155"

var tiles = [...]registry.Tile{
	{Glyph: "", Label: "", BG: "#cbd5e1"},
	{Glyph: "☁️", Label: "Small Cloud", LabelZH: "小云朵", FG: ink, BG: "#ffffff"},
	{Glyph: "☁️☁️", Label: "Big Cloud", LabelZH: "大云朵", FG: ink, BG: "#eff6ff"},
	{Glyph: "🌧️", Label: "Light Rain", LabelZH: "小雨", FG: ink, BG: "#dbeafe"},
	{Glyph: "🌧️🌧️", Label: "Heavy Rain", LabelZH: "大雨", FG: ink, BG: "#bfdbfe"},
	{Glyph: "⛈️", Label: "Thunderstorm", LabelZH: "雷雨", FG: ink, BG: "#e0e7ff"},
	{Glyph: "🌪️", Label: "Tempest", LabelZH: "暴风雨", FG: ink, BG: "#e2e8f0"},
	{Glyph: "🌀", Label: "Typhoon", LabelZH: "台风", FG: ink, BG: "#cffafe"},
	{Glyph: "🌈", Label: "Rainbow", LabelZH: "彩虹", FG: "#ffffff", BG: "#ec4899"},
}

// Theme is the weather tile set.
type Theme struct{}

func (Theme) ID() string    { return "weather" }
func (Theme) Title() string { return "Weather Stack" }

// Tile returns the weather tile for level; unknown levels render as "?".
func (Theme) Tile(level int) registry.Tile {
	if level < 0 || level >= len(tiles) {
		return registry.Tile{Glyph: "?", Label: "Unknown", FG: ink, BG: "#f1f5f9"}
	}
	return tiles[level]
}
