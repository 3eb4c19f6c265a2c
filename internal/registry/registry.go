// Package registry provides a global registry for tile themes.
// Themes register themselves in init() functions, so the shell can offer them
// by ID without importing each one directly.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Locales understood by Tile.Name.
const (
	LocaleEN = "en"
	LocaleZH = "zh"
)

// Tile is how a theme draws one level.
type Tile struct {
	Glyph   string // Short symbol shown in the cell (may be double-width)
	Label   string // English name
	LabelZH string // Chinese name; falls back to Label when empty
	FG      string // Foreground color (ANSI index or #hex)
	BG      string // Background color (ANSI index or #hex)
}

// Name returns the label for the given locale.
func (t Tile) Name(locale string) string {
	if locale == LocaleZH && t.LabelZH != "" {
		return t.LabelZH
	}
	return t.Label
}

// Theme maps tile levels to their on-screen look. Level 0 is the empty cell.
type Theme interface {
	// ID returns a unique identifier used in config and on the command line.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Tile returns the look of a level. Levels outside the theme's range
	// get a neutral fallback tile.
	Tile(level int) Tile
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "weather"

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID()]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", t.ID()))
	}
	themes[t.ID()] = t
}

// List returns all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(themes))
	for id, t := range themes {
		result = append(result, ThemeInfo{ID: id, Title: t.Title()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the theme with the given ID.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
