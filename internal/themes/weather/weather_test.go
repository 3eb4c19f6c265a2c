package weather

import (
	"testing"

	"github.com/vovakirdan/weather2048/internal/engine"
	"github.com/vovakirdan/weather2048/internal/registry"
)

func TestEveryLevelHasATile(t *testing.T) {
	th := Theme{}
	seen := make(map[string]int)

	for level := 1; level <= engine.WinLevel; level++ {
		tile := th.Tile(level)
		if tile.Glyph == "" || tile.Label == "" || tile.LabelZH == "" {
			t.Errorf("level %d has an incomplete tile: %+v", level, tile)
		}
		if prev, dup := seen[tile.Glyph]; dup {
			t.Errorf("levels %d and %d share glyph %q", prev, level, tile.Glyph)
		}
		seen[tile.Glyph] = level
	}

	if got := th.Tile(engine.WinLevel).Name(registry.LocaleZH); got != "彩虹" {
		t.Errorf("win tile zh name = %q", got)
	}
}

func TestOutOfRange(t *testing.T) {
	if got := (Theme{}).Tile(99).Glyph; got != "?" {
		t.Errorf("Tile(99).Glyph = %q, want ?", got)
	}
	if got := (Theme{}).Tile(0).Glyph; got != "" {
		t.Errorf("empty cell glyph = %q", got)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("weather") {
		t.Error("weather theme should register itself")
	}
}
