package classic

import "testing"

func TestTileValues(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, ""},
		{1, "2"},
		{2, "4"},
		{7, "128"},
		{8, "256"},
		{11, "2048"},
	}

	for _, tt := range tests {
		if got := (Theme{}).Tile(tt.level).Glyph; got != tt.want {
			t.Errorf("Tile(%d).Glyph = %q, want %q", tt.level, got, tt.want)
		}
	}
}
