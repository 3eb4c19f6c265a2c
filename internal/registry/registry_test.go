package registry

import "testing"

type stubTheme struct{ id string }

func (s stubTheme) ID() string    { return s.id }
func (s stubTheme) Title() string { return "Stub " + s.id }
func (s stubTheme) Tile(level int) Tile {
	return Tile{Glyph: "x", Label: "stub"}
}

func TestRegisterAndGet(t *testing.T) {
	Register(stubTheme{id: "zz-stub"})

	th, err := Get("zz-stub")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if th.Title() != "Stub zz-stub" {
		t.Errorf("Title() = %q", th.Title())
	}
	if !Exists("zz-stub") {
		t.Error("Exists should report registered theme")
	}

	list := List()
	if len(list) == 0 || list[len(list)-1].ID != "zz-stub" {
		t.Errorf("List() should be sorted with zz-stub last, got %v", list)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-theme"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(stubTheme{id: "dup-stub"})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(stubTheme{id: "dup-stub"})
}

func TestTileName(t *testing.T) {
	tile := Tile{Label: "Rainbow", LabelZH: "彩虹"}
	if got := tile.Name(LocaleZH); got != "彩虹" {
		t.Errorf("Name(zh) = %q", got)
	}
	if got := tile.Name(LocaleEN); got != "Rainbow" {
		t.Errorf("Name(en) = %q", got)
	}
	if got := (Tile{Label: "Cloud"}).Name(LocaleZH); got != "Cloud" {
		t.Errorf("Name(zh) without LabelZH = %q, want fallback", got)
	}
}
