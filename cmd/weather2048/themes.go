package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weather2048/internal/engine"
	"github.com/vovakirdan/weather2048/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List tile themes",
	Long:  `Shows every registered tile theme with its tiles from level 1 up.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		locale := flagLocale
		if locale == "" {
			locale = registry.LocaleEN
		}
		printThemes(os.Stdout, locale)
	},
}

func printThemes(w io.Writer, locale string) {
	themes := registry.List()
	if len(themes) == 0 {
		fmt.Fprintln(w, "No themes available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		maxIDLen = max(maxIDLen, len(t.ID))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, info := range themes {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, info.ID, info.Title)

		t, err := registry.Get(info.ID)
		if err != nil {
			continue
		}
		tiles := make([]string, 0, engine.WinLevel)
		for level := 1; level <= engine.WinLevel; level++ {
			tile := t.Tile(level)
			tiles = append(tiles, fmt.Sprintf("%d:%s %s", level, tile.Glyph, tile.Name(locale)))
		}
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "", strings.Join(tiles, " | "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'weather2048 play --theme <id>' to use a theme.")
}
