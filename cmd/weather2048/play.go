package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/weather2048/internal/platform/tui"
	"github.com/vovakirdan/weather2048/internal/registry"
	"github.com/vovakirdan/weather2048/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/hjkl  - Slide the board
  Mouse drag        - Swipe
  R/N               - New game
  Tab               - High scores
  ?                 - Show all keys
  Ctrl+S            - Save a plain-text board screenshot
  Q/Esc/Ctrl+C      - Quit

Examples:
  weather2048 play
  weather2048 play --seed 42
  weather2048 play --theme classic`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	theme, err := registry.Get(cfg.Theme)
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger(cfg)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := session.Options{
		Key:    cfg.BestScoreKey,
		Seed:   flagSeed,
		Logger: logger,
	}
	if store != nil {
		opts.Store = store
		opts.Recorder = store
	}

	return tui.Run(tui.Options{
		Session: session.New(opts),
		Theme:   theme,
		Locale:  cfg.Locale,
		Swipe:   cfg.Swipe,
		Notice:  cfg.NoticeDuration(),
		Store:   store,
		Logger:  logger,
		Width:   width,
		Height:  height,
	})
}
