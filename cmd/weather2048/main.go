// weather2048 is a 2048-style weather merging puzzle for the terminal.
//
// Usage:
//
//	weather2048 play             - Play in this terminal
//	weather2048 serve            - Start SSH server for remote play
//	weather2048 scores           - Show high scores
//	weather2048 themes           - List tile themes
//	weather2048 replay <moves>   - Replay moves headlessly and print the board
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.weather2048, ./configs)
//	--db <path>         - Scores database (default: ~/.weather2048/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--seed <value>      - RNG seed for reproducible games
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/weather2048/internal/config"
	"github.com/vovakirdan/weather2048/internal/registry"
	"github.com/vovakirdan/weather2048/internal/storage"

	// Import themes to register them
	_ "github.com/vovakirdan/weather2048/internal/themes/classic"
	_ "github.com/vovakirdan/weather2048/internal/themes/weather"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagSeed     int64
	flagTheme    string
	flagLocale   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weather2048",
	Short: "Weather Stack - merge clouds into a rainbow",
	Long: `Weather Stack is a 2048-style puzzle on a 4x4 grid. Slide the board,
merge matching weather, and build clouds up through rain, thunderstorms and
typhoons until two typhoons make a rainbow.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  themes   - List tile themes
  replay   - Replay a move string without a terminal

Examples:
  weather2048 play
  weather2048 play --theme classic --locale zh
  weather2048 serve --ssh :2048
  weather2048 replay --seed 42 LLURDD`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.weather2048/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Tile theme (see 'weather2048 themes')")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Label language: en or zh")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if !registry.Exists(cfg.Theme) {
		return cfg, fmt.Errorf("config: unknown theme %q (see 'weather2048 themes')", cfg.Theme)
	}
	return cfg, nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "weather2048",
	})
}

// fileLogger logs to ~/.weather2048/weather2048.log so the alt screen stays
// clean. It falls back to discarding output.
func fileLogger(cfg config.Config) (*log.Logger, func()) {
	dir, err := config.DataDir()
	if err != nil {
		return newLogger(io.Discard, cfg), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "weather2048.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, cfg), func() {}
	}
	return newLogger(f, cfg), func() { f.Close() }
}

// openStore opens the scores database. A failure is logged and play
// continues without persistence.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	path := cfg.DBPath
	if path == "" {
		dir, err := config.DataDir()
		if err != nil {
			logger.Warn("no data directory; scores will not be saved", "err", err)
			return nil
		}
		path = filepath.Join(dir, "scores.db")
	}

	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database; scores will not be saved", "path", path, "err", err)
		return nil
	}
	logger.Debug("opened scores database", "path", path)
	return store
}
