package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/weather2048/internal/engine"
	"github.com/vovakirdan/weather2048/internal/platform/tui"
	"github.com/vovakirdan/weather2048/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresAll    bool
	flagScoresPlayer string
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top recorded games and the best score.

Examples:
  weather2048 scores
  weather2048 scores --limit 20
  weather2048 scores --all
  weather2048 scores --player alice
  weather2048 scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded game")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show games by this SSH user")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history (best scores are kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg)

	store := openStore(cfg, logger)
	if store == nil {
		return errors.New("scores: database unavailable")
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if flagScoresClear {
		if err := store.ClearScores(ctx); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	bestKey := cfg.BestScoreKey
	if flagScoresPlayer != "" {
		bestKey = storage.PlayerBestKey(flagScoresPlayer)
	}
	limit := flagScoresLimit
	if flagScoresAll {
		limit = 0
	}
	return printScores(ctx, os.Stdout, store, flagScoresPlayer, bestKey, limit)
}

// printScores lists the top limit games, or every game when limit is not
// positive.
func printScores(ctx context.Context, w io.Writer, store *storage.Store, player, bestKey string, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if limit > 0 {
		scores, err = store.TopScores(ctx, player, limit)
	} else {
		scores, err = store.AllScores(ctx, player)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Weather Stack")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'weather2048 play' to set the first high score!")
	} else {
		fmt.Fprintf(w, "  %-4s  %-8s  %-3s  %-5s  %-10s  %s\n", "Rank", "Score", "Top", "Moves", "Player", "Date")
		fmt.Fprintf(w, "  %-4s  %-8s  %-3s  %-5s  %-10s  %s\n", "----", "-----", "---", "-----", "------", "----")
		for i, e := range scores {
			p := e.Player
			if p == "" {
				p = "local"
			}
			fmt.Fprintf(w, "  %-4d  %-8d  %-3d  %-5d  %-10s  %s\n",
				i+1, e.Score, e.MaxLevel, e.Moves, p, e.CreatedAt.Format("2006-01-02 15:04"))
		}

		stats, err := store.GetGameStats(ctx, player, engine.WinLevel)
		if err == nil {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Games: %d  Average: %.0f  Rainbows: %d\n", stats.GamesCount, stats.AvgScore, stats.Rainbows)
		}
	}

	best, err := store.BestScore(ctx, bestKey)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}
