package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weather2048/internal/core"
	"github.com/vovakirdan/weather2048/internal/engine"
)

var flagReplayVerbose bool

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Replay a move string and print the board",
	Long: `Play a sequence of moves against a seed without a terminal UI and
print the final board as tile levels.

Moves are letters (L, R, U, D) or names separated by spaces or commas.
Use the same --seed to reproduce a game exactly.

Examples:
  weather2048 replay --seed 42 LLURDD
  weather2048 replay --seed 7 "left, up, up, right"
  weather2048 replay --seed 7 -v LURD`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runReplay(os.Stdout, flagSeed, strings.Join(args, " "), flagReplayVerbose)
	},
}

func init() {
	replayCmd.Flags().BoolVarP(&flagReplayVerbose, "verbose", "v", false, "Print the board after every move")
}

// runReplay plays moves on a fresh seeded game and writes the result.
func runReplay(w io.Writer, seed int64, moves string, verbose bool) error {
	if seed == 0 {
		return errors.New("replay: a non-zero --seed is required for a reproducible replay")
	}
	dirs, err := engine.ParseMoves(moves)
	if err != nil {
		return err
	}

	g := engine.New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)

	for i, d := range dirs {
		ev := g.Move(d)
		if verbose {
			grid := g.State().Grid
			fmt.Fprintf(w, "#%d %s moved=%t +%d\n%s\nnext: %s\n\n",
				i+1, d, ev.Moved, ev.ScoreDelta, grid, formatHints(engine.Hints(grid)))
		}
		if ev.Won {
			fmt.Fprintf(w, "rainbow on move %d\n", i+1)
		}
		if ev.GameOver {
			fmt.Fprintf(w, "game over after move %d\n", i+1)
			break
		}
	}

	snap := g.Snapshot()
	fmt.Fprintln(w, snap.Grid)
	fmt.Fprintf(w, "seed %d  moves %d/%d  score %d  top level %d  status %s\n",
		snap.Seed, snap.Moves, len(dirs), snap.Score, snap.MaxLevel, snap.Status)
	return nil
}

func formatHints(dirs []engine.Direction) string {
	if len(dirs) == 0 {
		return "none"
	}
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return strings.Join(names, " ")
}
