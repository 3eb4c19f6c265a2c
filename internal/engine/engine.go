// Package engine implements the Weather Stack grid engine: a 2048-style
// slide-and-merge puzzle over tile levels 1..WinLevel.
//
// Everything here is deterministic given a Picker. The engine never touches
// the terminal, storage or the clock.
package engine

// Picker picks a uniformly random index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// SequencePicker replays a fixed sequence of picks, wrapping each one into
// range. Once exhausted it always returns 0.
type SequencePicker struct {
	Picks []int
	next  int
}

// Intn returns the next pick modulo n.
func (p *SequencePicker) Intn(n int) int {
	if p.next >= len(p.Picks) {
		return 0
	}
	v := p.Picks[p.next] % n
	p.next++
	if v < 0 {
		v += n
	}
	return v
}

// Used returns how many picks have been consumed.
func (p *SequencePicker) Used() int {
	return p.next
}

// State is a full game state. It is a value type; ApplyMove returns a new
// State rather than mutating its argument.
type State struct {
	Grid     Grid
	Score    int
	GameOver bool
	HasWon   bool

	// WinSignaled makes the win event one-shot per game.
	WinSignaled bool
}

// NewGame returns a fresh state seeded with two level-1 tiles.
func NewGame(rng Picker) State {
	var g Grid
	g = SpawnRandomTile(g, rng)
	g = SpawnRandomTile(g, rng)
	return State{Grid: g}
}

// SpawnRandomTile places a SpawnLevel tile in a uniformly chosen empty cell.
// A full grid is returned unchanged and no pick is consumed.
func SpawnRandomTile(g Grid, rng Picker) Grid {
	empty := EmptyCells(g)
	if len(empty) == 0 {
		return g
	}

	cell := empty[rng.Intn(len(empty))]
	g[cell.Row][cell.Col] = SpawnLevel
	return g
}

// ApplyMove slides the grid in dir. When nothing changes the state is
// returned untouched and moved is false; no pick is consumed. Otherwise a
// tile is spawned, the score is updated, and the win and game-over flags are
// recomputed.
//
// A state that is already over is returned as-is.
func ApplyMove(s State, dir Direction, rng Picker) (State, bool) {
	next, _, moved := applyMove(s, dir, rng)
	return next, moved
}

func applyMove(s State, dir Direction, rng Picker) (State, SlideResult, bool) {
	if s.GameOver {
		return s, SlideResult{}, false
	}

	slid, res := Slide(s.Grid, dir)
	if !res.Moved {
		return s, res, false
	}

	next := s
	next.Grid = SpawnRandomTile(slid, rng)
	next.Score += res.Score

	if res.ReachedWin && !next.WinSignaled {
		next.HasWon = true
		next.WinSignaled = true
	}

	next.GameOver = IsTerminal(next.Grid)
	return next, res, true
}
