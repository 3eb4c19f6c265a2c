package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/weather2048/internal/core"
)

// MoveEvent reports what a single move did.
type MoveEvent struct {
	Direction  Direction
	Moved      bool // Grid changed; a tile was spawned
	ScoreDelta int  // Points gained by this move
	Merges     int  // Merges performed by this move
	Won        bool // The one-shot win fired on this move
	GameOver   bool // The move left the grid terminal
}

// Game owns one running State together with its random source and a log of
// applied moves.
type Game struct {
	rng     *rand.Rand
	seed    int64
	state   State
	moves   uint64
	history []Direction
}

// New creates a game. Call Reset before the first move.
func New() *Game {
	return &Game{}
}

// Reset starts a new game seeded from cfg.Seed (time-based when zero).
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.moves = 0
	g.history = g.history[:0]
	g.state = NewGame(g.rng)
}

// Seed returns the seed used by the last Reset.
func (g *Game) Seed() int64 {
	return g.seed
}

// Move applies a move in the given direction.
func (g *Game) Move(dir Direction) MoveEvent {
	wasWon := g.state.HasWon

	next, res, moved := applyMove(g.state, dir, g.rng)
	ev := MoveEvent{Direction: dir, Moved: moved}
	if !moved {
		return ev
	}

	g.state = next
	g.moves++
	g.history = append(g.history, dir)

	ev.ScoreDelta = res.Score
	ev.Merges = res.Merges
	ev.Won = next.HasWon && !wasWon
	ev.GameOver = next.GameOver
	return ev
}

// Step applies the first directional action in the frame, if any.
func (g *Game) Step(in core.InputFrame) (MoveEvent, bool) {
	a, ok := in.Move()
	if !ok {
		return MoveEvent{}, false
	}
	dir, _ := ActionDirection(a)
	return g.Move(dir), true
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state
}

// Moves returns the number of moves that changed the grid.
func (g *Game) Moves() uint64 {
	return g.moves
}

// History returns the applied moves in order.
func (g *Game) History() []Direction {
	out := make([]Direction, len(g.history))
	copy(out, g.history)
	return out
}

// ActionDirection maps a directional action to a Direction.
func ActionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	default:
		return Left, false
	}
}
