package engine

// Status summarises where a game is in its lifecycle.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusWon      Status = "won"
	StatusGameOver Status = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Seed     int64
	Moves    uint64
	Score    int
	Grid     Grid
	MaxLevel int
	Status   Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.state.GameOver:
		status = StatusGameOver
	case g.state.HasWon:
		status = StatusWon
	}

	return Snapshot{
		Seed:     g.seed,
		Moves:    g.moves,
		Score:    g.state.Score,
		Grid:     g.state.Grid,
		MaxLevel: MaxLevel(g.state.Grid),
		Status:   status,
	}
}
