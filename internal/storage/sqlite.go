// Package storage provides SQLite-based persistence for finished games and
// the best score. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// BestScoreKey is the settings key holding the local player's best score.
const BestScoreKey = "best-score"

// PlayerBestKey returns the best-score key for a named player (SSH users).
func PlayerBestKey(player string) string {
	if player == "" {
		return BestScoreKey
	}
	return BestScoreKey + ":" + player
}

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameResult describes a finished game to be recorded.
type GameResult struct {
	Player   string
	Score    int
	MaxLevel int
	Moves    int
}

// ScoreEntry represents a single recorded game.
type ScoreEntry struct {
	ID        int64
	GameUUID  string
	Player    string
	Score     int
	MaxLevel  int
	Moves     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The path ":memory:" opens a private in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		// Expand ~ to home directory
		if dbPath != "" && dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_uuid TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			max_level INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BestScore returns the stored best score for key, or 0 if none is stored.
func (s *Store) BestScore(ctx context.Context, key string) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best score %q: %w", key, err)
	}
	return v, nil
}

// SetBestScore stores v under key unless a higher value is already stored.
func (s *Store) SetBestScore(ctx context.Context, key string, v int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = MAX(value, excluded.value)`,
		key, v,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write best score %q: %w", key, err)
	}
	return nil
}

// SaveScore records a finished game and returns its generated game id.
func (s *Store) SaveScore(ctx context.Context, r GameResult) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (game_uuid, player, score, max_level, moves) VALUES (?, ?, ?, ?, ?)",
		id, r.Player, r.Score, r.MaxLevel, r.Moves,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return id, nil
}

const scoreColumns = "id, game_uuid, player, score, max_level, moves, created_at"

// TopScores retrieves the top N scores, ordered by score descending.
// An empty player matches every player.
func (s *Store) TopScores(ctx context.Context, player string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+scoreColumns+`
		 FROM scores
		 WHERE (? = '' OR player = ?)
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// AllScores retrieves every recorded game, best first.
func (s *Store) AllScores(ctx context.Context, player string) ([]ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+scoreColumns+`
		 FROM scores
		 WHERE (? = '' OR player = ?)
		 ORDER BY score DESC, id ASC`,
		player, player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameUUID, &e.Player, &e.Score, &e.MaxLevel, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearScores deletes the score history. Best scores are kept.
func (s *Store) ClearScores(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics over recorded games.
type GameStats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Rainbows   int // Games that reached the top level
	LastPlayed time.Time
}

// GetGameStats aggregates the score history. winLevel is the level counted
// as a rainbow.
func (s *Store) GetGameStats(ctx context.Context, player string, winLevel int) (*GameStats, error) {
	stats := &GameStats{}

	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(CASE WHEN max_level >= ? THEN 1 ELSE 0 END), 0), MAX(created_at)
		 FROM scores WHERE (? = '' OR player = ?)`,
		winLevel, player, player,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.Rainbows, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and SQLite's text datetime format.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
