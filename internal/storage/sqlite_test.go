package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its parent directory")
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SetBestScore(ctx, BestScoreKey, 10))
	best, err := store.BestScore(ctx, BestScoreKey)
	require.NoError(t, err)
	assert.Equal(t, 10, best)
}

func TestBestScoreMissingIsZero(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestScore(context.Background(), BestScoreKey)
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestSetBestScoreIsMonotonic(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	require.NoError(t, store.SetBestScore(ctx, BestScoreKey, 400))
	require.NoError(t, store.SetBestScore(ctx, BestScoreKey, 120))

	best, err := store.BestScore(ctx, BestScoreKey)
	require.NoError(t, err)
	assert.Equal(t, 400, best, "lower write must not replace a higher best")

	require.NoError(t, store.SetBestScore(ctx, BestScoreKey, 900))
	best, err = store.BestScore(ctx, BestScoreKey)
	require.NoError(t, err)
	assert.Equal(t, 900, best)
}

func TestBestScoreKeysAreIndependent(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	require.NoError(t, store.SetBestScore(ctx, PlayerBestKey("alice"), 50))
	require.NoError(t, store.SetBestScore(ctx, PlayerBestKey("bob"), 70))

	alice, err := store.BestScore(ctx, "best-score:alice")
	require.NoError(t, err)
	local, err := store.BestScore(ctx, BestScoreKey)
	require.NoError(t, err)

	assert.Equal(t, 50, alice)
	assert.Equal(t, 0, local)
	assert.Equal(t, BestScoreKey, PlayerBestKey(""))
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	results := []GameResult{
		{Player: "alice", Score: 100, MaxLevel: 4, Moves: 30},
		{Player: "alice", Score: 50, MaxLevel: 3, Moves: 12},
		{Player: "alice", Score: 200, MaxLevel: 5, Moves: 44},
		{Player: "bob", Score: 500, MaxLevel: 8, Moves: 90},
	}
	for _, r := range results {
		id, err := store.SaveScore(ctx, r)
		require.NoError(t, err)
		_, err = uuid.Parse(id)
		assert.NoError(t, err, "game id should be a uuid")
	}

	scores, err := store.TopScores(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.Equal(t, 5, scores[0].MaxLevel)
	assert.Equal(t, 44, scores[0].Moves)

	all, err := store.TopScores(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "bob", all[0].Player)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := store.SaveScore(ctx, GameResult{Score: i * 10})
		require.NoError(t, err)
	}

	scores, err := store.TopScores(ctx, "", 5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 190, scores[0].Score)

	scores, err = store.TopScores(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10, "non-positive limit falls back to 10")

	every, err := store.AllScores(ctx, "")
	require.NoError(t, err)
	assert.Len(t, every, 20)
}

func TestStoreClearScoresKeepsBest(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	_, err := store.SaveScore(ctx, GameResult{Score: 100})
	require.NoError(t, err)
	require.NoError(t, store.SetBestScore(ctx, BestScoreKey, 100))

	require.NoError(t, store.ClearScores(ctx))

	scores, err := store.TopScores(ctx, "", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	best, err := store.BestScore(ctx, BestScoreKey)
	require.NoError(t, err)
	assert.Equal(t, 100, best)
}

func TestGetGameStats(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	empty, err := store.GetGameStats(ctx, "", 8)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	for _, r := range []GameResult{
		{Score: 100, MaxLevel: 5},
		{Score: 300, MaxLevel: 8},
		{Score: 200, MaxLevel: 6},
	} {
		_, err := store.SaveScore(ctx, r)
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats(ctx, "", 8)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(600), stats.TotalScore)
	assert.Equal(t, 1, stats.Rainbows)
}
