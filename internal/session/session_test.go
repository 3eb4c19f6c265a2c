package session

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/weather2048/internal/core"
	"github.com/vovakirdan/weather2048/internal/engine"
	"github.com/vovakirdan/weather2048/internal/storage"
)

var errDisk = errors.New("disk on fire")

type fakeStore struct {
	mu      sync.Mutex
	values  map[string]int
	failGet bool
	failSet bool
	writes  int
	saved   []storage.GameResult
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]int)}
}

func (f *fakeStore) BestScore(_ context.Context, key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return 0, errDisk
	}
	return f.values[key], nil
}

func (f *fakeStore) SetBestScore(_ context.Context, key string, v int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return errDisk
	}
	f.writes++
	if v > f.values[key] {
		f.values[key] = v
	}
	return nil
}

func (f *fakeStore) SaveScore(_ context.Context, r storage.GameResult) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, r)
	return "game-id", nil
}

func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

// playUntilScore cycles through directions until the score is positive.
func playUntilScore(t *testing.T, s *Session) Events {
	t.Helper()
	var last Events
	for i := 0; i < 500; i++ {
		ev := s.Apply(engine.Directions[i%len(engine.Directions)])
		if ev.Moved {
			last = ev
		}
		if s.State().Score > 0 {
			return last
		}
	}
	t.Fatal("no scoring move within 500 moves")
	return last
}

// playToEnd plays until the game is over and returns the final event.
func playToEnd(t *testing.T, s *Session) Events {
	t.Helper()
	for i := 0; i < 100000; i++ {
		ev := s.Apply(engine.Directions[i%len(engine.Directions)])
		if ev.GameOver {
			return ev
		}
	}
	t.Fatal("game did not end")
	return Events{}
}

// cornerOrder keeps big tiles in the bottom-left corner, which reliably
// builds high levels.
var cornerOrder = []engine.Direction{engine.Down, engine.Left, engine.Right, engine.Up}

// playCorner plays the first moving direction of cornerOrder until stop
// returns true. It reports false if the board stops moving first.
func playCorner(s *Session, stop func(Events) bool) bool {
	for _i := 0; _i < 100000; _i++ {
		hints := s.Hints()
		i := slices.IndexFunc(cornerOrder, func(d engine.Direction) bool {
			return slices.Contains(hints, d)
		})
		if i < 0 {
			return false
		}
		if stop(s.Apply(cornerOrder[i])) {
			return true
		}
	}
	return false
}

func TestNewLoadsBestScore(t *testing.T) {
	store := newFakeStore()
	store.values[storage.BestScoreKey] = 1234

	s := New(Options{Store: store, Seed: 1})

	assert.Equal(t, 1234, s.Best())
	assert.Equal(t, 0, s.State().Score)
	assert.Equal(t, 1234, s.Summary().Best)
}

func TestNewSurvivesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failGet = true
	logger, buf := bufferLogger()

	s := New(Options{Store: store, Seed: 1, Logger: logger})

	assert.Equal(t, 0, s.Best())
	assert.Contains(t, buf.String(), "could not load best score")
}

func TestBestScoreImprovesAndPersists(t *testing.T) {
	store := newFakeStore()
	s := New(Options{Store: store, Seed: 7})

	ev := playUntilScore(t, s)

	assert.True(t, ev.BestImproved)
	assert.Equal(t, s.State().Score, s.Best())
	assert.Equal(t, s.Best(), store.values[storage.BestScoreKey])
	assert.GreaterOrEqual(t, store.writes, 1)
}

func TestBestScoreNotImprovedBelowStored(t *testing.T) {
	store := newFakeStore()
	store.values[storage.BestScoreKey] = 1_000_000
	s := New(Options{Store: store, Seed: 7})

	for i := 0; i < 50; i++ {
		ev := s.Apply(engine.Directions[i%4])
		assert.False(t, ev.BestImproved)
	}
	assert.Equal(t, 0, store.writes)
	assert.Equal(t, 1_000_000, s.Best())
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	store := newFakeStore()
	store.failSet = true
	logger, buf := bufferLogger()
	s := New(Options{Store: store, Seed: 7, Logger: logger})

	ev := playUntilScore(t, s)

	assert.True(t, ev.BestImproved)
	assert.Equal(t, s.State().Score, s.Best(), "in-memory best tracks the score")
	assert.Contains(t, buf.String(), "could not save best score")
}

func TestBestSurvivesNewGame(t *testing.T) {
	s := New(Options{Seed: 3})
	playUntilScore(t, s)
	best := s.Best()
	require.Positive(t, best)

	s.NewGame()

	assert.Equal(t, 0, s.State().Score)
	assert.Equal(t, best, s.Best())
	assert.Empty(t, s.History())
}

func TestBestIsMonotonic(t *testing.T) {
	s := New(Options{Seed: 11})
	prev := s.Best()

	for round := 0; round < 3; round++ {
		for i := 0; i < 300; i++ {
			s.Apply(engine.Directions[(i+round)%4])
			require.GreaterOrEqual(t, s.Best(), prev)
			require.GreaterOrEqual(t, s.Best(), s.State().Score)
			prev = s.Best()
		}
		s.NewGame()
	}
}

func TestGameOverRecordedOnce(t *testing.T) {
	store := newFakeStore()
	s := New(Options{Store: store, Recorder: store, Player: "alice", Seed: 5})

	ev := playToEnd(t, s)

	assert.True(t, ev.GameOver)
	assert.Equal(t, s.State().Score, ev.FinalScore)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "alice", store.saved[0].Player)
	assert.Equal(t, ev.FinalScore, store.saved[0].Score)
	assert.Equal(t, int(s.Snapshot().Moves), store.saved[0].Moves)

	// Moves after game over change nothing and record nothing.
	for _, d := range engine.Directions {
		after := s.Apply(d)
		assert.False(t, after.Moved)
	}
	assert.Len(t, store.saved, 1)
	assert.Equal(t, engine.StatusGameOver, s.Snapshot().Status)
}

func TestUnmovedApply(t *testing.T) {
	s := New(Options{Seed: 2})

	// Only directions that would not change the grid are applied.
	for _, d := range engine.Directions {
		before := s.State()
		if slices.Contains(s.Hints(), d) {
			continue
		}
		ev := s.Apply(d)
		assert.Equal(t, Events{}, ev)
		assert.Equal(t, before, s.State())
	}
}

func TestCustomKey(t *testing.T) {
	store := newFakeStore()
	store.values["best-score:bob"] = 77

	s := New(Options{Store: store, Key: storage.PlayerBestKey("bob"), Seed: 1})

	assert.Equal(t, 77, s.Best())
}

func TestWinNoticeOncePerGame(t *testing.T) {
	var (
		s       *Session
		winEv   Events
		reached bool
	)
	for seed := int64(1); seed <= 100 && !reached; seed++ {
		s = New(Options{Seed: seed})
		reached = playCorner(s, func(ev Events) bool {
			winEv = ev
			return ev.WinNotice
		})
	}
	require.True(t, reached, "no seed reached a rainbow")
	assert.True(t, winEv.Moved)
	assert.True(t, s.Summary().Won)
	assert.Equal(t, engine.WinLevel, engine.MaxLevel(s.State().Grid))

	last := winEv
	if !last.GameOver {
		notices := 0
		ended := playCorner(s, func(ev Events) bool {
			if ev.WinNotice {
				notices++
			}
			last = ev
			return ev.GameOver
		})
		require.True(t, ended)
		assert.Zero(t, notices, "the win notice fires once per game")
	}
	assert.True(t, last.GameOver)
	assert.Equal(t, s.State().Score, last.FinalScore)
	assert.True(t, s.Summary().Won, "won stays set after the notice")

	s.NewGame()
	assert.False(t, s.Summary().Won)
	assert.False(t, s.Summary().GameOver)
}

func TestStepUsesFrameMove(t *testing.T) {
	s := New(Options{Seed: 4})

	_, ok := s.Step(core.NewInputFrame())
	assert.False(t, ok, "an empty frame plays nothing")

	hints := s.Hints()
	require.NotEmpty(t, hints)
	actions := map[engine.Direction]core.Action{
		engine.Up: core.ActionUp, engine.Down: core.ActionDown,
		engine.Left: core.ActionLeft, engine.Right: core.ActionRight,
	}
	in := core.NewInputFrame()
	in.Set(actions[hints[0]])
	in.Set(core.ActionHelp)

	ev, ok := s.Step(in)
	require.True(t, ok)
	assert.True(t, ev.Moved)
	assert.Equal(t, []engine.Direction{hints[0]}, s.History())
}

func TestHintsMatchApply(t *testing.T) {
	s := New(Options{Seed: 21})

	for _i := 0; _i < 30; _i++ {
		hints := s.Hints()
		if len(hints) == 0 {
			break
		}
		for _, d := range engine.Directions {
			if slices.Contains(hints, d) {
				continue
			}
			assert.False(t, s.Apply(d).Moved, "%v is not a hint but moved", d)
		}
		assert.True(t, s.Apply(hints[len(hints)-1]).Moved)
	}
}
