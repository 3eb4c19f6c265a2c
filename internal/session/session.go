// Package session is the contract between the engine and any shell: it owns
// the running game, keeps the best score, and turns moves into events a
// shell can present.
package session

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weather2048/internal/core"
	"github.com/vovakirdan/weather2048/internal/engine"
	"github.com/vovakirdan/weather2048/internal/storage"
)

// BestScoreStore persists the best score. *storage.Store implements it.
type BestScoreStore interface {
	BestScore(ctx context.Context, key string) (int, error)
	SetBestScore(ctx context.Context, key string, v int) error
}

// ScoreRecorder records finished games. Optional.
type ScoreRecorder interface {
	SaveScore(ctx context.Context, r storage.GameResult) (string, error)
}

// Options configures a Session.
type Options struct {
	Store    BestScoreStore // nil keeps the best score in memory only
	Recorder ScoreRecorder  // nil skips score history
	Key      string         // best-score key; defaults to storage.BestScoreKey
	Player   string         // recorded with finished games
	Seed     int64          // 0 picks a time-based seed
	Logger   *log.Logger
	Timeout  time.Duration // per storage call; defaults to two seconds
}

// Events is what one Apply did, in presentation terms.
type Events struct {
	Moved        bool
	ScoreDelta   int
	BestImproved bool
	WinNotice    bool // the first rainbow of this game
	GameOver     bool
	FinalScore   int // set with GameOver
}

// Session runs games one after another and tracks the best score.
type Session struct {
	opts     Options
	log      *log.Logger
	game     *engine.Game
	best     int
	recorded bool
}

// New creates a session, reads the stored best score and starts a game.
// A failing store is logged and treated as a best score of zero.
func New(opts Options) *Session {
	if opts.Key == "" {
		opts.Key = storage.BestScoreKey
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		opts: opts,
		log:  logger.WithPrefix("session"),
		game: engine.New(),
	}

	if opts.Store != nil {
		ctx, cancel := s.ctx()
		best, err := opts.Store.BestScore(ctx, opts.Key)
		cancel()
		if err != nil {
			s.log.Warn("could not load best score", "key", opts.Key, "err", err)
		} else {
			s.best = best
		}
	}

	s.NewGame()
	return s
}

func (s *Session) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.opts.Timeout)
}

// NewGame discards the current game and starts another. The best score is
// kept. Only the first game uses the configured seed.
func (s *Session) NewGame() {
	cfg := core.DefaultConfig()
	cfg.Seed = s.opts.Seed
	s.opts.Seed = 0
	s.game.Reset(cfg)
	s.recorded = false
	s.log.Debug("new game", "seed", s.game.Seed())
}

// Apply plays one move.
func (s *Session) Apply(dir engine.Direction) Events {
	return s.handle(s.game.Move(dir))
}

// Step plays the first directional action in the frame. It reports false
// when the frame holds no move.
func (s *Session) Step(in core.InputFrame) (Events, bool) {
	ev, ok := s.game.Step(in)
	if !ok {
		return Events{}, false
	}
	return s.handle(ev), true
}

func (s *Session) handle(ev engine.MoveEvent) Events {
	out := Events{
		Moved:      ev.Moved,
		ScoreDelta: ev.ScoreDelta,
		WinNotice:  ev.Won,
		GameOver:   ev.GameOver,
	}
	if !ev.Moved {
		return out
	}

	st := s.game.State()
	if st.Score > s.best {
		s.best = st.Score
		out.BestImproved = true
		s.persistBest()
	}
	if ev.Won {
		s.log.Info("rainbow reached", "score", st.Score, "moves", s.game.Moves())
	}
	if ev.GameOver {
		out.FinalScore = st.Score
		s.recordFinished()
	}
	return out
}

func (s *Session) persistBest() {
	if s.opts.Store == nil {
		return
	}
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.opts.Store.SetBestScore(ctx, s.opts.Key, s.best); err != nil {
		s.log.Warn("could not save best score", "key", s.opts.Key, "best", s.best, "err", err)
	}
}

func (s *Session) recordFinished() {
	if s.recorded || s.opts.Recorder == nil {
		return
	}
	s.recorded = true

	st := s.game.State()
	ctx, cancel := s.ctx()
	defer cancel()
	id, err := s.opts.Recorder.SaveScore(ctx, storage.GameResult{
		Player:   s.opts.Player,
		Score:    st.Score,
		MaxLevel: engine.MaxLevel(st.Grid),
		Moves:    int(s.game.Moves()),
	})
	if err != nil {
		s.log.Warn("could not record game", "score", st.Score, "err", err)
		return
	}
	s.log.Info("game over", "id", id, "score", st.Score)
}

// State returns the current engine state.
func (s *Session) State() engine.State {
	return s.game.State()
}

// Best returns the best score known to this session.
func (s *Session) Best() int {
	return s.best
}

// Summary reports score, best and flags for the HUD.
func (s *Session) Summary() core.GameState {
	st := s.game.State()
	return core.GameState{
		Score:    st.Score,
		Best:     s.best,
		GameOver: st.GameOver,
		Won:      st.HasWon,
	}
}

// Snapshot returns the engine snapshot of the running game.
func (s *Session) Snapshot() engine.Snapshot {
	return s.game.Snapshot()
}

// History returns the moves applied in the running game.
func (s *Session) History() []engine.Direction {
	return s.game.History()
}

// Hints returns the directions that would change the board.
func (s *Session) Hints() []engine.Direction {
	return engine.Hints(s.game.State().Grid)
}
