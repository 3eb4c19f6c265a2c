package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weather2048/internal/config"
	"github.com/vovakirdan/weather2048/internal/core"
	"github.com/vovakirdan/weather2048/internal/engine"
	"github.com/vovakirdan/weather2048/internal/registry"
	"github.com/vovakirdan/weather2048/internal/session"
	"github.com/vovakirdan/weather2048/internal/storage"
)

// Options configures the game screen.
type Options struct {
	Session *session.Session
	Theme   registry.Theme
	Locale  string
	Swipe   config.SwipeConfig
	Notice  time.Duration  // how long the win notice stays up
	Store   *storage.Store // scoreboard source; nil hides it
	Player  string         // scoreboard filter; empty shows everyone
	Logger  *log.Logger
	Width   int
	Height  int
}

// Model is the Bubble Tea model for the game screen.
type Model struct {
	sess   *session.Session
	theme  registry.Theme
	locale string
	text   text
	keys   KeyMap
	help   help.Model
	swipe  *core.SwipeTracker
	store  *storage.Store
	player string
	log    *log.Logger

	noticeFor time.Duration
	notice    string
	noticeID  int
	hint      string

	width    int
	height   int
	scores   *ScoreboardModel
	quitting bool
}

// NewModel creates the game screen around an existing session.
func NewModel(opts Options) Model {
	if opts.Notice <= 0 {
		opts.Notice = 3 * time.Second
	}
	if opts.Swipe.CellWidthUnits <= 0 || opts.Swipe.CellHeightUnits <= 0 {
		opts.Swipe = config.Default().Swipe
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		sess:      opts.Session,
		theme:     opts.Theme,
		locale:    opts.Locale,
		text:      textFor(opts.Locale),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		swipe:     core.NewSwipeTracker(opts.Swipe.MinDistance, opts.Swipe.CellWidthUnits, opts.Swipe.CellHeightUnits),
		store:     opts.Store,
		player:    opts.Player,
		log:       logger.WithPrefix("tui"),
		noticeFor: opts.Notice,
		width:     opts.Width,
		height:    opts.Height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case NoticeExpiredMsg:
		if msg.ID == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleAction applies one abstract action.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.sess.NewGame()
		m.notice = ""
		m.noticeID++
		m.hint = ""
		return m, nil
	case core.ActionHint:
		m.hint = renderHint(m.text, m.sess.Hints())
		return m, nil
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionConfirm:
		if m.store == nil {
			return m, nil
		}
		sb := NewScoreboardModel(m.store, m.player, m.width, m.height)
		m.scores = &sb
		return m, nil
	}

	in := core.NewInputFrame()
	in.Set(a)
	return m.step(in)
}

// step plays the frame's move and schedules the win notice when it fires.
func (m Model) step(in core.InputFrame) (tea.Model, tea.Cmd) {
	ev, ok := m.sess.Step(in)
	if !ok {
		return m, nil
	}
	if ev.Moved {
		m.hint = ""
	}
	if !ev.WinNotice {
		return m, nil
	}

	m.noticeID++
	m.notice = m.text.win
	return m, noticeCmd(m.noticeFor, m.noticeID)
}

// handleMouse turns a left-button drag into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := core.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Begin(p)
		} else {
			m.swipe.Cancel()
		}
	case tea.MouseActionRelease:
		a, ok := m.swipe.End(p)
		if !ok {
			return m, nil
		}
		return m.handleAction(a)
	}
	return m, nil
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}

	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}
	m.scores = &sb
	return m, cmd
}

// screenshotText renders the board with a command that replays the game so
// far.
func (m Model) screenshotText() string {
	w, h := engine.GridTextSize()
	screen := core.NewScreen(w, h+2)
	engine.DrawGrid(screen, 0, 0, m.sess.State().Grid)
	summary := m.sess.Summary()
	screen.DrawText(0, h+1, fmt.Sprintf("score %d  best %d", summary.Score, summary.Best))

	return fmt.Sprintf("%s\nweather2048 replay --seed %d %s\n",
		screen.String(), m.sess.Snapshot().Seed, engine.FormatMoves(m.sess.History()))
}

// saveScreenshot writes the board as plain text under ~/.weather2048/screenshots.
func (m Model) saveScreenshot() {

	dir, err := config.DataDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir = filepath.Join(dir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("board_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screenshotText()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// compact reports whether full-size tiles would not fit.
func (m Model) compact() bool {
	bw, bh := boardSize(false)
	// HUD, notice line and help take roughly eight rows.
	return m.width > 0 && (m.width < bw || m.height < bh+8)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	summary := m.sess.Summary()
	board := renderBoard(m.sess.State().Grid, m.theme, m.locale, m.compact())
	if summary.GameOver {
		board = lipgloss.Place(lipgloss.Width(board), lipgloss.Height(board),
			lipgloss.Center, lipgloss.Center, renderGameOver(m.text, summary.Score))
	}

	notice := ""
	if m.notice != "" {
		notice = noticeStyle.Render(m.notice)
	}
	hint := ""
	if m.hint != "" {
		hint = subtitleStyle.Render(m.hint)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		renderHUD(m.text, summary.Score, summary.Best),
		"",
		notice,
		hint,
		board,
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Notice returns the notice currently on screen, if any.
func (m Model) Notice() string {
	return m.notice
}

// Run starts a local Bubble Tea program for the game screen.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
