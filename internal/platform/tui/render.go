package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/weather2048/internal/engine"
	"github.com/vovakirdan/weather2048/internal/registry"
)

// Tile sizes in terminal cells.
const (
	tileW        = 14
	tileH        = 5
	compactTileW = 8
	compactTileH = 3
	tileGap      = 1
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4f46e5"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	hudValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6366f1"))

	boardStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#94a3b8")).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#ec4899")).
			Padding(0, 2)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366f1")).
			Padding(1, 4).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// text holds the shell strings for one locale.
type text struct {
	title     string
	subtitle  string
	score     string
	best      string
	win       string
	gameOver  string
	final     string
	playAgain string
	hint      string
	noMoves   string
}

var texts = map[string]text{
	registry.LocaleEN: {
		title:     "Weather Stack",
		subtitle:  "merge your rainbow",
		score:     "SCORE",
		best:      "BEST",
		win:       "You made a rainbow! Congratulations!",
		gameOver:  "Game Over",
		final:     "Final score",
		playAgain: "press r to play again",
		hint:      "Moves",
		noMoves:   "no moves left",
	},
	registry.LocaleZH: {
		title:     "天气叠叠乐",
		subtitle:  "合成你的彩虹",
		score:     "得分",
		best:      "最高",
		win:       "你合成彩虹了！恭喜！",
		gameOver:  "游戏结束",
		final:     "最终得分",
		playAgain: "按 r 再来一局",
		hint:      "可移动",
		noMoves:   "无路可走",
	},
}

func textFor(locale string) text {
	if t, ok := texts[locale]; ok {
		return t
	}
	return texts[registry.LocaleEN]
}

// renderTile draws one cell. Compact tiles show only the glyph.
func renderTile(t registry.Tile, locale string, compact bool) string {
	w, h := tileW, tileH
	if compact {
		w, h = compactTileW, compactTileH
	}

	style := lipgloss.NewStyle().
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(t.BG))
	if t.FG != "" {
		style = style.Foreground(lipgloss.Color(t.FG))
	}

	content := t.Glyph
	if !compact && t.Glyph != "" {
		content = t.Glyph + "\n" + t.Name(locale)
	}
	return style.Render(content)
}

// renderBoard lays out the grid with the theme's tiles.
func renderBoard(g engine.Grid, theme registry.Theme, locale string, compact bool) string {
	gap := strings.Repeat(" ", tileGap)
	rows := make([]string, 0, engine.GridSize*2)

	for r := 0; r < engine.GridSize; r++ {
		cells := make([]string, 0, engine.GridSize*2)
		for c := 0; c < engine.GridSize; c++ {
			if c > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, renderTile(theme.Tile(g[r][c]), locale, compact))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if r < engine.GridSize-1 {
			rows = append(rows, "")
		}
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// boardSize returns the rendered board size for the given tile mode.
func boardSize(compact bool) (w, h int) {
	tw, th := tileW, tileH
	if compact {
		tw, th = compactTileW, compactTileH
	}
	w = engine.GridSize*tw + (engine.GridSize-1)*tileGap + 2
	h = engine.GridSize*th + engine.GridSize - 1
	return w, h
}

// renderHUD draws the title and the score boxes.
func renderHUD(t text, score, best int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(t.title),
		subtitleStyle.Render(t.subtitle),
	)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		left, "   ", scoreBox(t.score, score), " ", scoreBox(t.best, best))
}

func scoreBox(label string, v int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(hudLabelStyle.Render(label) + " " + hudValueStyle.Render(fmt.Sprintf("%d", v)))
}

// renderGameOver draws the end-of-game card.
func renderGameOver(t text, score int) string {
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(t.gameOver),
		"",
		fmt.Sprintf("%s: %s", t.final, hudValueStyle.Render(fmt.Sprintf("%d", score))),
		"",
		helpStyle.Render(t.playAgain),
	))
}

var hintArrows = map[engine.Direction]string{
	engine.Left:  "←",
	engine.Up:    "↑",
	engine.Right: "→",
	engine.Down:  "↓",
}

// renderHint lists the moves that would change the board.
func renderHint(t text, dirs []engine.Direction) string {
	if len(dirs) == 0 {
		return fmt.Sprintf("%s: %s", t.hint, t.noMoves)
	}
	arrows := make([]string, 0, len(dirs))
	for _, d := range dirs {
		arrows = append(arrows, hintArrows[d])
	}
	return fmt.Sprintf("%s: %s", t.hint, strings.Join(arrows, " "))
}

// centerText centers text within the given width.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
