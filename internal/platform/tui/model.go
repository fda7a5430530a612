package tui

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/share"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Settings carries what a session needs beyond the score store.
type Settings struct {
	Options      t2048.Options
	Palette      t2048.Palette
	ShareMessage string
	ShareURL     string

	Player    string    // Name scores are saved under
	Clipboard io.Writer // Terminal that receives OSC 52; nil disables copying
	Tmux      bool      // Wrap clipboard sequences for tmux
}

// newRand seeds the session's random source. Seed 0 seeds from the clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)))
}

// GameModel is the Bubble Tea model for one 2048 board. Input is applied
// as it arrives; there is no simulation tick.
type GameModel struct {
	game      *t2048.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	settings  Settings
	styles    Styles
	keys      GameKeyMap
	help      help.Model
	config    core.RuntimeConfig
	sessionID string

	best       int  // Best stored score for the player
	scoreSaved bool // Whether score has been saved for current game over
	status     string
	statusID   int
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and deals the first board.
// store and logger may be nil.
func NewGameModel(store *storage.Store, settings Settings, cfg core.RuntimeConfig,
	styles Styles, sessionID string, logger *log.Logger,
) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:      t2048.New(settings.Options, newRand(cfg.Seed)),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		settings:  settings,
		styles:    styles,
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		config:    cfg,
		sessionID: sessionID,
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		best, err := store.HighScore(settings.Player)
		if err != nil {
			logger.Warn("could not load best score", "player", settings.Player, "error", err)
		}
		m.best = best
	}

	return m
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		return m, nil

	case core.ActionRestart:
		m.game.Reset()
		m.scoreSaved = false
		m.status = ""
		m.logger.Debug("new game", "session", m.sessionID)
		return m, nil

	case core.ActionShare:
		return m.copyShareText()
	}

	if !action.IsMove() {
		return m, nil
	}
	dir, _ := directionFor(action)

	res := m.game.Move(dir)
	if res.Moved {
		m.logger.Debug("move",
			"dir", dir,
			"delta", res.ScoreDelta,
			"score", m.game.Score(),
			"spawn", res.Spawned.Value,
		)
	}
	if res.GameOver {
		m.finish()
	}

	return m, nil
}

// finish records a finished game once.
func (m *GameModel) finish() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	snap := m.game.Snapshot()
	m.logger.Debug("game over", "score", snap.Score, "max_tile", snap.MaxTile, "moves", snap.Moves)

	if m.store == nil || snap.Score == 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Player:    m.settings.Player,
		SessionID: m.sessionID,
		Score:     snap.Score,
		MaxTile:   snap.MaxTile,
		Moves:     snap.Moves,
	})
	if err != nil {
		m.logger.Warn("could not save score", "player", m.settings.Player, "error", err)
		return
	}
	m.best = max(m.best, snap.Score)
}

// copyShareText puts the share text on the player's clipboard.
func (m GameModel) copyShareText() (tea.Model, tea.Cmd) {
	if !m.game.IsOver() {
		return m, nil
	}

	if m.settings.Clipboard == nil {
		m.status = "Clipboard not available"
	} else if err := share.Copy(m.settings.Clipboard, m.shareText(), m.settings.Tmux); err != nil {
		m.logger.Warn("could not copy share text", "error", err)
		m.status = "Copy failed"
	} else {
		m.status = "Copied to clipboard"
	}

	m.statusID++
	return m, clearStatusCmd(m.statusID)
}

func (m GameModel) shareText() string {
	snap := m.game.Snapshot()
	return share.Text(m.settings.ShareMessage, snap.Score, snap.MaxTile, m.settings.ShareURL)
}

// View renders the board, the status line and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	footer := m.styles.Status.Render(m.status) + "\n" + m.styles.Help.Render(m.help.View(m.keys))
	boardH := max(m.config.ScreenH-lipgloss.Height(footer), 0)
	m.screen.Resize(m.config.ScreenW, boardH)

	opts := t2048.RenderOptions{Palette: m.settings.Palette, Best: m.best}
	if m.game.IsOver() {
		opts.ShareText = m.shareText()
	}
	t2048.Render(m.screen, m.game.Snapshot(), opts)

	return m.styles.RenderScreen(m.screen) + "\n" + footer
}

// Snapshot returns the current game state.
func (m GameModel) Snapshot() t2048.Snapshot {
	return m.game.Snapshot()
}

// Status returns the transient status line.
func (m GameModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
