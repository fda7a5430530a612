package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// view is the screen a session is showing.
type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	store     *storage.Store
	logger    *log.Logger
	settings  Settings
	styles    Styles
	config    core.RuntimeConfig
	sessionID string

	current  view
	menu     MenuModel
	game     *GameModel
	board    *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that opens on the main menu.
// store and logger may be nil.
func NewSessionModel(store *storage.Store, settings Settings, cfg core.RuntimeConfig,
	styles Styles, logger *log.Logger,
) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := SessionModel{
		store:     store,
		logger:    logger,
		settings:  settings,
		styles:    styles,
		config:    cfg,
		sessionID: uuid.NewString(),
	}
	m.menu = m.newMenu()
	return m
}

// StartGame returns the session switched straight into a new game.
func (m SessionModel) StartGame() SessionModel {
	game := NewGameModel(m.store, m.settings, m.config, m.styles, m.sessionID, m.logger)
	m.game = &game
	m.current = viewGame
	return m
}

// SessionID identifies this session in logs and saved scores.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

func (m SessionModel) newMenu() MenuModel {
	var best int
	if m.store != nil {
		b, err := m.store.HighScore(m.settings.Player)
		if err != nil {
			m.logger.Warn("could not load best score", "player", m.settings.Player, "error", err)
		}
		best = b
	}
	return NewMenuModel(m.settings.Player, best, m.config, m.styles)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Chosen() {
	case ChoiceNewGame:
		m = m.StartGame()
		return m, m.game.Init()

	case ChoiceScores:
		board := NewScoreboardModel(m.store, m.settings.Player, m.config.ScreenW, m.config.ScreenH, m.styles, m.logger)
		m.board = &board
		m.current = viewScores
		return m, m.board.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if board, ok := newModel.(ScoreboardModel); ok {
		m.board = &board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu drops the current screen and opens a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.board = nil
	m.current = viewMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local Bubble Tea program for the session.
func Run(m SessionModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
