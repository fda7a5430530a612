package tui

import (
	"bytes"
	"encoding/base64"
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// almostOver leaves a single legal move: sliding left merges 2+2 in the
// bottom row, then one spawn fills the board with no merges left.
var almostOver = t2048.Board{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 8},
	{16, 32, 2, 2},
}

func testStyles() Styles {
	return NewStyles(lipgloss.NewRenderer(io.Discard))
}

func testSettings() Settings {
	return Settings{
		Options:      t2048.DefaultOptions(),
		Palette:      t2048.DefaultPalette(),
		ShareMessage: "I scored {score} (max {max_tile}) {url}",
		ShareURL:     "https://example.org",
		Player:       "tester",
	}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 24, Seed: 42}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestGame returns a model whose board is replaced with board.
func newTestGame(store *storage.Store, settings Settings, board t2048.Board) GameModel {
	m := NewGameModel(store, settings, testConfig(), testStyles(), "session-1", nil)
	m.game = t2048.NewWithBoard(settings.Options, &fixedRand{}, board)
	return m
}

// fixedRand always picks the first empty cell and spawns a 2.
type fixedRand struct{}

func (fixedRand) IntN(int) int     { return 0 }
func (fixedRand) Float64() float64 { return 0.99 }

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameModelDealsInitialTiles(t *testing.T) {
	m := NewGameModel(nil, testSettings(), testConfig(), testStyles(), "s", nil)
	snap := m.Snapshot()
	if n := t2048.BoardSize*t2048.BoardSize - len(t2048.EmptyCells(snap.Board)); n != 2 {
		t.Errorf("Expected 2 initial tiles, got %d", n)
	}
	if snap.State != t2048.StatePlaying {
		t.Errorf("Expected playing state, got %s", snap.State)
	}
}

func TestGameModelSameSeedSameBoard(t *testing.T) {
	a := NewGameModel(nil, testSettings(), testConfig(), testStyles(), "a", nil)
	b := NewGameModel(nil, testSettings(), testConfig(), testStyles(), "b", nil)
	if a.Snapshot().Board != b.Snapshot().Board {
		t.Errorf("Same seed dealt different boards:\n%s\n%s", a.Snapshot().Board.Format(), b.Snapshot().Board.Format())
	}
}

func TestGameModelMove(t *testing.T) {
	m := newTestGame(nil, testSettings(), t2048.Board{
		{0, 0, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if cmd != nil {
		t.Error("A move should not schedule a command")
	}

	snap := m.Snapshot()
	if snap.Board[0][0] != 4 {
		t.Errorf("Expected merged 4 at top left, got board\n%s", snap.Board.Format())
	}
	if snap.Score != 4 || snap.Moves != 1 {
		t.Errorf("Expected score 4 after 1 move, got %d after %d", snap.Score, snap.Moves)
	}
	// fixedRand puts the spawn into the first empty cell.
	if snap.Board[0][1] != 2 {
		t.Errorf("Expected spawned 2 next to the merge, got board\n%s", snap.Board.Format())
	}
}

func TestGameModelNoOpMove(t *testing.T) {
	board := t2048.Board{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	m := newTestGame(nil, testSettings(), board)

	m, _ = update(t, m, runeKey('a'))

	if got := m.Snapshot(); got.Board != board || got.Moves != 0 {
		t.Errorf("No-op move changed the game: moves=%d\n%s", got.Moves, got.Board.Format())
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	m := newTestGame(store, testSettings(), almostOver)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Snapshot().State != t2048.StateGameOver {
		t.Fatalf("Expected game over, board\n%s", m.Snapshot().Board.Format())
	}

	// Further input must not record the game again.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	scores, err := store.TopScores("tester", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected exactly 1 saved score, got %d", len(scores))
	}

	got := scores[0]
	want := m.Snapshot()
	if got.Score != want.Score || got.MaxTile != want.MaxTile || got.Moves != 1 || got.SessionID != "session-1" {
		t.Errorf("Saved %+v, want score %d max tile %d", got, want.Score, want.MaxTile)
	}
	if !strings.Contains(m.View(), "Best: 4") {
		t.Errorf("Expected best score to follow the saved game, view:\n%s", m.View())
	}
}

func TestGameModelRestart(t *testing.T) {
	store := openStore(t)
	m := newTestGame(store, testSettings(), almostOver)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m, _ = update(t, m, runeKey('r'))
	snap := m.Snapshot()
	if snap.State != t2048.StatePlaying || snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("Restart did not reset the game: %+v", snap)
	}
	if m.scoreSaved {
		t.Error("Restart should allow the next game to be saved")
	}
}

func TestGameModelShare(t *testing.T) {
	var clip bytes.Buffer
	settings := testSettings()
	settings.Clipboard = &clip

	m := newTestGame(nil, settings, almostOver)

	// Before game over the share key does nothing.
	m, cmd := update(t, m, runeKey('c'))
	if cmd != nil || clip.Len() != 0 || m.Status() != "" {
		t.Fatal("Share should be ignored while playing")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd = update(t, m, runeKey('c'))
	if cmd == nil {
		t.Fatal("Expected a command to clear the status line")
	}

	want := "I scored 4 (max 32) https://example.org"
	if !strings.Contains(clip.String(), base64.StdEncoding.EncodeToString([]byte(want))) {
		t.Errorf("Clipboard sequence %q does not carry %q", clip.String(), want)
	}
	if m.Status() != "Copied to clipboard" {
		t.Errorf("Unexpected status %q", m.Status())
	}
	if !strings.Contains(m.View(), want) {
		t.Error("Game over view should show the share text")
	}

	// The status clears only for the matching id.
	m, _ = update(t, m, clearStatusMsg{id: m.statusID - 1})
	if m.Status() == "" {
		t.Error("A stale clear message should not clear the status")
	}
	m, _ = update(t, m, clearStatusMsg{id: m.statusID})
	if m.Status() != "" {
		t.Errorf("Expected status cleared, got %q", m.Status())
	}
}

func TestGameModelShareWithoutClipboard(t *testing.T) {
	m := newTestGame(nil, testSettings(), almostOver)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('c'))

	if m.Status() != "Clipboard not available" {
		t.Errorf("Unexpected status %q", m.Status())
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := newTestGame(nil, testSettings(), t2048.Board{})

	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || cmd != nil {
		t.Error("Esc should request the menu without a command")
	}

	quit, cmd := update(t, m, runeKey('q'))
	if !quit.IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit the program")
	}
	if quit.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestGameModelHelpToggle(t *testing.T) {
	m := newTestGame(nil, testSettings(), t2048.Board{})
	if strings.Contains(m.View(), "copy score") {
		t.Error("Short help should not list the share key")
	}

	m, _ = update(t, m, runeKey('?'))
	if !strings.Contains(m.View(), "copy score") {
		t.Error("Full help should list the share key")
	}
}

func TestGameModelViewFitsWindow(t *testing.T) {
	m := newTestGame(nil, testSettings(), t2048.Board{{2, 0, 0, 0}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})

	view := m.View()
	if h := lipgloss.Height(view); h > 20 {
		t.Errorf("View is %d lines tall, window is 20", h)
	}
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("Expected HUD in view:\n%s", view)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})
	if !strings.Contains(m.View(), "too small") {
		t.Error("Expected the too-small notice on a tiny window")
	}
}
