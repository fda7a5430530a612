package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
	shareLines = 1 // Share text under the board at game over

	// MinScreenW and MinScreenH are the smallest screen that fits board, HUD
	// and the share line.
	MinScreenW = BoardSize*cellWidth + 1
	MinScreenH = BoardSize*cellHeight + 1 + hudHeight + 1 + shareLines
)

// PaletteEntry colors every tile up to and including Max.
// Max == 0 matches any value.
type PaletteEntry struct {
	Max   int
	Color core.Color
}

// Palette maps tile values to colors. Entries are checked in order.
type Palette struct {
	Grid  core.Color
	Empty core.Color // Dot marking an empty cell
	Tiles []PaletteEntry
}

// DefaultPalette follows a warm ramp from small to large tiles.
func DefaultPalette() Palette {
	return Palette{
		Grid:  core.ColorGray,
		Empty: core.ColorGray,
		Tiles: []PaletteEntry{
			{Max: 4, Color: core.ColorWhite},
			{Max: 8, Color: core.ColorYellow},
			{Max: 16, Color: core.ColorBrightYellow},
			{Max: 32, Color: core.ColorOrange},
			{Max: 64, Color: core.ColorRed},
			{Max: 0, Color: core.ColorBrightMagenta},
		},
	}
}

// ColorFor returns the color of a tile value.
func (p Palette) ColorFor(value int) core.Color {
	for _, e := range p.Tiles {
		if e.Max == 0 || value <= e.Max {
			return e.Color
		}
	}
	return core.ColorDefault
}

// RenderOptions carries what the view knows beyond the session itself.
type RenderOptions struct {
	Palette   Palette
	Best      int    // Best recorded score, 0 if unknown
	ShareText string // Shown on the game-over overlay when set
}

// Render draws a snapshot to the screen.
func Render(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	renderHUD(dst, snap, opts, boardX, boardW)
	renderBoard(dst, snap.Board, opts.Palette, boardX, boardY)

	if snap.State == StateGameOver {
		renderGameOver(dst, snap, opts, core.NewRect(boardX, boardY, boardW, boardH))
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score line above the board.
func renderHUD(dst *core.Screen, snap Snapshot, opts RenderOptions, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", snap.Score))

	best := fmt.Sprintf("Best: %d", max(opts.Best, snap.Score))
	dst.DrawText(boardX+boardW-len(best), 1, best)

	info := fmt.Sprintf("Moves: %d  Max: %d", snap.Moves, snap.MaxTile)
	dst.DrawTextColor(boardX+(boardW-len(info))/2, 2, info, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func renderBoard(dst *core.Screen, board Board, pal Palette, boardX, boardY int) {
	// Draw grid borders
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, pal.Grid)

			// Draw horizontal line to the right
			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', pal.Grid)
				}
			}

			// Draw vertical line down
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', pal.Grid)
				}
			}
		}
	}

	// Draw tiles
	for y := range BoardSize {
		for x := range BoardSize {
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			val := board[y][x]
			if val == 0 {
				dst.SetColor(cellX+(cellWidth-1)/2, cellY, '·', pal.Empty)
				continue
			}

			// Center the value in the cell
			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			dst.DrawTextColor(cellX+padLeft, cellY, valStr, pal.ColorFor(val))
		}
	}
}

// renderGameOver draws the final overlay on top of the board.
func renderGameOver(dst *core.Screen, snap Snapshot, opts RenderOptions, board core.Rect) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score %d  Max tile %d", snap.Score, snap.MaxTile),
	}
	if opts.ShareText != "" {
		lines = append(lines, "C: copy share text")
	}
	lines = append(lines, "R: new game")

	centerX, centerY := board.Center()
	drawOverlay(dst, centerX, centerY, lines...)

	if opts.ShareText != "" {
		// The screen line holds one row; line breaks show as spaces.
		dst.DrawTextCentered(board.Bottom(), strings.Join(strings.Fields(opts.ShareText), " "))
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
