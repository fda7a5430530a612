package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Styles holds every lipgloss style the views use. Styles are bound to a
// renderer so each SSH session gets its own color profile.
type Styles struct {
	colors map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Box      lipgloss.Style
	Table    table.Styles
}

// NewStyles creates the styles for a renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	s := Styles{colors: make(map[core.Color]lipgloss.Style, len(colorCodes)+1)}

	s.colors[core.ColorDefault] = r.NewStyle()
	for c, code := range colorCodes {
		s.colors[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}

	s.Title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	s.Item = r.NewStyle()
	s.Selected = r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	s.Status = r.NewStyle().Foreground(lipgloss.Color("10"))
	s.Help = r.NewStyle().Foreground(lipgloss.Color("241"))
	s.Muted = r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	s.Error = r.NewStyle().Foreground(lipgloss.Color("9"))
	s.Box = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	s.Table = table.Styles{
		Header: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		Cell: r.NewStyle().Padding(0, 1),
		Selected: r.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}

	return s
}

// DefaultStyles returns styles for the local terminal.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st Styles) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := st.colors[startColor]
			if !ok {
				style = st.colors[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
