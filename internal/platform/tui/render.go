package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// fillRune is drawn for every cell a rectangle covers.
const fillRune = '█'

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRock:       lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorRockEdge:   lipgloss.NewStyle().Foreground(lipgloss.Color("52")),
	core.ColorDragon:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorDragonHurt: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorPrompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// Rasterize projects drawables onto the screen buffer.
func Rasterize(s *core.Screen, vp core.Viewport, rects []core.FillRect) {
	for _, fr := range rects {
		cells := vp.Project(fr.Rect)
		if cells.Empty() {
			continue
		}
		s.DrawRect(cells, fillRune, fr.Color)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
