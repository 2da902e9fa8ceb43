package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// styleCache maps canvas colours to lipgloss styles.
// Only the render goroutine of a single model touches it.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) get(cell core.Cell) lipgloss.Style {
	if !cell.Styled {
		return lipgloss.NewStyle()
	}
	if st, ok := c[cell.Color]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(cell.Color.Hex()))
	c[cell.Color] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.CellAt(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.CellAt(x, y)
				if cell.Styled != start.Styled || (cell.Styled && cell.Color != start.Color) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
