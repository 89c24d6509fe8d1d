package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Theme maps palette indices to lipgloss styles.
type Theme struct {
	styles map[core.Color]lipgloss.Style
}

// NewTheme builds styles from the configured hex palette. Index 0 (empty)
// keeps the terminal default so blank cells follow the user's background.
func NewTheme(palette []string, outline string) Theme {
	styles := map[core.Color]lipgloss.Style{
		core.ColorEmpty:   lipgloss.NewStyle(),
		core.ColorOutline: lipgloss.NewStyle().Foreground(lipgloss.Color(outline)),
		core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	}
	for i := 1; i < len(palette) && core.Color(i).IsPiece(); i++ {
		styles[core.Color(i)] = lipgloss.NewStyle().Foreground(lipgloss.Color(palette[i]))
	}
	return Theme{styles: styles}
}

// Style returns the style for a colour index, falling back to the default.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return t.styles[core.ColorEmpty]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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

			sb.WriteString(t.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
