package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigames/internal/core"
)

// cellStyles is indexed by core.Color.
var cellStyles = buildCellStyles()

func buildCellStyles() [core.NumColors]lipgloss.Style {
	var styles [core.NumColors]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= core.NumColors {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen turns the screen buffer into terminal output, one styled run
// per stretch of same-colored cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	color := s.GetCell(0, y).Color

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if color == core.ColorDefault {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(styleFor(color).Render(run.String()))
		}
		run.Reset()
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
