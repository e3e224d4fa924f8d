package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// cellStyles holds one style per core.Color.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, core.NumColors)
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string. Each run of
// same-colored cells on a row gets a single escape sequence; default
// colored runs are written bare.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)
	run := make([]rune, 0, w)

	flush := func(c core.Color) {
		if len(run) == 0 {
			return
		}
		if c == core.ColorDefault {
			sb.WriteString(string(run))
		} else {
			sb.WriteString(styleFor(c).Render(string(run)))
		}
		run = run[:0]
	}

	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		cur := s.GetCell(0, y).Color
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != cur {
				flush(cur)
				cur = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush(cur)
	}
	return sb.String()
}
