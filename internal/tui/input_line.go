package tui

import (
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine renders a single-line labeled input, truncated to width.
// The cursor is implied by focus styling rather than drawn.
func renderInputLine(label, value string, width int, focused bool) string {
	st := lipgloss.NewStyle().Background(colorInputBg)
	if focused {
		st = st.Background(colorSelectedBg).Bold(true)
	}
	line := label + " " + value
	if focused {
		line += "▏"
	}
	if w := xansi.StringWidth(line); w < width {
		for i := w; i < width; i++ {
			line += " "
		}
	} else {
		line = xansi.Cut(line, 0, width)
	}
	return st.Render(line)
}
