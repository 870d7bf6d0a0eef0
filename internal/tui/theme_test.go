package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestMarkdownStyleFollowsBackground(t *testing.T) {
	orig := darkBackground
	t.Cleanup(func() { darkBackground = orig })

	darkBackground = true
	if got := mdStyle(); got != "dark" {
		t.Fatalf("mdStyle() = %q on a dark background", got)
	}
	darkBackground = false
	if got := mdStyle(); got != "light" {
		t.Fatalf("mdStyle() = %q on a light background", got)
	}
}

func TestFaintOnlyOnDarkBackground(t *testing.T) {
	orig := darkBackground
	t.Cleanup(func() { darkBackground = orig })

	base := lipgloss.NewStyle()
	darkBackground = true
	if !faintIfDark(base).GetFaint() {
		t.Fatalf("expected faint styling on a dark background")
	}
	darkBackground = false
	if faintIfDark(base).GetFaint() {
		t.Fatalf("faint styling must not apply on a light background")
	}
}
