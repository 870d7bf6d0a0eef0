package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor and "faint" styling is applied only on
// dark backgrounds (faint text on light terminals often becomes illegible).

// Queried once at startup; bubbletea owns the terminal afterwards and a
// mid-session OSC query can stall.
var darkBackground = termenv.HasDarkBackground()

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if darkBackground {
		return st.Faint(true)
	}
	return st
}

// Common semantic colors used across the TUI.
var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")

	colorError   lipgloss.TerminalColor = ac("160", "196") // red
	colorSuccess lipgloss.TerminalColor = ac("28", "76")   // green

	// Status colors: concept gray, in-progress blue, completed green.
	colorStatusConcept    lipgloss.TerminalColor = ac("245", "245")
	colorStatusInProgress lipgloss.TerminalColor = ac("27", "75")
	colorStatusCompleted  lipgloss.TerminalColor = ac("28", "76")

	// Progress bar fill/empty backgrounds.
	colorProgressFill  lipgloss.TerminalColor = ac("27", "62")
	colorProgressEmpty lipgloss.TerminalColor = ac("252", "237")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleSuccess() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSuccess)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "IN_PROGRESS":
		return lipgloss.NewStyle().Foreground(colorStatusInProgress)
	case "COMPLETED":
		return lipgloss.NewStyle().Foreground(colorStatusCompleted)
	default:
		return lipgloss.NewStyle().Foreground(colorStatusConcept)
	}
}
