package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"ideaboard-cli/internal/api"
	"ideaboard-cli/internal/config"
	"ideaboard-cli/internal/session"
)

func Run(cfg config.Config, client *api.Client, sess *session.Session) error {
	applyGlyphPreference(cfg.TUI.Glyphs)
	m := newAppModel(cfg, client, sess)
	p := tea.NewProgram(m, tea.WithAltScreen())
	// An irrecoverable auth failure anywhere drops the user back on the
	// login view, mirroring the forced login redirect of a web client.
	client.OnAuthFailure(func() { p.Send(sessionExpiredMsg{}) })
	_, err := p.Run()
	return err
}
