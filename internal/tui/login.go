package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginModel struct {
	username textinput.Model
	password textinput.Model
	focus    int
}

func newLoginModel() loginModel {
	u := textinput.New()
	u.Placeholder = "username"
	u.CharLimit = 64
	u.Focus()

	p := textinput.New()
	p.Placeholder = "password"
	p.CharLimit = 128
	p.EchoMode = textinput.EchoPassword

	return loginModel{username: u, password: p}
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.login.focus = 1 - m.login.focus
		if m.login.focus == 0 {
			m.login.username.Focus()
			m.login.password.Blur()
		} else {
			m.login.username.Blur()
			m.login.password.Focus()
		}
		return m, nil

	case "enter":
		if m.submitting {
			return m, nil
		}
		username := strings.TrimSpace(m.login.username.Value())
		password := m.login.password.Value()
		if username == "" || password == "" {
			m.setError("username and password are required")
			return m, nil
		}
		m.submitting = true
		m.setNotice("logging in...")
		return m, loginCmd(m.client, username, password)
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.username, cmd = m.login.username.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m appModel) applyLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.clearNotice()
	m.view = viewIdeas
	return m, loadIdeasCmd(m.client, m.ideaFilter())
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(styleHeader().Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString(m.login.username.View())
	b.WriteString("\n")
	b.WriteString(m.login.password.View())
	return b.String()
}
