package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ideaboard-cli/internal/model"
)

type ideaFormModel struct {
	inputs [3]textinput.Model // title, description, category
	focus  int
}

func newIdeaFormModel() ideaFormModel {
	var f ideaFormModel
	labels := [3]string{"title", "description (markdown)", "category"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 500
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

func (f *ideaFormModel) cycle(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (m appModel) updateIdeaForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewIdeas
		m.clearNotice()
		return m, nil

	case "tab", "down":
		m.form.cycle(1)
		return m, nil
	case "shift+tab", "up":
		m.form.cycle(-1)
		return m, nil

	case "enter":
		if m.form.focus < len(m.form.inputs)-1 {
			m.form.cycle(1)
			return m, nil
		}
		if m.submitting {
			return m, nil
		}
		req := model.IdeaCreateRequest{
			Title:       strings.TrimSpace(m.form.inputs[0].Value()),
			Description: strings.TrimSpace(m.form.inputs[1].Value()),
			Category:    strings.TrimSpace(m.form.inputs[2].Value()),
		}
		if req.Title == "" || req.Description == "" {
			m.setError("title and description are required")
			return m, nil
		}
		m.submitting = true
		m.setNotice("submitting idea...")
		return m, createIdeaCmd(m.client, req)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) applyIdeaCreated(msg ideaCreatedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.setNotice("idea submitted")
	m.view = viewIdeas
	return m, loadIdeasCmd(m.client, m.ideaFilter())
}

func (m appModel) viewIdeaForm() string {
	var b strings.Builder
	b.WriteString(styleHeader().Render("New idea"))
	b.WriteString("\n\n")
	for i := range m.form.inputs {
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}
