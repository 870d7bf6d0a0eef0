package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ideaboard-cli/internal/model"
)

type threadModel struct {
	other model.User
	msgs  []model.Message
	input textinput.Model
}

func newThreadModel() threadModel {
	in := textinput.New()
	in.Placeholder = "message"
	in.CharLimit = model.MaxMessageLen
	return threadModel{input: in}
}

func (m appModel) updateConversations(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		return m.switchSection()
	case "r":
		m.setNotice("refreshing...")
		return m, loadConversationsCmd(m.client)
	case "enter":
		item, ok := m.convs.SelectedItem().(convItem)
		if !ok {
			return m, nil
		}
		m.clearNotice()
		m.view = viewThread
		m.thread = newThreadModel()
		m.thread.other = item.conv.OtherUser
		m.thread.input.Focus()
		return m, loadThreadCmd(m.client, item.conv.OtherUser.ID)
	}

	var cmd tea.Cmd
	m.convs, cmd = m.convs.Update(msg)
	return m, cmd
}

func (m appModel) updateThread(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewConversations
		m.clearNotice()
		return m, loadConversationsCmd(m.client)

	case "enter":
		if m.submitting {
			return m, nil
		}
		text := strings.TrimSpace(m.thread.input.Value())
		if text == "" {
			return m, nil
		}
		m.submitting = true
		m.thread.input.SetValue("")
		return m, sendMessageCmd(m.client, m.thread.other.ID, text)
	}

	var cmd tea.Cmd
	m.thread.input, cmd = m.thread.input.Update(msg)
	return m, cmd
}

func (m appModel) applyConvsLoaded(msg convsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.clearNotice()
	items := make([]list.Item, 0, len(msg.convs))
	for _, c := range msg.convs {
		items = append(items, convItem{conv: c})
	}
	cmd := m.convs.SetItems(items)
	return m, cmd
}

func (m appModel) applyThreadLoaded(msg threadLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	if msg.otherID != m.thread.other.ID {
		return m, nil
	}
	m.thread.msgs = msg.msgs
	return m, nil
}

func (m appModel) applySent(msg sentMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.clearNotice()
	m.thread.msgs = append(m.thread.msgs, *msg.msg)
	return m, nil
}

func (m appModel) viewThread() string {
	var b strings.Builder
	b.WriteString(styleHeader().Render(m.thread.other.FullName()))
	b.WriteString("\n\n")

	// Show the tail that fits above the input line.
	msgs := m.thread.msgs
	limit := m.bodyHeight() - 4
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	for _, msg := range msgs {
		who := msg.Sender.Username
		line := fmt.Sprintf("%s: %s", styleMuted().Render(who), msg.Content)
		if msg.IdeaTitle != "" {
			line += styleMuted().Render(fmt.Sprintf("  (re: %s)", msg.IdeaTitle))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.thread.msgs) == 0 {
		b.WriteString(styleMuted().Render("no messages yet"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.thread.input.View())
	return b.String()
}
