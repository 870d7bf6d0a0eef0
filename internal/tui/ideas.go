package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"ideaboard-cli/internal/engage"
)

func (m appModel) updateIdeas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		return m.switchSection()
	case "r":
		m.setNotice("refreshing...")
		return m, loadIdeasCmd(m.client, m.ideaFilter())
	case "enter":
		item, ok := m.ideas.SelectedItem().(ideaItem)
		if !ok {
			return m, nil
		}
		m.clearNotice()
		m.view = viewIdeaDetail
		m.detail = newDetailModel()
		return m, tea.Batch(
			loadIdeaCmd(m.client, item.idea.ID),
			loadCommentsCmd(m.client, item.idea.ID),
		)
	case "n":
		m.clearNotice()
		m.view = viewIdeaForm
		m.form = newIdeaFormModel()
		return m, nil
	case "l":
		item, ok := m.ideas.SelectedItem().(ideaItem)
		if !ok || m.submitting || m.sess.User == nil {
			return m, nil
		}
		state := engage.LikeState{Liked: item.idea.IsLikedByCurrentUser, Count: item.idea.LikeCount}
		m.submitting = true
		return m, toggleLikeCmd(m.client, item.idea.ID, item.idea.Author.ID, m.sess.User.ID, state)
	}

	var cmd tea.Cmd
	m.ideas, cmd = m.ideas.Update(msg)
	return m, cmd
}

func (m appModel) applyIdeasLoaded(msg ideasLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.clearNotice()
	items := make([]list.Item, 0, len(msg.page.Content))
	for _, idea := range msg.page.Content {
		items = append(items, ideaItem{idea: idea})
	}
	cmd := m.ideas.SetItems(items)
	return m, cmd
}

func (m appModel) applyLikeResult(msg likeResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	if msg.state.Liked {
		m.setNotice("liked")
	} else {
		m.setNotice("like removed")
	}

	// The toggle adjusts the count by exactly 1 locally; patch whichever
	// copy of the idea is on screen rather than refetching.
	if m.view == viewIdeaDetail && m.detail.idea != nil && m.detail.idea.ID == msg.ideaID {
		m.detail.idea.IsLikedByCurrentUser = msg.state.Liked
		m.detail.idea.LikeCount = msg.state.Count
		return m, nil
	}
	items := m.ideas.Items()
	for i, it := range items {
		item, ok := it.(ideaItem)
		if !ok || item.idea.ID != msg.ideaID {
			continue
		}
		item.idea.IsLikedByCurrentUser = msg.state.Liked
		item.idea.LikeCount = msg.state.Count
		items[i] = item
	}
	cmd := m.ideas.SetItems(items)
	return m, cmd
}
