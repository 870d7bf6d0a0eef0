package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
)

type detailPanel int

const (
	panelComments detailPanel = iota
	panelChecklist
)

type inputMode int

const (
	inputNone inputMode = iota
	inputComment
	inputChecklist
)

type detailModel struct {
	idea     *model.Idea
	comments []model.Comment

	panel           detailPanel
	commentCursor   int
	checklistCursor int
	emojiCursor     int

	mode  inputMode
	input textinput.Model
}

func newDetailModel() detailModel {
	in := textinput.New()
	in.CharLimit = model.MaxCommentLen
	return detailModel{input: in}
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail.mode != inputNone {
		return m.updateDetailInput(msg)
	}

	switch msg.String() {
	case "esc", "q":
		m.view = viewIdeas
		m.clearNotice()
		return m, loadIdeasCmd(m.client, m.ideaFilter())

	case "tab":
		if m.detail.panel == panelComments {
			m.detail.panel = panelChecklist
		} else {
			m.detail.panel = panelComments
		}
		return m, nil

	case "j", "down":
		m.detail.moveCursor(1)
		return m, nil
	case "k", "up":
		m.detail.moveCursor(-1)
		return m, nil

	case "left", "h":
		if m.detail.emojiCursor > 0 {
			m.detail.emojiCursor--
		}
		return m, nil
	case "right":
		if m.detail.emojiCursor < len(engage.Emojis)-1 {
			m.detail.emojiCursor++
		}
		return m, nil

	case "l":
		idea := m.detail.idea
		if idea == nil || m.submitting || m.sess.User == nil {
			return m, nil
		}
		state := engage.LikeState{Liked: idea.IsLikedByCurrentUser, Count: idea.LikeCount}
		m.submitting = true
		return m, toggleLikeCmd(m.client, idea.ID, idea.Author.ID, m.sess.User.ID, state)

	case "e", "enter":
		if m.detail.panel != panelComments || m.submitting || m.detail.idea == nil {
			return m, nil
		}
		if m.detail.commentCursor >= len(m.detail.comments) {
			return m, nil
		}
		comment := m.detail.comments[m.detail.commentCursor]
		emoji := engage.Emojis[m.detail.emojiCursor]
		m.submitting = true
		return m, toggleReactionCmd(m.client, m.detail.idea.ID, comment.ID, emoji)

	case "c":
		m.detail.mode = inputComment
		m.detail.input.CharLimit = model.MaxCommentLen
		m.detail.input.Placeholder = "comment"
		m.detail.input.SetValue("")
		m.detail.input.Focus()
		return m, nil

	case "a":
		if !m.viewerIsAuthor() {
			m.setError("only the author can edit the checklist")
			return m, nil
		}
		m.detail.mode = inputChecklist
		m.detail.input.CharLimit = 120
		m.detail.input.Placeholder = "checklist item"
		m.detail.input.SetValue("")
		m.detail.input.Focus()
		return m, nil

	case " ":
		if m.detail.panel != panelChecklist || m.submitting || m.detail.idea == nil {
			return m, nil
		}
		if !m.viewerIsAuthor() {
			m.setError("only the author can edit the checklist")
			return m, nil
		}
		items := m.detail.idea.ChecklistItems
		if m.detail.checklistCursor >= len(items) {
			return m, nil
		}
		m.submitting = true
		return m, toggleChecklistCmd(m.client, m.detail.idea.ID, items[m.detail.checklistCursor].ID)

	case "S":
		idea := m.detail.idea
		if idea == nil || m.submitting {
			return m, nil
		}
		if m.sess.User == nil ||
			(m.sess.User.Role != model.RoleProjectManager && m.sess.User.Role != model.RoleAdmin) {
			m.setError("only project managers can change status")
			return m, nil
		}
		m.submitting = true
		return m, updateStatusCmd(m.client, idea.ID, nextStatus(idea.Status), idea.ProgressPercentage)

	case "x":
		if m.detail.panel != panelChecklist || m.submitting || m.detail.idea == nil {
			return m, nil
		}
		if !m.viewerIsAuthor() {
			m.setError("only the author can edit the checklist")
			return m, nil
		}
		items := m.detail.idea.ChecklistItems
		if m.detail.checklistCursor >= len(items) {
			return m, nil
		}
		m.submitting = true
		return m, deleteChecklistCmd(m.client, m.detail.idea.ID, items[m.detail.checklistCursor].ID)
	}

	return m, nil
}

func (m appModel) updateDetailInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail.mode = inputNone
		m.detail.input.Blur()
		return m, nil

	case "enter":
		if m.submitting || m.detail.idea == nil {
			return m, nil
		}
		text := strings.TrimSpace(m.detail.input.Value())
		if text == "" {
			return m, nil
		}
		mode := m.detail.mode
		m.detail.mode = inputNone
		m.detail.input.Blur()
		m.submitting = true
		if mode == inputComment {
			return m, postCommentCmd(m.client, m.detail.idea.ID, text)
		}
		return m, addChecklistCmd(m.client, m.detail.idea.ID, text)
	}

	var cmd tea.Cmd
	m.detail.input, cmd = m.detail.input.Update(msg)
	return m, cmd
}

func (m appModel) viewerIsAuthor() bool {
	return m.detail.idea != nil && m.sess.User != nil && m.detail.idea.Author.ID == m.sess.User.ID
}

func (d *detailModel) moveCursor(delta int) {
	if d.panel == panelComments {
		d.commentCursor = clamp(d.commentCursor+delta, 0, len(d.comments)-1)
		return
	}
	n := 0
	if d.idea != nil {
		n = len(d.idea.ChecklistItems)
	}
	d.checklistCursor = clamp(d.checklistCursor+delta, 0, n-1)
}

func nextStatus(s model.IdeaStatus) model.IdeaStatus {
	switch s {
	case model.StatusConcept:
		return model.StatusInProgress
	case model.StatusInProgress:
		return model.StatusCompleted
	default:
		return model.StatusConcept
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m appModel) applyIdeaLoaded(msg ideaLoadedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.detail.idea = msg.idea
	m.detail.checklistCursor = clamp(m.detail.checklistCursor, 0, len(msg.idea.ChecklistItems)-1)
	return m, nil
}

func (m appModel) applyCommentsLoaded(msg commentsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.detail.comments = msg.comments
	m.detail.commentCursor = clamp(m.detail.commentCursor, 0, len(msg.comments)-1)
	return m, nil
}

func (m appModel) applyCommentPosted(msg commentPostedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.setNotice("comment posted")
	if m.detail.idea == nil {
		return m, nil
	}
	return m, loadCommentsCmd(m.client, m.detail.idea.ID)
}

func (m appModel) applyReactionResult(msg reactionResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	if msg.outcome == engage.ReactionAdded {
		m.setNotice("reaction added")
	} else {
		m.setNotice("reaction removed")
	}
	m.detail.comments = msg.comments
	m.detail.commentCursor = clamp(m.detail.commentCursor, 0, len(msg.comments)-1)
	return m, nil
}

func (m appModel) applyChecklistResult(msg checklistResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.clearNotice()
	if msg.idea != nil {
		m.detail.idea = msg.idea
		m.detail.checklistCursor = clamp(m.detail.checklistCursor, 0, len(msg.idea.ChecklistItems)-1)
	}
	return m, nil
}

func (m appModel) viewDetail() string {
	idea := m.detail.idea
	if idea == nil {
		return styleMuted().Render("loading...")
	}

	var b strings.Builder
	b.WriteString(styleHeader().Render(idea.Title))
	b.WriteString("\n")

	like := glyphs.Unliked
	if idea.IsLikedByCurrentUser {
		like = glyphs.Liked
	}
	b.WriteString(fmt.Sprintf("%s %s %s %s %d  %s by %s\n",
		styleStatus(string(idea.Status)).Render(string(idea.Status)),
		renderBar(idea.ProgressPercentage, 20),
		styleMuted().Render(fmt.Sprintf("%d%%", idea.ProgressPercentage)),
		like, idea.LikeCount,
		glyphs.Bullet, idea.Author.FullName()))

	if desc := renderMarkdown(idea.Description, m.width-2); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewChecklistPanel(idea))
	b.WriteString("\n")
	b.WriteString(m.viewCommentsPanel())

	if m.detail.mode != inputNone {
		label := "comment:"
		if m.detail.mode == inputChecklist {
			label = "new item:"
		}
		b.WriteString("\n")
		b.WriteString(renderInputLine(label, m.detail.input.Value(), max(m.width-2, 20), true))
	}
	return b.String()
}

func (m appModel) viewChecklistPanel(idea *model.Idea) string {
	items := idea.ChecklistItems
	title := fmt.Sprintf("Checklist (%d%%)", engage.Progress(items))
	st := styleHeader()
	if m.detail.panel == panelChecklist {
		st = st.Foreground(colorAccent)
	}
	var b strings.Builder
	b.WriteString(st.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(styleMuted().Render("no items"))
		b.WriteString("\n")
		return b.String()
	}
	for i, it := range items {
		mark := glyphs.CheckTodo
		if it.IsCompleted {
			mark = glyphs.CheckDone
		}
		line := fmt.Sprintf("%s %s", mark, it.Title)
		if m.detail.panel == panelChecklist && i == m.detail.checklistCursor {
			line = styleSelected().Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) viewCommentsPanel() string {
	st := styleHeader()
	if m.detail.panel == panelComments {
		st = st.Foreground(colorAccent)
	}
	var b strings.Builder
	b.WriteString(st.Render(fmt.Sprintf("Comments (%d)", len(m.detail.comments))))
	b.WriteString("  ")
	b.WriteString(m.viewEmojiBar())
	b.WriteString("\n")
	if len(m.detail.comments) == 0 {
		b.WriteString(styleMuted().Render("no comments yet"))
		b.WriteString("\n")
		return b.String()
	}
	for i, c := range m.detail.comments {
		line := fmt.Sprintf("%s: %s", c.Author.Username, c.Content)
		if rs := renderReactions(c.Reactions); rs != "" {
			line += "  " + rs
		}
		if m.detail.panel == panelComments && i == m.detail.commentCursor {
			line = styleSelected().Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) viewEmojiBar() string {
	parts := make([]string, len(engage.Emojis))
	for i, e := range engage.Emojis {
		g := engage.EmojiGlyphs[e]
		if i == m.detail.emojiCursor {
			parts[i] = lipgloss.NewStyle().Background(colorControlBg).Render(" " + g + " ")
		} else {
			parts[i] = " " + g + " "
		}
	}
	return strings.Join(parts, "")
}

func renderReactions(rs []model.CommentReaction) string {
	if len(rs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.Count == 0 {
			continue
		}
		g := engage.EmojiGlyphs[r.Emoji]
		if g == "" {
			g = r.Emoji
		}
		parts = append(parts, fmt.Sprintf("%s %d", g, r.Count))
	}
	return styleMuted().Render(strings.Join(parts, " "))
}

func renderBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	fill := pct * width / 100
	return lipgloss.NewStyle().Foreground(colorProgressFill).Render(strings.Repeat(glyphs.BarFill, fill)) +
		lipgloss.NewStyle().Foreground(colorProgressEmpty).Render(strings.Repeat(glyphs.BarEmpty, width-fill))
}
