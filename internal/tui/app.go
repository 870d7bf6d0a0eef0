package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ideaboard-cli/internal/api"
	"ideaboard-cli/internal/config"
	"ideaboard-cli/internal/model"
	"ideaboard-cli/internal/session"
)

type view int

const (
	viewLogin view = iota
	viewIdeas
	viewIdeaForm
	viewIdeaDetail
	viewSurveys
	viewSurveyDetail
	viewConversations
	viewThread
)

type appModel struct {
	cfg    config.Config
	client *api.Client
	sess   *session.Session

	width  int
	height int
	view   view

	// notice is the one-line status/toast at the bottom of every view.
	notice    string
	noticeErr bool

	// submitting disables the controls that would issue a second network
	// call while one is in flight.
	submitting bool

	login   loginModel
	ideas   list.Model
	form    ideaFormModel
	detail  detailModel
	surveys list.Model
	survey  surveyDetailModel
	convs   list.Model
	thread  threadModel
}

func newAppModel(cfg config.Config, client *api.Client, sess *session.Session) appModel {
	m := appModel{
		cfg:     cfg,
		client:  client,
		sess:    sess,
		login:   newLoginModel(),
		ideas:   newListModel("Ideas"),
		surveys: newListModel("Surveys"),
		convs:   newListModel("Messages"),
		thread:  newThreadModel(),
		detail:  newDetailModel(),
	}
	if sess.LoggedIn() {
		m.view = viewIdeas
	} else {
		m.view = viewLogin
	}
	return m
}

func newListModel(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}

func (m appModel) Init() tea.Cmd {
	if m.view == viewIdeas {
		return loadIdeasCmd(m.client, m.ideaFilter())
	}
	return nil
}

func (m appModel) ideaFilter() model.IdeaFilter {
	return model.IdeaFilter{PageRequest: model.PageRequest{Size: m.cfg.TUI.PageSize}}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case sessionExpiredMsg:
		m.view = viewLogin
		m.login = newLoginModel()
		m.submitting = false
		m.setError("session expired, please log in again")
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	return m.updateResult(msg)
}

// updateKey dispatches key input to the active view.
func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewLogin:
		return m.updateLogin(msg)
	case viewIdeas:
		return m.updateIdeas(msg)
	case viewIdeaForm:
		return m.updateIdeaForm(msg)
	case viewIdeaDetail:
		return m.updateDetail(msg)
	case viewSurveys:
		return m.updateSurveys(msg)
	case viewSurveyDetail:
		return m.updateSurveyDetail(msg)
	case viewConversations:
		return m.updateConversations(msg)
	case viewThread:
		return m.updateThread(msg)
	}
	return m, nil
}

// updateResult applies async command results regardless of the active view.
func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		return m.applyLoginResult(msg)
	case ideasLoadedMsg:
		return m.applyIdeasLoaded(msg)
	case ideaCreatedMsg:
		return m.applyIdeaCreated(msg)
	case ideaLoadedMsg:
		return m.applyIdeaLoaded(msg)
	case commentsLoadedMsg:
		return m.applyCommentsLoaded(msg)
	case commentPostedMsg:
		return m.applyCommentPosted(msg)
	case likeResultMsg:
		return m.applyLikeResult(msg)
	case reactionResultMsg:
		return m.applyReactionResult(msg)
	case checklistResultMsg:
		return m.applyChecklistResult(msg)
	case surveysLoadedMsg:
		return m.applySurveysLoaded(msg)
	case voteResultMsg:
		return m.applyVoteResult(msg)
	case convsLoadedMsg:
		return m.applyConvsLoaded(msg)
	case threadLoadedMsg:
		return m.applyThreadLoaded(msg)
	case sentMsg:
		return m.applySent(msg)
	}
	return m, nil
}

// switchSection moves between the three top-level sections with tab.
func (m appModel) switchSection() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewIdeas:
		m.view = viewSurveys
		return m, loadSurveysCmd(m.client, model.PageRequest{Size: m.cfg.TUI.PageSize})
	case viewSurveys:
		m.view = viewConversations
		return m, loadConversationsCmd(m.client)
	default:
		m.view = viewIdeas
		return m, loadIdeasCmd(m.client, m.ideaFilter())
	}
}

func (m *appModel) setError(s string) {
	m.notice = s
	m.noticeErr = true
}

func (m *appModel) setNotice(s string) {
	m.notice = s
	m.noticeErr = false
}

func (m *appModel) clearNotice() {
	m.notice = ""
	m.noticeErr = false
}

func (m *appModel) resizeLists() {
	w, h := m.width, m.bodyHeight()
	m.ideas.SetSize(w, h)
	m.surveys.SetSize(w, h)
	m.convs.SetSize(w, h)
}

// bodyHeight leaves room for the header and footer lines.
func (m appModel) bodyHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m appModel) View() string {
	var body string
	switch m.view {
	case viewLogin:
		body = m.viewLogin()
	case viewIdeas:
		body = m.ideas.View()
	case viewIdeaForm:
		body = m.viewIdeaForm()
	case viewIdeaDetail:
		body = m.viewDetail()
	case viewSurveys:
		body = m.surveys.View()
	case viewSurveyDetail:
		body = m.viewSurveyDetail()
	case viewConversations:
		body = m.convs.View()
	case viewThread:
		body = m.viewThread()
	}
	return m.header() + "\n\n" + body + "\n" + m.footer()
}

func (m appModel) header() string {
	name := styleHeader().Render("idea board")
	who := ""
	if m.sess.User != nil {
		who = styleMuted().Render(fmt.Sprintf("  %s (lvl %d, %d xp)",
			m.sess.User.Username, m.sess.User.Level, m.sess.User.XPPoints))
	}
	tabs := ""
	if m.view != viewLogin {
		tabs = "  " + m.sectionTabs()
	}
	return name + who + tabs
}

func (m appModel) sectionTabs() string {
	labels := []string{"Ideas", "Surveys", "Messages"}
	active := 0
	switch m.view {
	case viewSurveys, viewSurveyDetail:
		active = 1
	case viewConversations, viewThread:
		active = 2
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Render(" " + l + " ")
		} else {
			parts[i] = styleMuted().Render(" " + l + " ")
		}
	}
	return strings.Join(parts, "")
}

func (m appModel) footer() string {
	help := m.helpLine()
	if m.notice == "" {
		return styleMuted().Render(help)
	}
	note := m.notice
	if m.noticeErr {
		note = styleError().Render(note)
	} else {
		note = styleSuccess().Render(note)
	}
	return styleMuted().Render(help) + "\n" + note
}

func (m appModel) helpLine() string {
	switch m.view {
	case viewLogin:
		return "enter: submit  tab: next field  ctrl+c: quit"
	case viewIdeas:
		return "enter: open  n: new  l: like  r: refresh  tab: section  q: quit"
	case viewIdeaForm:
		return "tab: next field  enter: submit  esc: cancel"
	case viewIdeaDetail:
		return "j/k: move  l: like  e/enter: react  c: comment  a: add item  space: toggle item  S: status  tab: panel  esc: back"
	case viewSurveys:
		return "enter: open  r: refresh  tab: section  q: quit"
	case viewSurveyDetail:
		return "j/k: move  space: select  s: submit vote  esc: back"
	case viewConversations:
		return "enter: open  r: refresh  tab: section  q: quit"
	case viewThread:
		return "enter: send  esc: back"
	}
	return ""
}

var _ tea.Model = appModel{}
