package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ideaboard-cli/internal/api"
	"ideaboard-cli/internal/config"
	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
	"ideaboard-cli/internal/session"
)

func testApp(t *testing.T, loggedIn bool) appModel {
	t.Helper()
	sess := &session.Session{}
	if loggedIn {
		sess.Token = "tok"
		sess.User = &model.User{ID: 1, Username: "maya", FirstName: "Maya", LastName: "Lin", Level: 2, XPPoints: 120}
	}
	var cfg config.Config
	cfg.TUI.PageSize = 10
	store := session.Store{Dir: t.TempDir()}
	client := api.New(config.APIConfig{BaseURL: "http://127.0.0.1:0/api", Timeout: time.Second}, store, sess)
	m := newAppModel(cfg, client, sess)
	m.width = 80
	m.height = 24
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keySpace() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestNewAppModel_ViewFollowsLoginState(t *testing.T) {
	if m := testApp(t, false); m.view != viewLogin {
		t.Fatalf("expected login view when logged out; got %d", m.view)
	}
	if m := testApp(t, true); m.view != viewIdeas {
		t.Fatalf("expected ideas view when logged in; got %d", m.view)
	}
}

func TestLogin_EmptyFieldsRejected(t *testing.T) {
	m := testApp(t, false)
	mAny, cmd := m.updateLogin(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if cmd != nil {
		t.Fatalf("expected no command for empty credentials")
	}
	if !m.noticeErr || m.notice == "" {
		t.Fatalf("expected validation notice; got %q", m.notice)
	}
}

func TestSessionExpired_ReturnsToLogin(t *testing.T) {
	m := testApp(t, true)
	m.view = viewIdeaDetail
	m.submitting = true
	mAny, _ := m.Update(sessionExpiredMsg{})
	m = mAny.(appModel)
	if m.view != viewLogin {
		t.Fatalf("expected login view after session expiry; got %d", m.view)
	}
	if m.submitting {
		t.Fatalf("expected submitting flag cleared after session expiry")
	}
}

func surveyFixture(multi, voted bool) model.Survey {
	s := model.Survey{
		ID:                 7,
		Question:           "Team lunch?",
		IsActive:           true,
		AllowMultipleVotes: multi,
		HasVoted:           voted,
		TotalVotes:         4,
		Options: []model.SurveyOption{
			{ID: 10, OptionText: "Pizza", VoteCount: 3},
			{ID: 11, OptionText: "Sushi", VoteCount: 1},
			{ID: 12, OptionText: "Tacos", VoteCount: 0},
		},
	}
	if voted {
		s.UserVotedOptionIDs = []int64{10}
	}
	return s
}

func TestSurveySelection_SingleChoiceReplaces(t *testing.T) {
	m := testApp(t, true)
	m.view = viewSurveyDetail
	s := surveyFixture(false, false)
	m.survey = surveyDetailModel{survey: s, sel: engage.NewSelection(s)}

	mAny, _ := m.updateSurveyDetail(keySpace())
	m = mAny.(appModel)
	if !m.survey.sel.Contains(10) {
		t.Fatalf("expected first option selected")
	}

	mAny, _ = m.updateSurveyDetail(keyRune('j'))
	m = mAny.(appModel)
	mAny, _ = m.updateSurveyDetail(keySpace())
	m = mAny.(appModel)
	if m.survey.sel.Contains(10) || !m.survey.sel.Contains(11) {
		t.Fatalf("expected second option to replace first; got %v", m.survey.sel.IDs())
	}
}

func TestSurveySelection_MultiChoiceToggles(t *testing.T) {
	m := testApp(t, true)
	m.view = viewSurveyDetail
	s := surveyFixture(true, false)
	m.survey = surveyDetailModel{survey: s, sel: engage.NewSelection(s)}

	mAny, _ := m.updateSurveyDetail(keySpace())
	m = mAny.(appModel)
	mAny, _ = m.updateSurveyDetail(keyRune('j'))
	m = mAny.(appModel)
	mAny, _ = m.updateSurveyDetail(keySpace())
	m = mAny.(appModel)
	if got := m.survey.sel.IDs(); len(got) != 2 {
		t.Fatalf("expected two selected options; got %v", got)
	}

	// Clicking the first option again removes it.
	mAny, _ = m.updateSurveyDetail(keyRune('k'))
	m = mAny.(appModel)
	mAny, _ = m.updateSurveyDetail(keySpace())
	m = mAny.(appModel)
	if m.survey.sel.Contains(10) || !m.survey.sel.Contains(11) {
		t.Fatalf("expected toggle-off of first option; got %v", m.survey.sel.IDs())
	}
}

func TestSurveySubmit_RejectsEmptyAndVoted(t *testing.T) {
	m := testApp(t, true)
	m.view = viewSurveyDetail
	s := surveyFixture(false, false)
	m.survey = surveyDetailModel{survey: s, sel: engage.NewSelection(s)}

	mAny, cmd := m.updateSurveyDetail(keyRune('s'))
	m = mAny.(appModel)
	if cmd != nil {
		t.Fatalf("expected no vote command with empty selection")
	}
	if !strings.Contains(m.notice, "select at least one option") {
		t.Fatalf("unexpected notice %q", m.notice)
	}

	voted := surveyFixture(false, true)
	m.survey = surveyDetailModel{survey: voted, sel: engage.NewSelection(voted)}
	mAny, cmd = m.updateSurveyDetail(keySpace())
	m = mAny.(appModel)
	if cmd != nil {
		t.Fatalf("expected no command when clicking a voted survey")
	}
	if !strings.Contains(m.notice, "already voted") {
		t.Fatalf("unexpected notice %q", m.notice)
	}
}

func TestApplyVoteResult_ReplacesSurveyWholesale(t *testing.T) {
	m := testApp(t, true)
	m.view = viewSurveyDetail
	s := surveyFixture(false, false)
	m.survey = surveyDetailModel{survey: s, sel: engage.NewSelection(s).Click(11)}
	m.submitting = true

	updated := surveyFixture(false, true)
	updated.TotalVotes = 5
	updated.Options[1].VoteCount = 2
	updated.UserVotedOptionIDs = []int64{11}

	mAny, _ := m.applyVoteResult(voteResultMsg{survey: &updated})
	m = mAny.(appModel)
	if m.submitting {
		t.Fatalf("expected submitting flag cleared")
	}
	if !m.survey.survey.HasVoted || m.survey.survey.TotalVotes != 5 {
		t.Fatalf("expected server survey to replace local state; got %+v", m.survey.survey)
	}
	if !m.survey.sel.Contains(11) {
		t.Fatalf("expected selection reseeded from confirmed votes")
	}
}

func TestViewSurveyDetail_ShowsVotedState(t *testing.T) {
	m := testApp(t, true)
	m.view = viewSurveyDetail
	s := surveyFixture(false, true)
	m.survey = surveyDetailModel{survey: s, sel: engage.NewSelection(s)}

	out := stripANSIEscapes(m.viewSurveyDetail())
	if !strings.Contains(out, "you voted") {
		t.Fatalf("expected voted marker in view:\n%s", out)
	}
	if !strings.Contains(out, "voting closed for you") {
		t.Fatalf("expected closed hint in view:\n%s", out)
	}
}

func TestApplyLikeResult_PatchesDetailIdea(t *testing.T) {
	m := testApp(t, true)
	m.view = viewIdeaDetail
	m.detail.idea = &model.Idea{ID: 42, LikeCount: 3, Author: model.User{ID: 2}}

	mAny, _ := m.applyLikeResult(likeResultMsg{
		ideaID: 42,
		state:  engage.LikeState{Liked: true, Count: 4},
	})
	m = mAny.(appModel)
	if !m.detail.idea.IsLikedByCurrentUser || m.detail.idea.LikeCount != 4 {
		t.Fatalf("expected like patch applied; got %+v", m.detail.idea)
	}
}

func TestViewDetail_ChecklistProgressIsLocal(t *testing.T) {
	m := testApp(t, true)
	m.view = viewIdeaDetail
	m.detail.idea = &model.Idea{
		ID:     42,
		Title:  "Better onboarding",
		Author: model.User{ID: 2, FirstName: "Ana", LastName: "Kos"},
		Status: model.StatusInProgress,
		// Stale server value; the panel header computes from the items.
		ProgressPercentage: 0,
		ChecklistItems: []model.ChecklistItem{
			{ID: 1, Title: "draft", IsCompleted: true},
			{ID: 2, Title: "review", IsCompleted: true},
			{ID: 3, Title: "ship"},
		},
	}

	out := stripANSIEscapes(m.viewDetail())
	if !strings.Contains(out, "Checklist (67%)") {
		t.Fatalf("expected local checklist progress in view:\n%s", out)
	}
}

func TestDetail_ChecklistEditRequiresAuthor(t *testing.T) {
	m := testApp(t, true)
	m.view = viewIdeaDetail
	m.detail.idea = &model.Idea{
		ID:     42,
		Author: model.User{ID: 99}, // not the viewer
		ChecklistItems: []model.ChecklistItem{
			{ID: 1, Title: "draft"},
		},
	}
	m.detail.panel = panelChecklist

	mAny, cmd := m.updateDetail(keySpace())
	m = mAny.(appModel)
	if cmd != nil {
		t.Fatalf("expected no toggle command for a non-author")
	}
	if !strings.Contains(m.notice, "only the author") {
		t.Fatalf("unexpected notice %q", m.notice)
	}
}

func TestRenderBar_Bounds(t *testing.T) {
	for _, pct := range []int{-5, 0, 50, 100, 140} {
		out := stripANSIEscapes(renderBar(pct, 10))
		if n := len([]rune(out)); n != 10 {
			t.Fatalf("renderBar(%d, 10) width = %d; want 10", pct, n)
		}
	}
}
