package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
)

type surveyDetailModel struct {
	survey model.Survey
	cursor int
	sel    engage.Selection
}

func (m appModel) updateSurveys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		return m.switchSection()
	case "r":
		m.setNotice("refreshing...")
		return m, loadSurveysCmd(m.client, model.PageRequest{Size: m.cfg.TUI.PageSize})
	case "enter":
		item, ok := m.surveys.SelectedItem().(surveyItem)
		if !ok {
			return m, nil
		}
		m.clearNotice()
		m.view = viewSurveyDetail
		m.survey = surveyDetailModel{
			survey: item.survey,
			sel:    engage.NewSelection(item.survey),
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.surveys, cmd = m.surveys.Update(msg)
	return m, cmd
}

func (m appModel) updateSurveyDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.view = viewSurveys
		m.clearNotice()
		return m, loadSurveysCmd(m.client, model.PageRequest{Size: m.cfg.TUI.PageSize})

	case "j", "down":
		m.survey.cursor = clamp(m.survey.cursor+1, 0, len(m.survey.survey.Options)-1)
		return m, nil
	case "k", "up":
		m.survey.cursor = clamp(m.survey.cursor-1, 0, len(m.survey.survey.Options)-1)
		return m, nil

	case " ", "enter":
		if m.survey.survey.HasVoted {
			m.setError("you have already voted in this survey")
			return m, nil
		}
		opts := m.survey.survey.Options
		if m.survey.cursor >= len(opts) {
			return m, nil
		}
		m.clearNotice()
		m.survey.sel = m.survey.sel.Click(opts[m.survey.cursor].ID)
		return m, nil

	case "s":
		if m.submitting {
			return m, nil
		}
		if !m.survey.sel.CanSubmit(m.survey.survey) {
			if m.survey.survey.HasVoted {
				m.setError("you have already voted in this survey")
			} else {
				m.setError("select at least one option")
			}
			return m, nil
		}
		m.submitting = true
		m.setNotice("submitting vote...")
		return m, submitVoteCmd(m.client, m.survey.survey, m.survey.sel)
	}
	return m, nil
}

func (m appModel) applySurveysLoaded(msg surveysLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.clearNotice()
	items := make([]list.Item, 0, len(msg.page.Content))
	for _, s := range msg.page.Content {
		items = append(items, surveyItem{survey: s})
	}
	cmd := m.surveys.SetItems(items)
	return m, cmd
}

// applyVoteResult replaces the survey wholesale with the server's copy: vote
// counts and hasVoted come back authoritative, nothing is adjusted locally.
func (m appModel) applyVoteResult(msg voteResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.setNotice("vote recorded")
	m.survey.survey = *msg.survey
	m.survey.sel = engage.NewSelection(*msg.survey)
	m.survey.cursor = clamp(m.survey.cursor, 0, len(msg.survey.Options)-1)
	return m, nil
}

func (m appModel) viewSurveyDetail() string {
	s := m.survey.survey
	var b strings.Builder
	b.WriteString(styleHeader().Render(s.Question))
	b.WriteString("\n")
	kind := "pick one"
	if s.AllowMultipleVotes {
		kind = "pick any"
	}
	meta := fmt.Sprintf("%d votes %s %s", s.TotalVotes, glyphs.Bullet, kind)
	if s.HasVoted {
		meta += " " + glyphs.Bullet + " " + styleSuccess().Render("you voted")
	}
	b.WriteString(styleMuted().Render(meta))
	b.WriteString("\n\n")

	for i, opt := range s.Options {
		mark := glyphs.RadioOff
		if s.AllowMultipleVotes {
			mark = glyphs.BoxOff
			if m.survey.sel.Contains(opt.ID) {
				mark = glyphs.BoxOn
			}
		} else if m.survey.sel.Contains(opt.ID) {
			mark = glyphs.RadioOn
		}

		pct := 0
		if s.TotalVotes > 0 {
			pct = opt.VoteCount * 100 / s.TotalVotes
		}
		line := fmt.Sprintf("%s %s  %s %s",
			mark, opt.OptionText, renderBar(pct, 12),
			styleMuted().Render(fmt.Sprintf("%d", opt.VoteCount)))
		if i == m.survey.cursor {
			line = styleSelected().Render(fmt.Sprintf("%s %s", mark, opt.OptionText)) +
				fmt.Sprintf("  %s %s", renderBar(pct, 12), styleMuted().Render(fmt.Sprintf("%d", opt.VoteCount)))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.survey.sel.CanSubmit(s) {
		b.WriteString(styleSuccess().Render("press s to submit"))
	} else if s.HasVoted {
		b.WriteString(styleMuted().Render("voting closed for you"))
	} else {
		b.WriteString(styleMuted().Render("select an option"))
	}
	return b.String()
}
