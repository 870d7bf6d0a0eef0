package tui

import (
	"fmt"

	"ideaboard-cli/internal/model"
)

// list.Item adapters for the three section listings.

type ideaItem struct {
	idea model.Idea
}

func (i ideaItem) Title() string {
	like := glyphs.Unliked
	if i.idea.IsLikedByCurrentUser {
		like = glyphs.Liked
	}
	return fmt.Sprintf("%s %s", styleStatus(string(i.idea.Status)).Render(glyphs.Bullet), i.idea.Title) +
		styleMuted().Render(fmt.Sprintf("  %s %d", like, i.idea.LikeCount))
}

func (i ideaItem) Description() string {
	return fmt.Sprintf("%s %s %d comments %s %s",
		i.idea.Author.Username, glyphs.Bullet, i.idea.CommentCount, glyphs.Bullet, i.idea.Category)
}

func (i ideaItem) FilterValue() string { return i.idea.Title }

type surveyItem struct {
	survey model.Survey
}

func (s surveyItem) Title() string {
	mark := ""
	if s.survey.HasVoted {
		mark = "  " + styleSuccess().Render("voted")
	}
	return s.survey.Question + mark
}

func (s surveyItem) Description() string {
	kind := "single choice"
	if s.survey.AllowMultipleVotes {
		kind = "multiple choice"
	}
	return fmt.Sprintf("%d votes %s %s", s.survey.TotalVotes, glyphs.Bullet, kind)
}

func (s surveyItem) FilterValue() string { return s.survey.Question }

type convItem struct {
	conv model.Conversation
}

func (c convItem) Title() string {
	t := c.conv.OtherUser.FullName()
	if c.conv.UnreadCount > 0 {
		t += "  " + styleSuccess().Render(fmt.Sprintf("%s %d", glyphs.Unread, c.conv.UnreadCount))
	}
	return t
}

func (c convItem) Description() string {
	return c.conv.LastMessage.Content
}

func (c convItem) FilterValue() string { return c.conv.OtherUser.Username }
