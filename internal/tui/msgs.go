package tui

import (
	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
)

// Completion messages delivered back into the event loop by async commands.
// Every network call runs as a tea.Cmd; state changes only ever happen in
// Update, in completion order.

type sessionExpiredMsg struct{}

type loginResultMsg struct {
	resp *model.AuthResponse
	err  error
}

type ideasLoadedMsg struct {
	page *model.Page[model.Idea]
	err  error
}

type ideaCreatedMsg struct {
	idea *model.Idea
	err  error
}

type ideaLoadedMsg struct {
	idea *model.Idea
	err  error
}

type commentsLoadedMsg struct {
	ideaID   int64
	comments []model.Comment
	err      error
}

type commentPostedMsg struct {
	comment *model.Comment
	err     error
}

type likeResultMsg struct {
	ideaID int64
	state  engage.LikeState
	err    error
}

type reactionResultMsg struct {
	outcome  engage.ReactionOutcome
	comments []model.Comment
	err      error
}

type checklistResultMsg struct {
	idea *model.Idea
	err  error
}

type surveysLoadedMsg struct {
	page *model.Page[model.Survey]
	err  error
}

type voteResultMsg struct {
	survey *model.Survey
	err    error
}

type convsLoadedMsg struct {
	convs []model.Conversation
	err   error
}

type threadLoadedMsg struct {
	otherID int64
	msgs    []model.Message
	err     error
}

type sentMsg struct {
	msg *model.Message
	err error
}
