package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ideaboard-cli/internal/api"
	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
)

func loginCmd(client *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Auth().Login(context.Background(), username, password)
		return loginResultMsg{resp: resp, err: err}
	}
}

func loadIdeasCmd(client *api.Client, filter model.IdeaFilter) tea.Cmd {
	return func() tea.Msg {
		page, err := client.Ideas().List(context.Background(), filter)
		return ideasLoadedMsg{page: page, err: err}
	}
}

func createIdeaCmd(client *api.Client, req model.IdeaCreateRequest) tea.Cmd {
	return func() tea.Msg {
		idea, err := client.Ideas().Create(context.Background(), req)
		return ideaCreatedMsg{idea: idea, err: err}
	}
}

func updateStatusCmd(client *api.Client, ideaID int64, status model.IdeaStatus, progress int) tea.Cmd {
	return func() tea.Msg {
		idea, err := client.Ideas().UpdateStatus(context.Background(), ideaID, status, progress)
		return ideaLoadedMsg{idea: idea, err: err}
	}
}

func loadIdeaCmd(client *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		idea, err := client.Ideas().Get(context.Background(), id)
		return ideaLoadedMsg{idea: idea, err: err}
	}
}

func loadCommentsCmd(client *api.Client, ideaID int64) tea.Cmd {
	return func() tea.Msg {
		comments, err := client.Comments().ListByIdea(context.Background(), ideaID)
		return commentsLoadedMsg{ideaID: ideaID, comments: comments, err: err}
	}
}

func postCommentCmd(client *api.Client, ideaID int64, content string) tea.Cmd {
	return func() tea.Msg {
		comment, err := client.Comments().Create(context.Background(), ideaID, content)
		return commentPostedMsg{comment: comment, err: err}
	}
}

func toggleLikeCmd(client *api.Client, ideaID, authorID, viewerID int64, s engage.LikeState) tea.Cmd {
	return func() tea.Msg {
		t := engage.LikeToggler{Svc: client.Ideas()}
		next, err := t.Toggle(context.Background(), ideaID, authorID, viewerID, s)
		return likeResultMsg{ideaID: ideaID, state: next, err: err}
	}
}

func toggleReactionCmd(client *api.Client, ideaID, commentID int64, emoji string) tea.Cmd {
	return func() tea.Msg {
		t := engage.ReactionToggler{Svc: client.Comments()}
		outcome, comments, err := t.Toggle(context.Background(), ideaID, commentID, emoji)
		return reactionResultMsg{outcome: outcome, comments: comments, err: err}
	}
}

func toggleChecklistCmd(client *api.Client, ideaID, itemID int64) tea.Cmd {
	return func() tea.Msg {
		e := engage.ChecklistEditor{Svc: client.Ideas()}
		_, idea, err := e.Toggle(context.Background(), ideaID, itemID)
		return checklistResultMsg{idea: idea, err: err}
	}
}

func addChecklistCmd(client *api.Client, ideaID int64, title string) tea.Cmd {
	return func() tea.Msg {
		e := engage.ChecklistEditor{Svc: client.Ideas()}
		_, idea, err := e.Add(context.Background(), ideaID, title)
		return checklistResultMsg{idea: idea, err: err}
	}
}

func deleteChecklistCmd(client *api.Client, ideaID, itemID int64) tea.Cmd {
	return func() tea.Msg {
		e := engage.ChecklistEditor{Svc: client.Ideas()}
		idea, err := e.Delete(context.Background(), ideaID, itemID)
		return checklistResultMsg{idea: idea, err: err}
	}
}

func loadSurveysCmd(client *api.Client, page model.PageRequest) tea.Cmd {
	return func() tea.Msg {
		out, err := client.Surveys().List(context.Background(), page)
		return surveysLoadedMsg{page: out, err: err}
	}
}

func submitVoteCmd(client *api.Client, survey model.Survey, sel engage.Selection) tea.Cmd {
	return func() tea.Msg {
		v := engage.VoteSubmitter{Svc: client.Surveys()}
		updated, err := v.Submit(context.Background(), survey, sel)
		return voteResultMsg{survey: updated, err: err}
	}
}

func loadConversationsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		convs, err := client.Messages().Conversations(context.Background())
		return convsLoadedMsg{convs: convs, err: err}
	}
}

func loadThreadCmd(client *api.Client, otherID int64) tea.Cmd {
	return func() tea.Msg {
		msgs, err := client.Messages().Conversation(context.Background(), otherID)
		if err == nil {
			// Opening a thread marks it read; a failure here is non-fatal.
			_ = client.Messages().MarkRead(context.Background(), otherID)
		}
		return threadLoadedMsg{otherID: otherID, msgs: msgs, err: err}
	}
}

func sendMessageCmd(client *api.Client, recipientID int64, content string) tea.Cmd {
	return func() tea.Msg {
		msg, err := client.Messages().Send(context.Background(), model.SendMessageRequest{
			RecipientID: recipientID,
			Content:     content,
		})
		return sentMsg{msg: msg, err: err}
	}
}
