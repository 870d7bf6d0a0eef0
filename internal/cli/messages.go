package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"ideaboard-cli/internal/model"
)

func newMessagesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Direct message commands",
	}
	cmd.AddCommand(newMessagesConversationsCmd(app))
	cmd.AddCommand(newMessagesShowCmd(app))
	cmd.AddCommand(newMessagesSendCmd(app))
	return cmd
}

func newMessagesConversationsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conversations",
		Short: "List conversations (most recent first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			convs, err := client.Messages().Conversations(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": convs})
		},
	}
}

func newMessagesShowCmd(app *App) *cobra.Command {
	var markRead bool

	cmd := &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show the conversation with one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			otherID, err := parseID(cmd, args[0], "user")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			msgs, err := client.Messages().Conversation(cmd.Context(), otherID)
			if err != nil {
				return writeErr(cmd, err)
			}
			if markRead {
				if err := client.Messages().MarkRead(cmd.Context(), otherID); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": msgs})
		},
	}

	cmd.Flags().BoolVar(&markRead, "mark-read", true, "Mark the conversation as read")
	return cmd
}

func newMessagesSendCmd(app *App) *cobra.Command {
	var content string
	var ideaID int64

	cmd := &cobra.Command{
		Use:   "send <user-id>",
		Short: "Send a direct message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipientID, err := parseID(cmd, args[0], "user")
			if err != nil {
				return err
			}
			content = strings.TrimSpace(content)
			if content == "" {
				return writeErr(cmd, errValidation("content", "must not be empty"))
			}
			if n := utf8.RuneCountInString(content); n > model.MaxMessageLen {
				return writeErr(cmd, errTooLong("content", model.MaxMessageLen, n))
			}
			req := model.SendMessageRequest{RecipientID: recipientID, Content: content}
			if ideaID > 0 {
				req.IdeaID = &ideaID
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			msg, err := client.Messages().Send(cmd.Context(), req)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": msg})
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Message text (max 2000 chars)")
	cmd.Flags().Int64Var(&ideaID, "idea", 0, "Attach an idea reference")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
