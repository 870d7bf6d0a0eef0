package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
)

func newCommentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Comment commands",
	}
	cmd.AddCommand(newCommentsListCmd(app))
	cmd.AddCommand(newCommentsAddCmd(app))
	cmd.AddCommand(newCommentsDeleteCmd(app))
	cmd.AddCommand(newCommentsReactCmd(app))
	return cmd
}

func newCommentsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <idea-id>",
		Short: "List an idea's comments with reaction counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			comments, err := client.Comments().ListByIdea(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": comments})
		},
	}
}

func newCommentsAddCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add <idea-id>",
		Short: "Comment on an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			content = strings.TrimSpace(content)
			if content == "" {
				return writeErr(cmd, errValidation("content", "must not be empty"))
			}
			if n := utf8.RuneCountInString(content); n > model.MaxCommentLen {
				return writeErr(cmd, errTooLong("content", model.MaxCommentLen, n))
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			comment, err := client.Comments().Create(cmd.Context(), id, content)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": comment})
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Comment text (max 200 chars)")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newCommentsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "comment")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Comments().Delete(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}
}

func newCommentsReactCmd(app *App) *cobra.Command {
	var emoji string

	cmd := &cobra.Command{
		Use:   "react <idea-id> <comment-id>",
		Short: "Toggle an emoji reaction on a comment",
		Long: "Toggle an emoji reaction. A reaction you already gave is removed " +
			"(the server reports the duplicate and the client reacts by removing it).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ideaID, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			commentID, err := parseID(cmd, args[1], "comment")
			if err != nil {
				return err
			}
			valid := false
			for _, e := range engage.Emojis {
				if e == emoji {
					valid = true
					break
				}
			}
			if !valid {
				return writeErr(cmd, errValidation("emoji", "must be one of "+strings.Join(engage.Emojis, ", ")))
			}

			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			tg := engage.ReactionToggler{Svc: client.Comments()}
			outcome, comments, err := tg.Toggle(cmd.Context(), ideaID, commentID, emoji)
			if err != nil {
				return writeErr(cmd, err)
			}
			action := "added"
			if outcome == engage.ReactionRemoved {
				action = "removed"
			}
			return writeOut(cmd, app, map[string]any{
				"data": comments,
				"meta": map[string]any{"reaction": action, "emoji": emoji},
			})
		},
	}

	cmd.Flags().StringVar(&emoji, "emoji", "", "Reaction symbol ("+strings.Join(engage.Emojis, "|")+")")
	_ = cmd.MarkFlagRequired("emoji")
	return cmd
}
