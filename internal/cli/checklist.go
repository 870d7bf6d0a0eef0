package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Idea checklist commands (author only)",
	}
	cmd.AddCommand(newChecklistAddCmd(app))
	cmd.AddCommand(newChecklistToggleCmd(app))
	cmd.AddCommand(newChecklistDeleteCmd(app))
	return cmd
}

func checklistOut(idea *model.Idea) map[string]any {
	return map[string]any{
		"data": idea.ChecklistItems,
		"meta": map[string]any{
			// Server-authoritative value, already recomputed by the refetch.
			"progressPercentage": idea.ProgressPercentage,
			"localProgress":      engage.Progress(idea.ChecklistItems),
		},
	}
}

func newChecklistAddCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add <idea-id>",
		Short: "Add a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			title = strings.TrimSpace(title)
			if title == "" {
				return writeErr(cmd, errValidation("title", "must not be empty"))
			}
			if n := utf8.RuneCountInString(title); n > model.MaxCommentLen {
				return writeErr(cmd, errTooLong("title", model.MaxCommentLen, n))
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			ed := engage.ChecklistEditor{Svc: client.Ideas()}
			_, idea, err := ed.Add(cmd.Context(), id, title)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, checklistOut(idea))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newChecklistToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <idea-id> <item-id>",
		Short: "Toggle a checklist item's completion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			itemID, err := parseID(cmd, args[1], "item")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			ed := engage.ChecklistEditor{Svc: client.Ideas()}
			_, idea, err := ed.Toggle(cmd.Context(), id, itemID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, checklistOut(idea))
		},
	}
}

func newChecklistDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <idea-id> <item-id>",
		Short: "Delete a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			itemID, err := parseID(cmd, args[1], "item")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			ed := engage.ChecklistEditor{Svc: client.Ideas()}
			idea, err := ed.Delete(cmd.Context(), id, itemID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, checklistOut(idea))
		},
	}
}
