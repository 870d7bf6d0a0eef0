package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
)

func newIdeasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Idea commands",
	}
	cmd.AddCommand(newIdeasListCmd(app))
	cmd.AddCommand(newIdeasShowCmd(app))
	cmd.AddCommand(newIdeasCreateCmd(app))
	cmd.AddCommand(newIdeasLikeCmd(app))
	cmd.AddCommand(newIdeasStatusCmd(app))
	cmd.AddCommand(newIdeasDeleteCmd(app))
	cmd.AddCommand(newIdeasFilesCmd(app))
	return cmd
}

func parseID(cmd *cobra.Command, arg, kind string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, writeErr(cmd, errValidation(kind+" id", "must be a positive integer"))
	}
	return id, nil
}

func newIdeasListCmd(app *App) *cobra.Command {
	var filter model.IdeaFilter
	var status string
	var tags string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ideas (paginated, filterable)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			if status != "" {
				filter.Status = model.IdeaStatus(strings.ToUpper(status))
			}
			if tags != "" {
				filter.Tags = strings.Split(tags, ",")
			}
			if filter.Size == 0 {
				filter.Size = app.cfg.TUI.PageSize
			}
			page, err := client.Ideas().List(cmd.Context(), filter)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": page.Content,
				"meta": map[string]any{
					"total": page.TotalElements,
					"page":  page.Number,
					"pages": page.TotalPages,
				},
			})
		},
	}

	cmd.Flags().IntVar(&filter.Page, "page", 0, "Page number (0-based)")
	cmd.Flags().IntVar(&filter.Size, "size", 0, "Page size")
	cmd.Flags().StringVar(&filter.Category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (CONCEPT|IN_PROGRESS|COMPLETED)")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Full-text search")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tag filter")
	cmd.Flags().Int64Var(&filter.AuthorID, "author", 0, "Filter by author id")
	return cmd
}

func newIdeasShowCmd(app *App) *cobra.Command {
	var withComments bool

	cmd := &cobra.Command{
		Use:   "show <idea-id>",
		Short: "Show one idea",
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
			idea, err := client.Ideas().Get(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := map[string]any{"data": idea}
			if withComments {
				comments, err := client.Comments().ListByIdea(cmd.Context(), id)
				if err != nil {
					return writeErr(cmd, err)
				}
				out["comments"] = comments
			}
			return writeOut(cmd, app, out)
		},
	}

	cmd.Flags().BoolVar(&withComments, "comments", false, "Include the comment thread")
	return cmd
}

func newIdeasCreateCmd(app *App) *cobra.Command {
	var req model.IdeaCreateRequest
	var tags string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new idea",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(req.Title) == "" {
				return writeErr(cmd, errValidation("title", "must not be empty"))
			}
			if strings.TrimSpace(req.Description) == "" {
				return writeErr(cmd, errValidation("description", "must not be empty"))
			}
			if tags != "" {
				req.Tags = strings.Split(tags, ",")
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			idea, err := client.Ideas().Create(cmd.Context(), req)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": idea})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Idea title")
	cmd.Flags().StringVar(&req.Description, "description", "", "Idea description (markdown)")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

// newIdeasLikeCmd toggles: it reads the current per-viewer state from the
// server, then issues like or unlike through the engagement rules (author
// self-like is rejected before any mutating call).
func newIdeasLikeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "like <idea-id>",
		Short: "Toggle your like on an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			client, sess, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			idea, err := client.Ideas().Get(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}

			tg := engage.LikeToggler{Svc: client.Ideas()}
			state := engage.LikeState{Liked: idea.IsLikedByCurrentUser, Count: idea.LikeCount}
			state, err = tg.Toggle(cmd.Context(), id, idea.Author.ID, sess.User.ID, state)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"ideaId":               id,
					"isLikedByCurrentUser": state.Liked,
					"likeCount":            state.Count,
				},
			})
		},
	}
	return cmd
}

func newIdeasStatusCmd(app *App) *cobra.Command {
	var status string
	var progress int

	cmd := &cobra.Command{
		Use:   "status <idea-id>",
		Short: "Update status and progress (PM/admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			st := model.IdeaStatus(strings.ToUpper(status))
			switch st {
			case model.StatusConcept, model.StatusInProgress, model.StatusCompleted:
			default:
				return writeErr(cmd, errValidation("status", "must be CONCEPT, IN_PROGRESS or COMPLETED"))
			}
			if progress < 0 || progress > 100 {
				return writeErr(cmd, errValidation("progress", "must be between 0 and 100"))
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			idea, err := client.Ideas().UpdateStatus(cmd.Context(), id, st, progress)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": idea})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress percentage (0-100)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newIdeasDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <idea-id>",
		Short: "Delete an idea (admin)",
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
			if err := client.Ideas().Delete(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}
}

func newIdeasFilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Idea attachment commands",
	}

	upload := &cobra.Command{
		Use:   "upload <idea-id> <path>",
		Short: "Attach a file to an idea",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			defer f.Close()
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			att, err := client.Ideas().UploadFile(cmd.Context(), id, filepath.Base(args[1]), f)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": att})
		},
	}

	var outPath string
	download := &cobra.Command{
		Use:   "download <idea-id> <file-id>",
		Short: "Download an attachment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			fileID, err := parseID(cmd, args[1], "file")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			data, err := client.Ideas().DownloadFile(cmd.Context(), id, fileID)
			if err != nil {
				return writeErr(cmd, err)
			}
			if outPath == "" {
				outPath = "attachment-" + args[1]
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": outPath, "bytes": len(data)}})
		},
	}
	download.Flags().StringVar(&outPath, "out", "", "Output path")

	del := &cobra.Command{
		Use:   "delete <idea-id> <file-id>",
		Short: "Delete an attachment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "idea")
			if err != nil {
				return err
			}
			fileID, err := parseID(cmd, args[1], "file")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Ideas().DeleteFile(cmd.Context(), id, fileID); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}

	cmd.AddCommand(upload, download, del)
	return cmd
}
