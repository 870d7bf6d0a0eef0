package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ideaboard-cli/internal/engage"
	"ideaboard-cli/internal/model"
)

func newSurveysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surveys",
		Short: "Survey commands",
	}
	cmd.AddCommand(newSurveysListCmd(app))
	cmd.AddCommand(newSurveysCreateCmd(app))
	cmd.AddCommand(newSurveysVoteCmd(app))
	cmd.AddCommand(newSurveysDeleteCmd(app))
	return cmd
}

func newSurveysListCmd(app *App) *cobra.Command {
	var page model.PageRequest

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List surveys (paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			if page.Size == 0 {
				page.Size = app.cfg.TUI.PageSize
			}
			out, err := client.Surveys().List(cmd.Context(), page)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": out.Content,
				"meta": map[string]any{"total": out.TotalElements, "page": out.Number},
			})
		},
	}

	cmd.Flags().IntVar(&page.Page, "page", 0, "Page number (0-based)")
	cmd.Flags().IntVar(&page.Size, "size", 0, "Page size")
	return cmd
}

func newSurveysCreateCmd(app *App) *cobra.Command {
	var question string
	var options []string
	var multiple bool
	var anonymous bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a survey",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(question) == "" {
				return writeErr(cmd, errValidation("question", "must not be empty"))
			}
			cleaned := make([]string, 0, len(options))
			for _, o := range options {
				if s := strings.TrimSpace(o); s != "" {
					cleaned = append(cleaned, s)
				}
			}
			if len(cleaned) < 2 {
				return writeErr(cmd, errValidation("options", "need at least two non-empty options"))
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			survey, err := client.Surveys().Create(cmd.Context(), model.SurveyCreateRequest{
				Question:           question,
				Options:            cleaned,
				AllowMultipleVotes: multiple,
				IsAnonymous:        anonymous,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": survey})
		},
	}

	cmd.Flags().StringVar(&question, "question", "", "Survey question")
	cmd.Flags().StringArrayVar(&options, "option", nil, "Answer option (repeatable)")
	cmd.Flags().BoolVar(&multiple, "multiple", false, "Allow selecting multiple options")
	cmd.Flags().BoolVar(&anonymous, "anonymous", false, "Hide voter identities")
	_ = cmd.MarkFlagRequired("question")
	return cmd
}

func newSurveysVoteCmd(app *App) *cobra.Command {
	var optionsCSV string

	cmd := &cobra.Command{
		Use:   "vote <survey-id>",
		Short: "Vote in a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "survey")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			// Fetch first so hasVoted / option validity / the multi flag are
			// checked locally before any vote call goes out. The survey can
			// sit on any page, so walk the pages until it turns up.
			var survey *model.Survey
			req := model.PageRequest{Size: app.cfg.TUI.PageSize}
			for {
				page, err := client.Surveys().List(cmd.Context(), req)
				if err != nil {
					return writeErr(cmd, err)
				}
				for i := range page.Content {
					if page.Content[i].ID == id {
						survey = &page.Content[i]
						break
					}
				}
				if survey != nil || page.Last || len(page.Content) == 0 {
					break
				}
				req.Page++
			}
			if survey == nil {
				return writeErr(cmd, errValidation("survey id", "no such survey"))
			}

			sel := engage.NewSelection(model.Survey{AllowMultipleVotes: survey.AllowMultipleVotes})
			for _, part := range strings.Split(optionsCSV, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				optID, err := strconv.ParseInt(part, 10, 64)
				if err != nil {
					return writeErr(cmd, errValidation("options", "must be comma-separated option ids"))
				}
				sel = sel.Click(optID)
			}

			sub := engage.VoteSubmitter{Svc: client.Surveys()}
			updated, err := sub.Submit(cmd.Context(), *survey, sel)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": updated})
		},
	}

	cmd.Flags().StringVar(&optionsCSV, "options", "", "Comma-separated option ids")
	_ = cmd.MarkFlagRequired("options")
	return cmd
}

func newSurveysDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <survey-id>",
		Short: "Delete a survey (creator or admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "survey")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Surveys().Delete(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}
}
