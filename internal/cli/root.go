package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ideaboard-cli/internal/api"
	"ideaboard-cli/internal/config"
	"ideaboard-cli/internal/format"
	"ideaboard-cli/internal/session"
	"ideaboard-cli/internal/tui"
)

type App struct {
	APIBaseURL string
	PrettyJSON bool
	Format     string

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "ideaboard",
		Short:        "Idea board client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  ideaboard

  # Scriptable commands
  ideaboard login --username maya
  ideaboard ideas list
  ideaboard ideas like 42
  ideaboard surveys vote 7 --options 1,3
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if app.APIBaseURL != "" {
			cfg.API.BaseURL = app.APIBaseURL
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.APIBaseURL, "api-url", envOr("IDEABOARD_API_URL", ""), "Backend base URL (overrides config)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("IDEABOARD_FORMAT", "json"), "Output format (json|plain)")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newIdeasCmd(app))
	cmd.AddCommand(newChecklistCmd(app))
	cmd.AddCommand(newCommentsCmd(app))
	cmd.AddCommand(newSurveysCmd(app))
	cmd.AddCommand(newMessagesCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newGroupsCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	client, sess, err := app.connect()
	if err != nil {
		return err
	}
	return tui.Run(app.cfg, client, sess)
}

// connect builds the API client from persisted session state. It does not
// require a login; unauthenticated commands fail server-side with 401.
func (app *App) connect() (*api.Client, *session.Session, error) {
	store, err := session.DefaultStore()
	if err != nil {
		return nil, nil, err
	}
	sess, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return api.New(app.cfg.API, store, sess), sess, nil
}

// connectAuthed is connect plus a local logged-in check, so commands that
// need a viewer identity fail fast with a clear message.
func (app *App) connectAuthed() (*api.Client, *session.Session, error) {
	client, sess, err := app.connect()
	if err != nil {
		return nil, nil, err
	}
	if !sess.LoggedIn() {
		return nil, nil, session.ErrNotLoggedIn
	}
	return client, sess, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
