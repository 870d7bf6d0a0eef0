package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"ideaboard-cli/internal/model"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User commands",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersMeCmd(app))
	cmd.AddCommand(newUsersShowCmd(app))
	cmd.AddCommand(newUsersLeaderboardCmd(app))
	cmd.AddCommand(newUsersRoleCmd(app))
	cmd.AddCommand(newUsersActiveCmd(app))
	cmd.AddCommand(newUsersBadgesCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			users, err := client.Users().All(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": users})
		},
	}
}

// newUsersMeCmd fetches the live profile (whoami shows the cached copy) and
// the weekly like allowance.
func newUsersMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your profile and remaining weekly likes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			u, err := client.Users().Me(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			likes, err := client.Users().RemainingLikes(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": u, "likes": likes})
		},
	}
}

func newUsersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show one user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "user")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			u, err := client.Users().Get(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": u})
		},
	}
}

func newUsersLeaderboardCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the XP leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			users, err := client.Users().Leaderboard(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": users})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries")
	return cmd
}

func newUsersRoleCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "role <user-id>",
		Short: "Change a user's role (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "user")
			if err != nil {
				return err
			}
			r := model.UserRole(strings.ToUpper(role))
			switch r {
			case model.RoleEmployee, model.RoleProjectManager, model.RoleAdmin:
			default:
				return writeErr(cmd, errValidation("role", "must be EMPLOYEE, PROJECT_MANAGER or ADMIN"))
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Users().UpdateRole(cmd.Context(), id, r); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "updated"})
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "New role")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newUsersActiveCmd(app *App) *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "active <user-id>",
		Short: "Activate or deactivate a user (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "user")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Users().SetActive(cmd.Context(), id, active); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "updated"})
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "Active state")
	return cmd
}

func newUsersBadgesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "badges <user-id>",
		Short: "Show a user's badges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "user")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			badges, err := client.Users().Badges(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": badges})
		},
	}
}
