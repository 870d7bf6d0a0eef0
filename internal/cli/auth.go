package cli

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ideaboard-cli/internal/model"
)

func newLoginCmd(app *App) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" {
				return writeErr(cmd, errValidation("username", "must not be empty"))
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				b, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return writeErr(cmd, err)
				}
				password = string(b)
			}

			client, _, err := app.connect()
			if err != nil {
				return writeErr(cmd, err)
			}
			resp, err := client.Auth().Login(cmd.Context(), username, password)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": resp.User})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var req model.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			for field, v := range map[string]string{
				"username":   req.Username,
				"email":      req.Email,
				"password":   req.Password,
				"first-name": req.FirstName,
				"last-name":  req.LastName,
			} {
				if strings.TrimSpace(v) == "" {
					return writeErr(cmd, errValidation(field, "must not be empty"))
				}
			}
			client, _, err := app.connect()
			if err != nil {
				return writeErr(cmd, err)
			}
			resp, err := client.Auth().Register(cmd.Context(), req)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": resp.User})
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Username")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connect()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Auth().Logout(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "logged out"})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			out := map[string]any{"data": sess.User}
			if exp, ok := sess.TokenExpiresAt(); ok {
				out["tokenExpiresAt"] = exp
			}
			return writeOut(cmd, app, out)
		},
	}
}
