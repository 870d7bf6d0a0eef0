package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"ideaboard-cli/internal/model"
)

func newGroupsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Idea group commands",
	}
	cmd.AddCommand(newGroupsListCmd(app))
	cmd.AddCommand(newGroupsJoinCmd(app))
	cmd.AddCommand(newGroupsLeaveCmd(app))
	cmd.AddCommand(newGroupsMessagesCmd(app))
	cmd.AddCommand(newGroupsSendCmd(app))
	return cmd
}

func newGroupsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups you belong to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			groups, err := client.Groups().ListMine(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": groups})
		},
	}
}

func newGroupsJoinCmd(app *App) *cobra.Command {
	var byIdea bool

	cmd := &cobra.Command{
		Use:   "join <group-id|idea-id>",
		Short: "Join a group (directly or via its idea)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "group")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			var g *model.Group
			if byIdea {
				g, err = client.Groups().JoinByIdea(cmd.Context(), id)
			} else {
				g, err = client.Groups().Join(cmd.Context(), id)
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": g})
		},
	}

	cmd.Flags().BoolVar(&byIdea, "idea", false, "Interpret the argument as an idea id")
	return cmd
}

func newGroupsLeaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "leave <group-id>",
		Short: "Leave a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "group")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Groups().Leave(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "left"})
		},
	}
}

func newGroupsMessagesCmd(app *App) *cobra.Command {
	var markRead bool

	cmd := &cobra.Command{
		Use:   "messages <group-id>",
		Short: "Show a group's messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "group")
			if err != nil {
				return err
			}
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			msgs, err := client.Groups().Messages(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			if markRead {
				if err := client.Groups().MarkAllRead(cmd.Context(), id); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": msgs})
		},
	}

	cmd.Flags().BoolVar(&markRead, "mark-read", true, "Mark the group's messages as read")
	return cmd
}

func newGroupsSendCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "send <group-id>",
		Short: "Send a message to a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0], "group")
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
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			msg, err := client.Groups().SendMessage(cmd.Context(), id, content)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": msg})
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Message text (max 2000 chars)")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
