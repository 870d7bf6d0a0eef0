package cli

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show board-wide statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.connectAuthed()
			if err != nil {
				return writeErr(cmd, err)
			}
			stats, err := client.Dashboard().Stats(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			out := map[string]any{"data": stats}
			if top > 0 {
				ideas, err := client.Dashboard().TopIdeas(cmd.Context(), top)
				if err != nil {
					return writeErr(cmd, err)
				}
				out["topIdeas"] = ideas
			}
			return writeOut(cmd, app, out)
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Also show the top N ideas of the week")
	return cmd
}
