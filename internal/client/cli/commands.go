package cli

import (
	"strconv"

	"github.com/dmitrijs2005/storyku/internal/buildinfo"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the storyku command tree around app. Without a
// subcommand the interactive REPL starts.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "storyku",
		Short:         "Terminal client for the Storyku story manager",
		Long:          "Browse, write and publish stories and chapters on a Storyku server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			app.Run(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show the first page of the management list",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.List(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "dashboard",
			Short: "Show published/draft counters and the story grid",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Dashboard(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a story with its chapters",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
				return app.Show(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)

	return root
}
