package commands

import (
	"github.com/simonhull/backforge"
	"github.com/simonhull/backforge/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the backforge CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "backforge",
		Short: "Scaffold Node.js backend projects from preset archetypes",
		Long: `Backforge materializes ready-to-run Node.js backend boilerplate.

Pick one of five archetypes (basic, chatapp, ecom, blog, aichat) and get a
project directory with a manifest, server entry point, routes, controllers
and models. If generation fails partway, the project is rolled back cleanly.

Example:
  backforge create my-app --template basic`,
		Version: backforge.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
