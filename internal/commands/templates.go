package commands

import (
	"fmt"

	"github.com/simonhull/backforge/internal/project"
	"github.com/simonhull/backforge/internal/templates"
	"github.com/simonhull/backforge/output"
	"github.com/spf13/cobra"
)

// TemplatesCmd creates and returns the 'templates' command
func TemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available project templates",
		Run: func(cmd *cobra.Command, args []string) {
			output.Info("Available templates:")
			for _, kind := range project.AllKinds {
				output.Step(fmt.Sprintf("%-8s %s", kind, templates.Describe(kind)))
			}
		},
	}
}
