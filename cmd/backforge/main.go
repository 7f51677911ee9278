package main

import (
	"os"

	"github.com/simonhull/backforge/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.CreateCmd())
	rootCmd.AddCommand(commands.TemplatesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
