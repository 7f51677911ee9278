// Package output provides styled terminal output for the backforge CLI.
//
// All user-facing messages go through this package so the tool keeps a
// consistent look. Functions use lipgloss for styling but abstract away the
// details from callers.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	// writer is swappable so tests can capture output.
	writer io.Writer = os.Stdout
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriter redirects all output to w. Pass nil to restore os.Stdout.
func SetWriter(w io.Writer) {
	if w == nil {
		writer = os.Stdout
		return
	}
	writer = w
}

// Success prints a success message in bold green.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Created project: my-app")
func Success(msg string) {
	fmt.Fprintln(writer, successStyle.Render("✔ "+msg))
}

// Error prints an error message in bold red.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(writer, errorStyle.Render("✖ "+msg))
}

// Warn prints a warning in bold yellow.
// Use this for non-fatal problems, such as a rollback that could not
// fully remove a partial project directory.
func Warn(msg string) {
	fmt.Fprintln(writer, warnStyle.Render("⚠ "+msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
//
// Example:
//
//	output.Info("Next steps:")
func Info(msg string) {
	fmt.Fprintln(writer, infoStyle.Render("ℹ "+msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("cd my-app")
//	output.Step("npm run dev")
func Step(msg string) {
	fmt.Fprintln(writer, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(writer, stepStyle.Render("· "+msg))
	}
}
