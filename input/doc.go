// Package input provides interactive terminal input utilities.
//
// Plain line-based helpers (Prompt, Confirm) read stdin directly and are safe
// in non-TTY environments. Ask and Select render charmbracelet/huh forms and
// are used by the create wizard when the project name or archetype is not
// supplied on the command line.
package input
