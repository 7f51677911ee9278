package input

import (
	"testing"
)

// Note: These tests are for documentation purposes.
// Interactive input functions require manual testing in a real terminal.

func TestPrompt_Documentation(t *testing.T) {
	t.Skip("Manual testing required - interactive prompt reads from a terminal")

	// Example usage for documentation:
	// name := Prompt("Project name", "my-app")
}

func TestConfirm_Documentation(t *testing.T) {
	t.Skip("Manual testing required - interactive prompt reads from a terminal")

	// Example usage for documentation:
	// if Confirm("Install dependencies now?", true) { ... }
}

func TestSelect_Documentation(t *testing.T) {
	t.Skip("Manual testing required - huh forms need a terminal")

	// Example usage for documentation:
	// kind, err := Select("Choose a template", []Option{
	//     {Label: "basic", Desc: "Minimal Express REST backend", Value: "basic"},
	// })
}
