package input

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts an interactive form (ctrl-c).
var ErrCancelled = errors.New("cancelled by user")

// Option is a single selectable choice for Select.
type Option struct {
	Label string // Shown to the user
	Desc  string // Optional one-line description appended to the label
	Value string // Returned when chosen
}

// Ask renders a single-field huh form asking for a line of text.
// validate may be nil; when set, the form refuses to submit until it passes.
//
// Each question runs as its own independent huh.Form, matching how the rest
// of the wizard sequences its prompts.
func Ask(title, placeholder string, validate func(string) error) (string, error) {
	var value string

	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)

	if validate != nil {
		field = field.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(field))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("input form: %w", err)
	}

	return value, nil
}

// Select renders a single-field huh form asking the user to pick one option.
func Select(title string, options []Option) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label
		if opt.Desc != "" {
			label = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(label, opt.Value)
	}

	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(&value),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("select form: %w", err)
	}

	return value, nil
}
