package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/ui"
)

// PromptInput prompts for a text value. The validator runs on every submit and
// keeps the prompt open until it passes.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" && defaultValue != "" {
				return nil
			}
			return validator(s)
		})
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptSecret reads a masked value such as a PIN.
func PromptSecret(message string) (string, error) {
	var secret string

	prompt := &survey.Password{
		Message: message,
	}

	if err := survey.AskOne(prompt, &secret, ui.IconOption()); err != nil {
		return "", err
	}

	return strings.TrimSpace(secret), nil
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}

	err := survey.AskOne(prompt, &confirm, ui.IconOption())
	return confirm, err
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	if defaultOption != "" {
		for _, o := range options {
			if o == defaultOption || strings.HasPrefix(o, defaultOption+" ") {
				selected = o
				break
			}
		}
	}

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	selectField := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Height(min(len(opts)+2, 15)).
		Value(&selected)

	err := selectField.Run()
	return selected, err
}
