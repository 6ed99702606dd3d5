package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptConfirm asks a yes/no question.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptInput asks for one line of text. fallback is shown as a placeholder
// and returned when the answer is blank.
func PromptInput(message, fallback string, validator func(string) error) (string, error) {
	var answer string

	input := huh.NewInput().
		Title(message).
		Placeholder(fallback).
		Value(&answer)
	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}
