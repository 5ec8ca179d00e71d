// Package cli holds the terminal prompts and framing used by the simulator.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

var (
	// ErrEmptyInput is returned by validators when nothing was entered.
	ErrEmptyInput = errors.New("you must enter something")
	// ErrOutOfRange is returned by validators for numbers outside the allowed range.
	ErrOutOfRange = errors.New("value out of range")
)

// Terminal is where prompts read from and write to.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// Std is the process terminal.
var Std = Terminal{Stdin: os.Stdin, Stdout: os.Stdout} //nolint:gochecknoglobals

func (term Terminal) prompt(label string, validate promptui.ValidateFunc) promptui.Prompt {
	return promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    term.Stdin,
		Stdout:   term.Stdout,
	}
}

// PromptConfirm asks a yes/no question. Answering no is not an error.
func (term Terminal) PromptConfirm(label string) (bool, error) {
	prompt := term.prompt(label, nil)
	prompt.IsConfirm = true

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptInt asks for an integer within [minimum, maximum].
func (term Terminal) PromptInt(label string, minimum, maximum int) (int, error) {
	prompt := term.prompt(label, func(s string) error {
		_, err := parseInt(s, minimum, maximum)

		return err
	})

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parseInt(txt, minimum, maximum)
}

// PromptFloat asks for a number within [minimum, maximum].
func (term Terminal) PromptFloat(label string, minimum, maximum float64) (float64, error) {
	prompt := term.prompt(label, func(s string) error {
		_, err := parseFloat(s, minimum, maximum)

		return err
	})

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parseFloat(txt, minimum, maximum)
}

func parseInt(s string, minimum, maximum int) (int, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	if val < minimum || val > maximum {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, val, minimum, maximum)
	}

	return val, nil
}

func parseFloat(s string, minimum, maximum float64) (float64, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}

	if val < minimum || val > maximum {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, val, minimum, maximum)
	}

	return val, nil
}
