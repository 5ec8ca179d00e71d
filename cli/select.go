package cli

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// selectSize is how many choices are visible at once.
const selectSize = 10

// Select lets the user pick one of the choices and returns its index.
// Typing filters choices by case-insensitive substring.
func (term Terminal) Select(label string, choices ...string) (int, error) {
	if len(choices) == 0 {
		return -1, ErrEmptyInput
	}

	sel := promptui.Select{
		Label:    label,
		Items:    choices,
		Size:     selectSize,
		Searcher: searcher(choices),
		Stdin:    term.Stdin,
		Stdout:   term.Stdout,
	}

	idx, _, err := sel.Run()
	if err != nil {
		return -1, err
	}

	return idx, nil
}

func searcher(choices []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		return strings.Contains(strings.ToLower(choices[index]), strings.ToLower(input))
	}
}
