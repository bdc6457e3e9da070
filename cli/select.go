// Package cli holds the interactive prompts used by the command line tools.
package cli

import (
	"errors"
	"strings"

	"facette.io/natsort"
	"github.com/manifoldco/promptui"
)

// ErrNoChoices is returned by Select when there is nothing to choose from.
var ErrNoChoices = errors.New("no choices")

// Select asks the user to pick one of choices. Duplicates are dropped and the
// list is shown in natural order. Typing filters the list by prefix,
// ignoring case.
func Select(label string, choices ...string) (string, error) {
	names := uniqueSorted(choices)
	if len(names) == 0 {
		return "", ErrNoChoices
	}

	sel := &promptui.Select{
		Label:             label,
		Items:             names,
		Searcher:          prefixSearcher(names),
		StartInSearchMode: len(names) > searchThreshold,
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

const searchThreshold = 10

func prefixSearcher(names []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if len(input) == 0 {
			return true
		}

		return strings.HasPrefix(strings.ToLower(names[index]), strings.ToLower(input))
	}
}

func uniqueSorted(choices []string) []string {
	seen := make(map[string]struct{}, len(choices))
	names := make([]string, 0, len(choices))

	for _, c := range choices {
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		names = append(names, c)
	}

	natsort.Sort(names)

	return names
}
