package insult

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is the casing applied to generated insults.
type Style string

const (
	// StyleSnake keeps the words joined by underscores: artless_base_court_knave.
	StyleSnake Style = "snake"
	// StyleCamel produces lower camel case: artlessBaseCourtKnave.
	StyleCamel Style = "camel"
)

// ParseStyle validates a style name. The empty string means StyleSnake.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case "", StyleSnake:
		return StyleSnake, nil
	case StyleCamel:
		return StyleCamel, nil
	default:
		return "", fmt.Errorf("unknown insult style %q (want snake or camel)", s)
	}
}

// Apply renders a snake case insult in style s.
func (s Style) Apply(insult string) string {
	if s != StyleCamel {
		return insult
	}

	title := cases.Title(language.Und, cases.NoLower)
	words := strings.Split(insult, "_")

	for i := 1; i < len(words); i++ {
		words[i] = title.String(words[i])
	}

	return strings.Join(words, "")
}
