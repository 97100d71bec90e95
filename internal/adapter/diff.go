package adapter

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Differ renders the difference between two versions of a file.
type Differ interface {
	Diff(name string, before, after string) (string, error)
}

// UnifiedDiffer produces unified diffs with three lines of context.
type UnifiedDiffer struct {
	Context int
}

// NewDiffer constructs a Differ with the default context size.
func NewDiffer() Differ {
	return &UnifiedDiffer{Context: 3}
}

// Diff returns the unified diff of before and after, or an empty string when
// they are equal.
func (d *UnifiedDiffer) Diff(name string, before, after string) (string, error) {
	if before == after {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  d.Context,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", name, err)
	}

	return diff, nil
}
