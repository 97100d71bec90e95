package model

// Rename is one original → replacement pair.
type Rename struct {
	Original    string `yaml:"from"`
	Replacement string `yaml:"to"`
}

// RenameMap is an injective, insertion-ordered mapping from original
// identifiers to their replacements.
type RenameMap struct {
	pairs []Rename
	byOld map[string]string
	byNew map[string]string
}

// NewRenameMap returns an empty map.
func NewRenameMap() *RenameMap {
	return &RenameMap{
		byOld: make(map[string]string),
		byNew: make(map[string]string),
	}
}

// Set records original → replacement. It returns false, leaving the map
// untouched, when original is already mapped or replacement is already used.
func (rm *RenameMap) Set(original, replacement string) bool {
	if _, ok := rm.byOld[original]; ok {
		return false
	}

	if _, ok := rm.byNew[replacement]; ok {
		return false
	}

	rm.byOld[original] = replacement
	rm.byNew[replacement] = original
	rm.pairs = append(rm.pairs, Rename{Original: original, Replacement: replacement})

	return true
}

// Lookup returns the replacement for original.
func (rm *RenameMap) Lookup(original string) (string, bool) {
	if rm == nil {
		return "", false
	}

	replacement, ok := rm.byOld[original]

	return replacement, ok
}

// Uses reports whether replacement is already a value of the map.
func (rm *RenameMap) Uses(replacement string) bool {
	if rm == nil {
		return false
	}

	_, ok := rm.byNew[replacement]

	return ok
}

// Len returns the number of pairs.
func (rm *RenameMap) Len() int {
	if rm == nil {
		return 0
	}

	return len(rm.pairs)
}

// Pairs returns a copy of the pairs in insertion order.
func (rm *RenameMap) Pairs() []Rename {
	if rm == nil {
		return nil
	}

	out := make([]Rename, len(rm.pairs))
	copy(out, rm.pairs)

	return out
}

// RewriteStatus tells callers what a rename invocation did.
type RewriteStatus string

const (
	// StatusRenamed means at least one identifier was replaced.
	StatusRenamed RewriteStatus = "renamed"
	// StatusNothingToRename means no identifier qualified after filtering.
	// The text is returned unchanged; this is not an error.
	StatusNothingToRename RewriteStatus = "nothing-to-rename"
	// StatusIgnored means the text opted out with a bare ignore directive.
	StatusIgnored RewriteStatus = "ignored"
	// StatusFailed means the invocation returned an error and the text is
	// the unchanged original.
	StatusFailed RewriteStatus = "failed"
)

// RewriteResult is the outcome of renaming one text.
type RewriteResult struct {
	Text    string
	Mapping *RenameMap
	Status  RewriteStatus
}

// Changed reports whether the result carries a rewritten text.
func (r RewriteResult) Changed() bool {
	return r.Status == StatusRenamed
}
