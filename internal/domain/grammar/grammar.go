// Package grammar holds the lexical rules of every supported source
// language: comment and string delimiters, reserved words and the naming
// heuristics used to tell library symbols from user-defined ones.
//
// Grammars are immutable values shared by every renaming invocation. They are
// registered once at package initialisation and looked up by language id or
// file extension.
package grammar

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/knave/internal/model"
)

// FragmentMode selects how library name fragments are matched against an
// identifier.
type FragmentMode int

const (
	// FragmentContains discards identifiers containing a fragment anywhere.
	FragmentContains FragmentMode = iota
	// FragmentPrefix discards identifiers starting with a fragment.
	FragmentPrefix
)

// KeywordSet is a read-only set of reserved words, builtins and standard
// library names.
type KeywordSet struct {
	words map[string]struct{}
}

// NewKeywordSet builds a set from one or more word lists.
func NewKeywordSet(lists ...[]string) KeywordSet {
	size := 0
	for _, list := range lists {
		size += len(list)
	}

	words := make(map[string]struct{}, size)

	for _, list := range lists {
		for _, w := range list {
			words[w] = struct{}{}
		}
	}

	return KeywordSet{words: words}
}

// Has reports whether word is in the set.
func (k KeywordSet) Has(word string) bool {
	_, ok := k.words[word]
	return ok
}

// Len returns the number of words in the set.
func (k KeywordSet) Len() int {
	return len(k.words)
}

// Grammar describes the lexical rules of one source language.
type Grammar struct {
	ID         m.LanguageID
	Name       string
	Extensions []string

	// LineComment opens a comment running to the end of the line.
	LineComment string
	// BlockOpen and BlockClose delimit non-nesting block comments.
	BlockOpen  string
	BlockClose string
	// Directives open a line copied verbatim, such as a C #include whose
	// header name must never be rewritten.
	Directives []string
	// Quotes lists the single-byte string delimiters.
	Quotes string
	// TripleQuotes lists multi-line string delimiters; they are tried before Quotes.
	TripleQuotes []string
	// Escape is the escape byte inside strings, 0 when the language has none.
	Escape byte
	// StringPrefixes are identifier-shaped literal prefixes such as r"" or L"".
	// An identifier directly followed by a quote and listed here is part of
	// the literal, not a name.
	StringPrefixes []string
	// FoldPrefixes makes StringPrefixes match regardless of case.
	FoldPrefixes bool

	Keywords     KeywordSet
	Fragments    []string
	FragmentMode FragmentMode
	// Reserved are naming shapes treated as builtins (constants, dunders...).
	Reserved []*regexp.Regexp
	// Receivers are conventional first parameter names never renamed.
	Receivers []string
}

// IsQuote reports whether b opens a single-line string.
func (g *Grammar) IsQuote(b byte) bool {
	return strings.IndexByte(g.Quotes, b) >= 0
}

// IsStringPrefix reports whether ident is a literal prefix of this grammar.
func (g *Grammar) IsStringPrefix(ident string) bool {
	for _, p := range g.StringPrefixes {
		if p == ident || (g.FoldPrefixes && strings.EqualFold(p, ident)) {
			return true
		}
	}

	return false
}

// IsReceiver reports whether name is a conventional self/this parameter.
func (g *Grammar) IsReceiver(name string) bool {
	for _, r := range g.Receivers {
		if r == name {
			return true
		}
	}

	return false
}

// LooksBuiltin applies the naming-convention heuristics. It does not consult
// the keyword set.
func (g *Grammar) LooksBuiltin(name string) bool {
	for _, re := range g.Reserved {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}

// HasFragment reports whether name contains (or starts with, depending on
// FragmentMode) a known library name fragment. Matching ignores case.
func (g *Grammar) HasFragment(name string) bool {
	lower := strings.ToLower(name)

	for _, f := range g.Fragments {
		switch g.FragmentMode {
		case FragmentPrefix:
			if strings.HasPrefix(lower, f) {
				return true
			}
		default:
			if strings.Contains(lower, f) {
				return true
			}
		}
	}

	return false
}
