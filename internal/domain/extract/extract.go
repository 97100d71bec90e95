// Package extract finds the user-defined identifiers of a scrubbed source
// text.
//
// Extraction is heuristic. Pattern rules look for binding constructs
// (definitions, assignments, declarations, aliases) and every candidate goes
// through a keyword and naming-convention filter that prefers leaving a user
// name alone over renaming a library symbol.
package extract

import (
	"fmt"

	"github.com/mouse-blink/knave/internal/domain/grammar"
	"github.com/mouse-blink/knave/internal/domain/scanner"
	m "github.com/mouse-blink/knave/internal/model"
)

// Strategy selects how candidates are collected.
type Strategy string

const (
	// StrategyPattern collects names from binding constructs only.
	StrategyPattern Strategy = "pattern"
	// StrategyBroad collects every identifier token. Deprecated: it renames
	// attributes and library calls far more often than pattern extraction.
	StrategyBroad Strategy = "broad"
	// StrategyCombined is the union of both.
	StrategyCombined Strategy = "combined"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyPattern, StrategyBroad, StrategyCombined:
		return Strategy(s), nil
	case "":
		return StrategyPattern, nil
	default:
		return "", fmt.Errorf("unknown extraction strategy %q (want pattern, broad or combined)", s)
	}
}

type candidateFunc func(code string, g *grammar.Grammar) []string

var patternsByLanguage = map[m.LanguageID]candidateFunc{
	m.LanguagePython: pythonCandidates,
	m.LanguageC:      cCandidates,
}

type options struct {
	strategy Strategy
	exempt   func(string) bool
}

// Option configures Extract.
type Option func(*options)

// WithStrategy sets the candidate strategy. The default is StrategyPattern.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithExempt marks names that skip the library-fragment check, typically
// names shaped like previously generated replacements.
func WithExempt(fn func(string) bool) Option {
	return func(o *options) {
		o.exempt = fn
	}
}

// Extract returns the identifiers of scrubbed that qualify for renaming.
// Grammars without pattern rules always use the broad scan.
func Extract(scrubbed string, g *grammar.Grammar, opts ...Option) *m.IdentifierSet {
	o := options{strategy: StrategyPattern}
	for _, opt := range opts {
		opt(&o)
	}

	patterns, ok := patternsByLanguage[g.ID]
	if !ok {
		o.strategy = StrategyBroad
	}

	var candidates []string

	if o.strategy != StrategyBroad {
		candidates = append(candidates, patterns(scrubbed, g)...)
	}

	if o.strategy != StrategyPattern {
		candidates = append(candidates, Broad(scrubbed)...)
	}

	set := m.NewIdentifierSet()

	for _, name := range candidates {
		if Qualifies(name, g, o.exempt) {
			set.Add(name)
		}
	}

	return set
}

// Broad returns every identifier token of code.
func Broad(code string) []string {
	tokens := scanner.Identifiers(code, 0, len(code))

	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		names = append(names, t.Text)
	}

	return names
}

// Qualifies applies the keyword and naming heuristics to one candidate.
// exempt may be nil.
func Qualifies(name string, g *grammar.Grammar, exempt func(string) bool) bool {
	if !scanner.IsIdentifier(name) {
		return false
	}

	if g.Keywords.Has(name) || g.IsReceiver(name) || g.LooksBuiltin(name) {
		return false
	}

	if exempt != nil && exempt(name) {
		return true
	}

	return !g.HasFragment(name)
}
