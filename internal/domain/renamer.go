// Package domain contains the identifier renaming engine facade and the
// file workflow built on top of it.
package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/mouse-blink/knave/internal/domain/extract"
	"github.com/mouse-blink/knave/internal/domain/grammar"
	"github.com/mouse-blink/knave/internal/domain/insult"
	"github.com/mouse-blink/knave/internal/domain/rewrite"
	"github.com/mouse-blink/knave/internal/domain/scanner"
	m "github.com/mouse-blink/knave/internal/model"
)

// DefaultMaxBytes is the largest input Rename accepts unless overridden.
const DefaultMaxBytes = 4 << 20

var (
	// ErrInputTooLarge is returned for texts above the configured size limit.
	ErrInputTooLarge = errors.New("input too large")
	// ErrMalformedInput is returned when the engine could not process a text.
	ErrMalformedInput = errors.New("malformed input")
)

// Renamer renames the user-defined identifiers of a source text.
type Renamer interface {
	// Rename returns the rewritten text and the mapping that produced it.
	// On error the result carries the original text unchanged.
	Rename(text string, lang m.LanguageID) (m.RewriteResult, error)
	// Identifiers returns the names Rename would replace.
	Identifiers(text string, lang m.LanguageID) (*m.IdentifierSet, error)
	// Scrub returns text with strings and comments blanked out.
	Scrub(text string, lang m.LanguageID) (string, error)
}

// RenamerOption configures a Renamer.
type RenamerOption func(*renamer)

// WithStrategy sets the extraction strategy.
func WithStrategy(s extract.Strategy) RenamerOption {
	return func(r *renamer) {
		r.strategy = s
	}
}

// WithSeed makes every call deterministic for a given seed.
func WithSeed(seed uint64) RenamerOption {
	return func(r *renamer) {
		r.seed = &seed
	}
}

// WithPool replaces the insult word lists.
func WithPool(p insult.Pool) RenamerOption {
	return func(r *renamer) {
		r.pool = p
	}
}

// WithStyle sets the casing of replacement names.
func WithStyle(s insult.Style) RenamerOption {
	return func(r *renamer) {
		r.style = s
	}
}

// WithMaxBytes caps the input size. Zero or negative disables the cap.
func WithMaxBytes(n int) RenamerOption {
	return func(r *renamer) {
		r.maxBytes = n
	}
}

// WithKeep lists names that are never renamed.
func WithKeep(names ...string) RenamerOption {
	return func(r *renamer) {
		for _, name := range names {
			r.keep[name] = struct{}{}
		}
	}
}

type renamer struct {
	strategy extract.Strategy
	seed     *uint64
	pool     insult.Pool
	style    insult.Style
	maxBytes int
	keep     map[string]struct{}
}

// NewRenamer creates a Renamer with pattern extraction, the default insult
// pool and a random seed unless options say otherwise.
func NewRenamer(opts ...RenamerOption) Renamer {
	r := &renamer{
		strategy: extract.StrategyPattern,
		pool:     insult.DefaultPool(),
		style:    insult.StyleSnake,
		maxBytes: DefaultMaxBytes,
		keep:     make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *renamer) Rename(text string, lang m.LanguageID) (result m.RewriteResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = m.RewriteResult{Text: text, Status: m.StatusFailed}
			err = fmt.Errorf("%w: %v", ErrMalformedInput, p)
		}
	}()

	g, err := r.grammar(text, lang)
	if err != nil {
		return m.RewriteResult{Text: text, Status: m.StatusFailed}, err
	}

	spans := scanner.Spans(text, g)

	rule := buildIgnoreRule(text, spans, g)
	if rule.all {
		return m.RewriteResult{Text: text, Mapping: m.NewRenameMap(), Status: m.StatusIgnored}, nil
	}

	ids := r.identifiers(text, spans, g, rule)
	if ids.Len() == 0 {
		return m.RewriteResult{Text: text, Mapping: m.NewRenameMap(), Status: m.StatusNothingToRename}, nil
	}

	mapping, err := r.allocator().AllocateAvoiding(ids.Names(), presentTokens(text, spans))
	if err != nil {
		return m.RewriteResult{Text: text, Status: m.StatusFailed}, fmt.Errorf("allocate replacements: %w", err)
	}

	return m.RewriteResult{
		Text:    rewrite.Rewrite(text, mapping, g),
		Mapping: mapping,
		Status:  m.StatusRenamed,
	}, nil
}

func (r *renamer) Identifiers(text string, lang m.LanguageID) (ids *m.IdentifierSet, err error) {
	defer func() {
		if p := recover(); p != nil {
			ids = nil
			err = fmt.Errorf("%w: %v", ErrMalformedInput, p)
		}
	}()

	g, err := r.grammar(text, lang)
	if err != nil {
		return nil, err
	}

	spans := scanner.Spans(text, g)

	rule := buildIgnoreRule(text, spans, g)
	if rule.all {
		return m.NewIdentifierSet(), nil
	}

	return r.identifiers(text, spans, g, rule), nil
}

func (r *renamer) Scrub(text string, lang m.LanguageID) (string, error) {
	g, err := r.grammar(text, lang)
	if err != nil {
		return text, err
	}

	return scanner.Scrub(text, g), nil
}

func (r *renamer) grammar(text string, lang m.LanguageID) (*grammar.Grammar, error) {
	if r.maxBytes > 0 && len(text) > r.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrInputTooLarge, len(text), r.maxBytes)
	}

	return grammar.Lookup(lang)
}

func (r *renamer) identifiers(text string, spans []m.Span, g *grammar.Grammar, rule ignoreRule) *m.IdentifierSet {
	ids := extract.Extract(
		scanner.ScrubSpans(text, spans),
		g,
		extract.WithStrategy(r.strategy),
		extract.WithExempt(r.pool.Recognizes),
	)

	for _, name := range ids.Names() {
		if _, keep := r.keep[name]; keep || rule.ignores(name) {
			ids.Remove(name)
		}
	}

	return ids
}

func (r *renamer) allocator() *insult.Allocator {
	opts := []insult.Option{insult.WithPool(r.pool), insult.WithStyle(r.style)}
	if r.seed != nil {
		opts = append(opts, insult.WithRand(rand.New(rand.NewPCG(*r.seed, *r.seed))))
	}

	return insult.NewAllocator(opts...)
}

// presentTokens collects every identifier token in the code spans of text.
func presentTokens(text string, spans []m.Span) map[string]struct{} {
	present := make(map[string]struct{})

	for _, span := range spans {
		if span.Kind != m.SpanCode {
			continue
		}

		for _, tok := range scanner.Identifiers(text, span.Start, span.End) {
			present[tok.Text] = struct{}{}
		}
	}

	return present
}
