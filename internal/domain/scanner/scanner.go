// Package scanner splits source text into code, string and comment spans
// with a small finite-state machine driven by a grammar's delimiter table.
//
// The machine never builds tokens beyond what span classification needs and
// never reads past the end of its input: unterminated strings and comments
// simply extend to EOF.
package scanner

import (
	"strings"

	"github.com/mouse-blink/knave/internal/domain/grammar"
	m "github.com/mouse-blink/knave/internal/model"
)

// State is the scanner state between two steps.
type State int

const (
	// StateCode is outside of any literal or comment.
	StateCode State = iota
	// StateLineComment runs to the next newline.
	StateLineComment
	// StateBlockComment runs to the grammar's block close delimiter.
	StateBlockComment
	// StateString runs to the closing quote or an unescaped newline.
	StateString
	// StateTripleString runs to the matching triple quote, across lines.
	StateTripleString
	// StateDirective is a verbatim directive line such as #include.
	StateDirective
)

func (s State) String() string {
	switch s {
	case StateCode:
		return "code"
	case StateLineComment:
		return "line-comment"
	case StateBlockComment:
		return "block-comment"
	case StateString:
		return "string"
	case StateTripleString:
		return "triple-string"
	case StateDirective:
		return "directive"
	default:
		return "unknown"
	}
}

// Cursor is the scanner state carried from one step to the next.
type Cursor struct {
	State State
	// Close is the delimiter that ends the current string or block comment.
	Close string
}

// Step consumes the construct starting at text[i] in cursor state c.
// It returns the next state, the number of bytes consumed (always >= 1 and
// never past len(text)) and the kind of span those bytes belong to.
// i must be a valid index into text.
func Step(g *grammar.Grammar, c Cursor, text string, i int) (Cursor, int, m.SpanKind) {
	switch c.State {
	case StateLineComment:
		if text[i] == '\n' {
			return Cursor{}, 1, m.SpanCode
		}

		return c, 1, m.SpanComment

	case StateDirective:
		if text[i] == '\n' {
			return Cursor{}, 1, m.SpanCode
		}

		return c, 1, m.SpanString

	case StateBlockComment:
		if strings.HasPrefix(text[i:], c.Close) {
			return Cursor{}, len(c.Close), m.SpanComment
		}

		return c, 1, m.SpanComment

	case StateString:
		if g.Escape != 0 && text[i] == g.Escape {
			return c, escapeWidth(text, i), m.SpanString
		}

		if text[i] == '\n' {
			// unterminated literal: the line break returns to code
			return Cursor{}, 1, m.SpanCode
		}

		if strings.HasPrefix(text[i:], c.Close) {
			return Cursor{}, len(c.Close), m.SpanString
		}

		return c, 1, m.SpanString

	case StateTripleString:
		if g.Escape != 0 && text[i] == g.Escape {
			return c, escapeWidth(text, i), m.SpanString
		}

		if strings.HasPrefix(text[i:], c.Close) {
			return Cursor{}, len(c.Close), m.SpanString
		}

		return c, 1, m.SpanString

	default:
		return stepCode(g, text, i)
	}
}

func stepCode(g *grammar.Grammar, text string, i int) (Cursor, int, m.SpanKind) {
	rest := text[i:]

	for _, d := range g.Directives {
		if strings.HasPrefix(rest, d) {
			return Cursor{State: StateDirective}, len(d), m.SpanString
		}
	}

	if g.LineComment != "" && strings.HasPrefix(rest, g.LineComment) {
		return Cursor{State: StateLineComment}, len(g.LineComment), m.SpanComment
	}

	if g.BlockOpen != "" && strings.HasPrefix(rest, g.BlockOpen) {
		return Cursor{State: StateBlockComment, Close: g.BlockClose}, len(g.BlockOpen), m.SpanComment
	}

	for _, q := range g.TripleQuotes {
		if strings.HasPrefix(rest, q) {
			return Cursor{State: StateTripleString, Close: q}, len(q), m.SpanString
		}
	}

	if g.IsQuote(text[i]) {
		return Cursor{State: StateString, Close: text[i : i+1]}, 1, m.SpanString
	}

	return Cursor{}, 1, m.SpanCode
}

// escapeWidth is 2 for an escape and the byte it protects, 1 when the escape
// is the last byte of text.
func escapeWidth(text string, i int) int {
	if i+1 < len(text) {
		return 2
	}

	return 1
}

// Spans partitions text into code, string and comment spans.
// Adjacent steps of the same kind are merged, so the result alternates kinds
// except where two literals touch.
func Spans(text string, g *grammar.Grammar) []m.Span {
	var (
		spans []m.Span
		cur   Cursor
	)

	for i := 0; i < len(text); {
		next, n, kind := Step(g, cur, text, i)

		if last := len(spans) - 1; last >= 0 && spans[last].Kind == kind && spans[last].End == i {
			spans[last].End = i + n
		} else {
			spans = append(spans, m.Span{Kind: kind, Start: i, End: i + n})
		}

		cur = next
		i += n
	}

	return spans
}

// Scrub returns a copy of text whose string literals and comments are
// blanked. Each blanked span becomes a single space followed by the line
// breaks it contained, so the line count of text is preserved while byte
// offsets are not.
func Scrub(text string, g *grammar.Grammar) string {
	return ScrubSpans(text, Spans(text, g))
}

// ScrubSpans is Scrub for spans already computed by Spans.
func ScrubSpans(text string, spans []m.Span) string {
	var b strings.Builder

	b.Grow(len(text))

	for _, span := range spans {
		if span.Kind == m.SpanCode {
			b.WriteString(span.Text(text))
			continue
		}

		b.WriteByte(' ')

		for n := strings.Count(span.Text(text), "\n"); n > 0; n-- {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
