// Package rewrite substitutes renamed identifiers back into the original
// source text.
//
// Only whole identifier tokens inside code spans are replaced. Strings and
// comments are copied byte for byte, and a name is never matched as a
// substring of a longer identifier.
package rewrite

import (
	"strings"

	"github.com/mouse-blink/knave/internal/domain/grammar"
	"github.com/mouse-blink/knave/internal/domain/scanner"
	m "github.com/mouse-blink/knave/internal/model"
)

// Edits lists the replacements Rewrite would make, in text order.
func Edits(original string, mapping *m.RenameMap, g *grammar.Grammar) []m.Edit {
	if mapping.Len() == 0 {
		return nil
	}

	var edits []m.Edit

	spans := scanner.Spans(original, g)

	for i, span := range spans {
		if span.Kind != m.SpanCode {
			continue
		}

		for _, tok := range scanner.Identifiers(original, span.Start, span.End) {
			replacement, ok := mapping.Lookup(tok.Text)
			if !ok {
				continue
			}

			if tok.End == span.End && i+1 < len(spans) && spans[i+1].Kind == m.SpanString && g.IsStringPrefix(tok.Text) {
				continue
			}

			edits = append(edits, m.Edit{Start: tok.Start, End: tok.End, Old: tok.Text, New: replacement})
		}
	}

	return edits
}

// Rewrite returns original with every mapped identifier replaced.
func Rewrite(original string, mapping *m.RenameMap, g *grammar.Grammar) string {
	return Apply(original, Edits(original, mapping, g))
}

// Apply applies sorted, non-overlapping edits to text.
func Apply(text string, edits []m.Edit) string {
	if len(edits) == 0 {
		return text
	}

	var b strings.Builder

	b.Grow(len(text))

	last := 0

	for _, e := range edits {
		b.WriteString(text[last:e.Start])
		b.WriteString(e.New)
		last = e.End
	}

	b.WriteString(text[last:])

	return b.String()
}
