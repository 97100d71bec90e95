package domain

import (
	"strings"

	"github.com/mouse-blink/knave/internal/domain/grammar"
	m "github.com/mouse-blink/knave/internal/model"
)

const ignoreDirective = "knave:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(name string) bool {
	if r.all {
		return true
	}

	_, ok := r.names[name]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads one comment line. "knave:ignore" alone opts the
// whole file out; "knave:ignore a, b" keeps the listed names.
func parseIgnoreDirective(line string, g *grammar.Grammar) (ignoreRule, bool) {
	s := strings.TrimSpace(line)

	for _, marker := range []string{g.LineComment, g.BlockOpen} {
		if marker != "" {
			s = strings.TrimPrefix(s, marker)
		}
	}

	if g.BlockClose != "" {
		s = strings.TrimSuffix(strings.TrimSpace(s), g.BlockClose)
	}

	s = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "*"))

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimPrefix(s, ignoreDirective)
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != ':' {
		// knave:ignored, knave:ignorefoo...
		return ignoreRule{}, false
	}

	fields := strings.FieldsFunc(strings.TrimPrefix(rest, ":"), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return ignoreRule{all: true}, true
	}

	rule := ignoreRule{names: make(map[string]struct{}, len(fields))}
	for _, name := range fields {
		rule.names[name] = struct{}{}
	}

	return rule, true
}

// buildIgnoreRule merges the directives of every comment span of text.
func buildIgnoreRule(text string, spans []m.Span, g *grammar.Grammar) ignoreRule {
	var rule ignoreRule

	for _, span := range spans {
		if span.Kind != m.SpanComment {
			continue
		}

		for _, line := range strings.Split(span.Text(text), "\n") {
			r, ok := parseIgnoreDirective(line, g)
			if !ok {
				continue
			}

			mergeIgnoreRule(&rule, r)
		}
	}

	return rule
}
