package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/knave/internal/domain/grammar"
	"github.com/mouse-blink/knave/internal/domain/scanner"
	m "github.com/mouse-blink/knave/internal/model"
)

func TestParseIgnoreDirective(t *testing.T) {
	py, err := grammar.Lookup(m.LanguagePython)
	require.NoError(t, err)

	c, err := grammar.Lookup(m.LanguageC)
	require.NoError(t, err)

	tests := []struct {
		name  string
		line  string
		g     *grammar.Grammar
		ok    bool
		all   bool
		names []string
	}{
		{name: "bare", line: "# knave:ignore", g: py, ok: true, all: true},
		{name: "names", line: "# knave:ignore alpha, beta", g: py, ok: true, names: []string{"alpha", "beta"}},
		{name: "colon", line: "// knave:ignore: gamma", g: c, ok: true, names: []string{"gamma"}},
		{name: "block", line: "/* knave:ignore */", g: c, ok: true, all: true},
		{name: "block continuation", line: " * knave:ignore delta", g: c, ok: true, names: []string{"delta"}},
		{name: "suffix word", line: "# knave:ignored", g: py},
		{name: "other comment", line: "# nothing to see", g: py},
		{name: "not at start", line: "# see knave:ignore", g: py},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := parseIgnoreDirective(tt.line, tt.g)

			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.all, rule.all)

			for _, name := range tt.names {
				assert.True(t, rule.ignores(name), name)
			}

			if !tt.all {
				assert.Len(t, rule.names, len(tt.names))
			}
		})
	}
}

func TestBuildIgnoreRule_MergesDirectives(t *testing.T) {
	g, err := grammar.Lookup(m.LanguageC)
	require.NoError(t, err)

	text := "// knave:ignore alpha\nint alpha;\n/*\n * knave:ignore beta\n */\nint beta;\nchar *s = \"knave:ignore\";\n"

	rule := buildIgnoreRule(text, scanner.Spans(text, g), g)

	assert.False(t, rule.all, "directives inside strings do not count")
	assert.True(t, rule.ignores("alpha"))
	assert.True(t, rule.ignores("beta"))
	assert.False(t, rule.ignores("s"))
}

func TestBuildIgnoreRule_BareWins(t *testing.T) {
	g, err := grammar.Lookup(m.LanguagePython)
	require.NoError(t, err)

	text := "# knave:ignore alpha\nx = 1\n# knave:ignore\n"

	rule := buildIgnoreRule(text, scanner.Spans(text, g), g)

	assert.True(t, rule.all)
	assert.True(t, rule.ignores("anything"))
}
