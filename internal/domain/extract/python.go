package extract

import (
	"regexp"

	"github.com/mouse-blink/knave/internal/domain/grammar"
)

var (
	pyDef      = regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?def[ \t]+(` + ident + `)[ \t]*\(`)
	pyClass    = regexp.MustCompile(`(?m)^[ \t]*class[ \t]+(` + ident + `)`)
	pyAssign   = regexp.MustCompile(`(?m)^[ \t]*(` + identList + `)[ \t]*,?[ \t]*(?::[^=\n]*)?=(?:[^=]|$)`)
	pyWalrus   = regexp.MustCompile(`(` + ident + `)[ \t]*:=`)
	pyFor      = regexp.MustCompile(`\bfor[ \t]+\(?[ \t]*(` + identList + `)[ \t]*,?[ \t]*\)?[ \t]+in\b`)
	pyWithLine = regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?with\b[^\n]*`)
	pyAs       = regexp.MustCompile(`\bas[ \t]+(` + ident + `)`)
	pyExcept   = regexp.MustCompile(`\bexcept\b[^\n:]*?\bas[ \t]+(` + ident + `)`)
	pyLambda   = regexp.MustCompile(`\blambda\b([^:\n]*):`)
	pyImport   = regexp.MustCompile(`(?m)^[ \t]*(?:from[ \t]+[\w.]+[ \t]+)?import[ \t]+(?:\([^)]*\)|[^\n]*)`)
)

func pythonCandidates(code string, g *grammar.Grammar) []string {
	var out []string

	out = append(out, capture(pyDef, 1, code)...)
	out = append(out, pythonParams(bracketed(pyDef, code), g, true)...)
	out = append(out, capture(pyClass, 1, code)...)
	out = append(out, captureList(pyAssign, 1, code)...)
	out = append(out, capture(pyWalrus, 1, code)...)
	out = append(out, captureList(pyFor, 1, code)...)
	out = append(out, within(pyWithLine, pyAs, 1, code)...)
	out = append(out, capture(pyExcept, 1, code)...)
	out = append(out, pythonParams(capture(pyLambda, 1, code), g, false)...)
	// only explicit "as" aliases: the imported module's own name must survive
	out = append(out, within(pyImport, pyAs, 1, code)...)

	return out
}

// pythonParams extracts parameter names from raw parameter lists, dropping
// annotations, defaults, star markers and, for methods, the receiver.
func pythonParams(lists []string, g *grammar.Grammar, methods bool) []string {
	var out []string

	for _, list := range lists {
		for i, param := range splitTopLevel(list) {
			name := firstIdent(param, "*")
			if name == "" {
				continue
			}

			if methods && i == 0 && g.IsReceiver(name) {
				continue
			}

			out = append(out, name)
		}
	}

	return out
}
