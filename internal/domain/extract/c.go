package extract

import (
	"regexp"
	"strings"

	"github.com/mouse-blink/knave/internal/domain/grammar"
)

const cQualifiers = `(?:(?:static|extern|inline|auto|register|const|volatile|unsigned|signed|long|short|struct|enum|union)[ \t]+)*`

var (
	cFuncDef  = regexp.MustCompile(`(?m)^[ \t]*` + cQualifiers + `(` + ident + `)([ \t]*\*+[ \t]*|[ \t]+)(` + ident + `)[ \t]*\([^)]*\)[ \t\r\n]*[{;]`)
	cDecl     = regexp.MustCompile(`(?m)(?:^|[{;(,])[ \t\r\n]*` + cQualifiers + `(` + ident + `)([ \t]*\*+[ \t]*|[ \t]+)(` + ident + `)[ \t]*`)
	cDeclList = regexp.MustCompile(`(?m)(?:^|[{;])[ \t\r\n]*` + cQualifiers + `(` + ident + `)[ \t]+([^;(){}]*,[^;(){}]*);`)
	cTypedef  = regexp.MustCompile(`\btypedef[ \t]+[^;{}]*?\b(` + ident + `)[ \t]*;`)
	cTypeTail = regexp.MustCompile(`\}[ \t]*(` + ident + `)[ \t]*;`)
	cTag      = regexp.MustCompile(`\b(?:struct|enum|union)[ \t]+(` + ident + `)[ \t\r\n]*\{`)
	cFuncPtr  = regexp.MustCompile(`\([ \t]*\*[ \t]*(` + ident + `)[ \t]*\)[ \t]*\(`)
)

// cStatementWords can precede a name without declaring it.
var cStatementWords = map[string]bool{
	"return": true, "case": true, "goto": true, "else": true, "do": true,
	"sizeof": true, "break": true, "continue": true, "default": true,
	"if": true, "while": true, "for": true, "switch": true, "typedef": true,
}

var cBuiltinTypes = map[string]bool{
	"void": true, "char": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "_Bool": true, "bool": true, "FILE": true,
	"signed": true, "unsigned": true,
}

func cCandidates(code string, _ *grammar.Grammar) []string {
	var types []string

	types = append(types, capture(cTypedef, 1, code)...)
	types = append(types, capture(cTypeTail, 1, code)...)
	types = append(types, capture(cTag, 1, code)...)

	known := make(map[string]bool, len(types))
	for _, t := range types {
		known[t] = true
	}

	out := append([]string{}, types...)

	for _, match := range cFuncDef.FindAllStringSubmatch(code, -1) {
		typ, name := match[1], match[3]
		if cStatementWords[typ] || name == "main" {
			continue
		}

		out = append(out, name)
	}

	// the terminator is checked outside the pattern so that it stays
	// available as the leading separator of the next declaration
	for _, loc := range cDecl.FindAllStringSubmatchIndex(code, -1) {
		if loc[1] >= len(code) || strings.IndexByte("[=;,)", code[loc[1]]) < 0 {
			continue
		}

		typ, sep, name := code[loc[2]:loc[3]], code[loc[4]:loc[5]], code[loc[6]:loc[7]]
		if isCDeclaration(typ, sep, known) {
			out = append(out, name)
		}
	}

	for _, match := range cDeclList.FindAllStringSubmatch(code, -1) {
		if cStatementWords[match[1]] {
			continue
		}

		for _, declarator := range splitTopLevel(match[2]) {
			if name := firstIdent(declarator, "*"); name != "" {
				out = append(out, name)
			}
		}
	}

	out = append(out, capture(cFuncPtr, 1, code)...)

	return out
}

// isCDeclaration rejects statement keywords in type position and, for
// pointer declarators, types that are neither builtin nor declared in the
// file: "(a * b)" is far more often a product than a declaration.
func isCDeclaration(typ, sep string, known map[string]bool) bool {
	if cStatementWords[typ] {
		return false
	}

	if !strings.Contains(sep, "*") {
		return true
	}

	return cBuiltinTypes[typ] || known[typ] || strings.HasSuffix(typ, "_t")
}
