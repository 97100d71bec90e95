package extract

import (
	"regexp"
	"strings"
)

const (
	ident     = `[A-Za-z_]\w*`
	identList = ident + `(?:[ \t]*,[ \t]*` + ident + `)*`
)

var (
	leadingIdent = regexp.MustCompile(`^` + ident)
	listSep      = regexp.MustCompile(`[ \t]*,[ \t]*`)
)

// capture returns group of every match of re in code.
func capture(re *regexp.Regexp, group int, code string) []string {
	var out []string

	for _, match := range re.FindAllStringSubmatch(code, -1) {
		if match[group] != "" {
			out = append(out, match[group])
		}
	}

	return out
}

// captureList is capture for groups holding a comma separated name list.
func captureList(re *regexp.Regexp, group int, code string) []string {
	var out []string

	for _, list := range capture(re, group, code) {
		for _, name := range listSep.Split(strings.TrimSpace(list), -1) {
			if name != "" {
				out = append(out, name)
			}
		}
	}

	return out
}

// within applies inner to every region of code matched by scope.
func within(scope, inner *regexp.Regexp, group int, code string) []string {
	var out []string

	for _, region := range scope.FindAllString(code, -1) {
		out = append(out, capture(inner, group, region)...)
	}

	return out
}

// bracketed returns, for every match of re ending just after an opening
// parenthesis, the text up to the parenthesis that closes it. Nested
// brackets are skipped, so `def f(a, b=g(1), c)` yields `a, b=g(1), c`.
// Unclosed groups yield nothing.
func bracketed(re *regexp.Regexp, code string) []string {
	var out []string

	for _, loc := range re.FindAllStringIndex(code, -1) {
		depth := 1

		for i := loc[1]; i < len(code); i++ {
			switch code[i] {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}

			if depth == 0 {
				out = append(out, code[loc[1]:i])
				break
			}
		}
	}

	return out
}

// splitTopLevel splits s on commas that are not nested inside brackets.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

// firstIdent returns the identifier s starts with after trimming space and
// the given prefix bytes.
func firstIdent(s, trim string) string {
	s = strings.TrimLeft(strings.TrimSpace(s), trim)
	s = strings.TrimSpace(s)

	return leadingIdent.FindString(s)
}
