package scanner

// Token is an identifier occurrence at byte range [Start, End).
type Token struct {
	Text  string
	Start int
	End   int
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}

	return true
}

// Identifiers returns the maximal identifier runs of text[start:end] with
// absolute offsets. Numeric literals (0xff, 1e10, 3.5f) are skipped whole so
// their letters never form a token, and runs touching non-ASCII bytes are
// not identifiers of the supported grammars.
func Identifiers(text string, start, end int) []Token {
	var tokens []Token

	for i := start; i < end; {
		b := text[i]

		switch {
		case isDigit(b):
			i = skipNumber(text, i, end)

		case isIdentStart(b) || b >= 0x80:
			j, plain := i, true
			for j < end && (isIdentPart(text[j]) || text[j] >= 0x80) {
				if text[j] >= 0x80 {
					plain = false
				}
				j++
			}

			if plain {
				tokens = append(tokens, Token{Text: text[i:j], Start: i, End: j})
			}

			i = j

		default:
			i++
		}
	}

	return tokens
}

func skipNumber(text string, i, end int) int {
	for i < end && (isIdentPart(text[i]) || text[i] == '.') {
		i++
	}

	return i
}
