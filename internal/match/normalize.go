package match

import (
	"strings"
	"unicode"
)

// NormalizeLabel folds a label for fuzzy comparison: lower case, with
// whitespace, punctuation and separators removed.
// "E-mail Address" and "email_address" both become "emailaddress".
func NormalizeLabel(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// TokenizeLabel splits a label into lower-case word tokens, breaking on
// anything that is not a letter or digit and on camelCase boundaries.
func TokenizeLabel(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}
