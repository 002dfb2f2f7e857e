package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLen is the shortest token that takes part in scoring
const minTokenLen = 3

// Normalize lowercases s, removes punctuation and collapses whitespace.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens splits an already normalized string on whitespace and keeps tokens
// of at least three runes.
func Tokens(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
