// Package textkey canonicalizes arbitrary label strings so that header
// names, taxonomy keys, and free-text fragments can be compared regardless
// of casing, spacing, or punctuation.
package textkey

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims, lower-cases, and strips every character outside [a-z0-9].
// Unicode input is NFKC-folded first so full-width and composed forms compare
// equal. Empty input yields an empty string.
func Normalize(s string) string {
	s = norm.NFKC.String(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize lower-cases s and extracts maximal [a-z0-9]+ runs as a set.
// Duplicate tokens merge; order is not preserved.
func Tokenize(s string) map[string]struct{} {
	s = strings.ToLower(norm.NFKC.String(s))
	tokens := make(map[string]struct{})
	start := -1
	for i, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens[s[start:i]] = struct{}{}
			start = -1
		}
	}
	if start >= 0 {
		tokens[s[start:]] = struct{}{}
	}
	return tokens
}

// TokenList returns the tokens of s in first-appearance order. Useful when a
// caller needs deterministic iteration for matching.
func TokenList(s string) []string {
	s = strings.ToLower(norm.NFKC.String(s))
	var out []string
	seen := make(map[string]struct{})
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := s[start:end]
		if _, ok := seen[tok]; !ok {
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
		start = -1
	}
	for i, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(s))
	return out
}
