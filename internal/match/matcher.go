// Package match provides text matching and skill relevance scoring against job profiles.
package match

import "strings"

// ContainsEither reports whether one string contains the other,
// case-insensitively. This symmetry lets "React" match the job skill
// "React.js" and vice versa. It is a deliberate simplification: short
// tokens can produce false positives ("Go" inside "Good"), so callers
// needing precision must pre-filter short tokens.
func ContainsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// ContainsAny reports whether needle matches any entry of haystack
// under the ContainsEither test.
func ContainsAny(needle string, haystack []string) bool {
	for _, h := range haystack {
		if ContainsEither(needle, h) {
			return true
		}
	}
	return false
}

// TextContains reports whether term appears as a case-insensitive
// substring of text. Unlike ContainsEither this is one-directional: it
// is used for scanning free-text blobs (summaries, achievement text)
// for job terms.
func TextContains(text, term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}
