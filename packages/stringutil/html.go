package stringutil

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	htmlTag           = regexp.MustCompile(`<[^>]*>`)
	htmlScriptOrStyle = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)>`)
	htmlBlockBoundary = regexp.MustCompile(`(?i)<(/?)(p|div|br|li|tr|h[1-6])[^>]*>`)
)

// StripHTML removes markup from an HTML fragment and returns readable
// text: script/style bodies are dropped entirely, block-level boundaries
// become spaces, entities are decoded, and whitespace is normalized.
func StripHTML(s string) string {
	s = htmlScriptOrStyle.ReplaceAllString(s, " ")
	s = htmlBlockBoundary.ReplaceAllString(s, " ")
	s = htmlTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return NormalizeWhitespace(s)
}

// quoteAlternatives joins literal strings into a non-capturing regex
// alternation, quoting metacharacters in each.
func quoteAlternatives(literals []string) string {
	quoted := make([]string, len(literals))
	for i, lit := range literals {
		quoted[i] = regexp.QuoteMeta(lit)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// AnyOfPattern compiles a pattern matching any of the given literal
// strings. Metacharacters in the literals are escaped, so ".*" matches
// only a literal dot-star.
func AnyOfPattern(literals ...string) *regexp.Regexp {
	return regexp.MustCompile(quoteAlternatives(literals))
}

// DigitsPattern compiles a pattern matching a run of exactly n digits,
// bounded so it does not match inside a longer run. n of 0 or less
// matches any non-empty digit run.
func DigitsPattern(n int) *regexp.Regexp {
	if n <= 0 {
		return regexp.MustCompile(`\d+`)
	}
	return regexp.MustCompile(`(?:^|[^\d])(\d{` + strconv.Itoa(n) + `})(?:[^\d]|$)`)
}

// WordPattern compiles a case-insensitive whole-word match for a literal.
func WordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}
