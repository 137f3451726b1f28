// Package stringutil normalizes and reshapes strings for test fixtures:
// whitespace collapsing, accent removal, HTML stripping, slugs, and case
// conversion.
package stringutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// multiSpace collapses runs of whitespace (including tabs/newlines).
	multiSpace = regexp.MustCompile(`\s+`)
	// slugDisallowed matches anything not in [a-z0-9-].
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\-]`)
	// multiHyphen collapses consecutive hyphens.
	multiHyphen = regexp.MustCompile(`-{2,}`)

	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	wordSeparator = regexp.MustCompile(`[\s_\-]+`)
)

// NormalizeWhitespace trims the string and collapses every run of
// whitespace to a single space.
func NormalizeWhitespace(s string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// accentStripper decomposes to NFD, drops combining marks, and recomposes.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveAccents replaces accented characters with their base letters
// ("café" becomes "cafe"). Input that fails to transform is returned
// unchanged.
func RemoveAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Truncate shortens s to at most max runes, appending "..." when anything
// was cut. max values of 3 or less return just the leading runes without
// a suffix.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		if max < 0 {
			max = 0
		}
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Slugify converts a string to a lowercase, hyphen-separated,
// filesystem-safe identifier. Accents are stripped first so "Café Menu"
// becomes "cafe-menu".
func Slugify(s string) string {
	s = strings.ToLower(RemoveAccents(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ToSnakeCase converts camelCase, PascalCase, or space/hyphen separated
// words to snake_case.
func ToSnakeCase(s string) string {
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordSeparator.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// ToCamelCase converts snake_case or space/hyphen separated words to
// lowerCamelCase.
func ToCamelCase(s string) string {
	words := wordSeparator.Split(strings.TrimSpace(s), -1)
	var b strings.Builder
	for _, word := range words {
		if word == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	return b.String()
}
