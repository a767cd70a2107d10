// Package normalize canonicalizes contact fields for comparison. All
// functions are pure and never fail; invalid input yields "".
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// streetAbbreviations maps full street-type words to their canonical
// abbreviated forms for address comparison.
var streetAbbreviations = []struct {
	re     *regexp.Regexp
	abbrev string
}{
	{regexp.MustCompile(`\bstreet\b`), "st"},
	{regexp.MustCompile(`\bavenue\b`), "ave"},
	{regexp.MustCompile(`\broad\b`), "rd"},
	{regexp.MustCompile(`\bboulevard\b`), "blvd"},
	{regexp.MustCompile(`\blane\b`), "ln"},
	{regexp.MustCompile(`\bdrive\b`), "dr"},
	{regexp.MustCompile(`\bcourt\b`), "ct"},
	{regexp.MustCompile(`\bplace\b`), "pl"},
	{regexp.MustCompile(`\bapartment\b`), "apt"},
}

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	// Strips punctuation but keeps hyphens, so ZIP+4 codes survive.
	punctRe = regexp.MustCompile(`[^\w\s\-]`)
)

// asciiFold decomposes and strips combining marks so accented scraped
// text compares equal to its plain-ASCII form.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return out
}

// Address canonicalizes a street address for comparison: fold diacritics,
// lowercase, collapse whitespace, abbreviate street types, and strip
// punctuation except hyphens.
func Address(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(fold(text)))
	normalized = multiSpaceRe.ReplaceAllString(normalized, " ")

	for _, abbr := range streetAbbreviations {
		normalized = abbr.re.ReplaceAllString(normalized, abbr.abbrev)
	}

	return punctRe.ReplaceAllString(normalized, "")
}

// Phone reduces a phone string to its digits.
func Phone(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Email lowercases and trims an email address.
func Email(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Company produces the canonical form of a company name used by fuzzy
// matching: folded, trimmed, lowercased.
func Company(name string) string {
	return strings.ToLower(strings.TrimSpace(fold(name)))
}
