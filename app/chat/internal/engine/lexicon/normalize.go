package lexicon

import (
	"regexp"
	"strings"
)

// punctuation covers everything that is not a letter, digit, underscore or
// whitespace, so word boundaries survive normalization.
var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Normalize lowercases text and replaces punctuation with spaces. All
// matching runs against this form.
func Normalize(text string) string {
	return punctuation.ReplaceAllString(strings.ToLower(text), " ")
}
