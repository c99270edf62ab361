package match

import "strings"

// Match reports whether keyword approximately occurs in text. Matching is
// case-insensitive and tolerant of single-character deletions and truncated
// input, which covers the accented/unaccented Vietnamese variants the
// lexicons carry. Rules are tried in order, first hit wins:
//
//  1. plain substring containment
//  2. containment with the keyword's first or last character removed (len >= 4)
//  3. containment of any single-character deletion of the keyword (len >= 4)
//  4. text starts with the keyword (len >= 3), for typed-ahead input
//
// Only deletions are attempted, never insertions or substitutions, so the
// cost stays linear in the keyword length.
func Match(keyword, text string) bool {
	keyword = strings.ToLower(keyword)
	text = strings.ToLower(text)
	if keyword == "" {
		return false
	}
	if strings.Contains(text, keyword) {
		return true
	}

	kw := []rune(keyword)
	if len(kw) >= 4 {
		if strings.Contains(text, string(kw[:len(kw)-1])) || strings.Contains(text, string(kw[1:])) {
			return true
		}
		for i := range kw {
			variant := string(kw[:i]) + string(kw[i+1:])
			if strings.Contains(text, variant) {
				return true
			}
		}
	}
	if len(kw) >= 3 && strings.HasPrefix(text, keyword) {
		return true
	}
	return false
}
