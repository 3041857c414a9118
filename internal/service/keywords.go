package service

import "strings"

// MatchesKeywords reports whether any keyword occurs, case-insensitively, in
// the title or body.
func MatchesKeywords(keywords []string, title, content string) bool {
	haystack := strings.ToLower(title + " " + content)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
