// Package moderation decides whether a piece of text violates the blacklist.
package moderation

import "strings"

// IsBlocked reports whether text contains any of the given words as a
// case-sensitive substring. Empty words are ignored: an empty blacklist
// entry would otherwise match every text, including the empty one.
func IsBlocked(text string, words []string) bool {
	for _, word := range words {
		if word == "" {
			continue
		}
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
