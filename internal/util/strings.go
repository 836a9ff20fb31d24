// Package util provides common utility functions used across the codebase.
package util

import "strings"

// JoinOrDefault joins non-empty strings with sep or returns def when nothing is left.
// Useful for status lines built from optional pieces.
func JoinOrDefault(items []string, sep, def string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return def
	}
	return strings.Join(kept, sep)
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Truncate cuts s to at most max runes. Multi-byte names (process names on
// localized systems, container names) are never split mid-character.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
