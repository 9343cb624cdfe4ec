// Package textnorm normalizes free text for phrase matching.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace      = regexp.MustCompile(`\s+`)
)

// Normalize folds accents to ASCII, lowercases, replaces every character other
// than [a-z0-9] and whitespace with a space, and collapses whitespace runs.
// Digits are kept so dimensions such as "16x32" survive.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(unidecode.Unidecode(s))
	s = nonAlphanumeric.ReplaceAllString(s, " ")

	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Tokens splits normalized text into words.
func Tokens(normalized string) []string {
	return strings.Fields(normalized)
}

// ContainsWord reports whether word appears as a whole token.
func ContainsWord(tokens []string, word string) bool {
	for _, t := range tokens {
		if t == word {
			return true
		}
	}

	return false
}
