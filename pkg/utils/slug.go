package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a category name into its URL-safe normal form: lowercase,
// every run of characters outside [a-z0-9] collapsed to a single hyphen,
// leading and trailing hyphens trimmed. Idempotent, so a slug can be passed
// back through without change.
func Slugify(text string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(s, "-")
}
