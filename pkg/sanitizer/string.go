package sanitizer

import "strings"

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// CollapseWhitespace trims a string and replaces internal whitespace runs
// with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeEmail canonicalizes an email address for comparison and storage:
// trimmed, lowercased. Validation is the validator package's job.
func NormalizeEmail(s string) string {
	return ToLower(Trim(s))
}
