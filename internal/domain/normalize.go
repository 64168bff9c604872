package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal
// whitespace runs. It is used for area/adoptee/team name normalization.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeEmail canonicalizes an email address to its stored form:
// trimmed and lowercased. Identity emails are unique under this form.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
