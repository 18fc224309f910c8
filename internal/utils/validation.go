package utils

import (
	"regexp"
)

// EmailRegex accepts "something@something.something" with no whitespace and a
// single "@". It is deliberately permissive and does not implement RFC 5322.
var EmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email has a plausible address shape
func IsValidEmail(email string) bool {
	return EmailRegex.MatchString(email)
}
