package wizard

import (
	"regexp"
	"strings"
)

// AccountNumberLength is the length of a NUBAN account number.
const AccountNumberLength = 10

// Whitespace covers Unicode separators and \v as well as RE2's ASCII \s.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}@]+@[^\s\v\p{Z}@]+\.[^\s\v\p{Z}@]+$`)

// IsValidEmail reports whether email has the local@domain.tld shape with no
// embedded whitespace.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// SanitizeAccountNumber drops every non-digit and truncates to
// AccountNumberLength digits.
func SanitizeAccountNumber(raw string) string {
	var b strings.Builder
	b.Grow(AccountNumberLength)
	for _, r := range raw {
		if b.Len() == AccountNumberLength {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidAccountNumber reports whether s is exactly AccountNumberLength ASCII
// digits.
func IsValidAccountNumber(s string) bool {
	if len(s) != AccountNumberLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
