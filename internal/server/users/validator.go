package users

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern accepts a local@domain.tld shape: a non-@ run, an @, and a
// non-@ run containing a dot. No DNS or MX checks. The pattern is anchored
// at the start only, matching the behavior the service has always had.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsStrongPassword reports whether s is at least 8 characters long and
// contains an uppercase letter, a lowercase letter, a digit, and one of
// the special characters !@#$%^&*(),.?":{}|<>. The four class checks are
// independent; failing any one fails the whole check.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	return upper && lower && digit && special
}
