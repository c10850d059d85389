package utils

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// at least one letter anywhere in the password
	letterPattern = regexp.MustCompile(`[a-zA-Z]`)
)

// ValidEmail reports whether the address has the basic user@host.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword enforces the account password policy: six characters minimum,
// at least one letter.
func ValidPassword(password string) bool {
	return len(password) >= 6 && letterPattern.MatchString(password)
}
