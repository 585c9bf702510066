package service

import "regexp"

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// validateRegistration checks the account fields of a registration request.
// The first violated rule wins; rules are checked in username, email,
// password order so clients always see a deterministic message.
func validateRegistration(username, email, password string) error {
	if len(username) < minUsernameLength || !usernamePattern.MatchString(username) {
		return ErrValidationUsername
	}
	if !emailPattern.MatchString(email) {
		return ErrValidationEmail
	}
	if len(password) < minPasswordLength {
		return ErrValidationPassword
	}
	return nil
}
