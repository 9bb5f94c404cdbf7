// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// emailRegex requires a local part without '@', an '@', and a dot somewhere
// in the domain. Intentionally loose; deliverability is not our problem.
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

const maxUsernameLen = 50

// ValidateUsername checks that a username is present and within bounds.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", maxUsernameLen)
	}
	return nil
}

// ValidateEmail checks that an email has a local@domain.tld shape.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email must have the form local@domain.tld")
	}
	return nil
}

// ValidateContent checks that content is non-empty and at most maxLen runes.
func ValidateContent(content string, maxLen int) error {
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) > maxLen {
		return fmt.Errorf("content must not exceed %d characters", maxLen)
	}
	return nil
}
