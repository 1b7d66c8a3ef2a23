package auth

import (
	"fmt"
	"strings"
	"unicode"

	"portfolio-core/pkg/contracts"
)

const minPasswordLength = 8

var commonPatterns = []string{
	"123456", "password", "qwerty", "admin", "letmein",
	"welcome", "123123", "12345678", "abc123",
}

// ValidatePasswordStrength enforces the password policy on updates: length,
// character classes, and a denylist of common patterns. The default password
// predates the policy and is exempt.
func ValidatePasswordStrength(password string) error {
	var errs []string
	if len(password) < minPasswordLength {
		errs = append(errs, fmt.Sprintf("must be at least %d characters long", minPasswordLength))
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		errs = append(errs, "must contain at least one uppercase letter")
	}
	if !hasLower {
		errs = append(errs, "must contain at least one lowercase letter")
	}
	if !hasDigit {
		errs = append(errs, "must contain at least one number")
	}
	if !hasSpecial {
		errs = append(errs, "must contain at least one special character")
	}

	lowered := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lowered, pattern) {
			errs = append(errs, "contains a common pattern that is easily guessable")
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: password %s", contracts.ErrValidation, strings.Join(errs, "; "))
	}
	return nil
}
