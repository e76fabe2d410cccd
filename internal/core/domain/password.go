package domain

import "unicode"

const minPasswordLength = 8

// ValidatePassword requires at least 8 characters including a digit and an
// upper-case letter.
func ValidatePassword(raw string) error {
	if len([]rune(raw)) < minPasswordLength {
		return ErrPasswordPolicy
	}
	var hasDigit, hasUpper bool
	for _, r := range raw {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit || !hasUpper {
		return ErrPasswordPolicy
	}
	return nil
}
