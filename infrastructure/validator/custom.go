package validator

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// At least 8 characters with an upper, a lower, a digit and a special
// character. Enforced at enrollment only; verification accepts whatever was
// enrolled.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 {
		return false
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	hasSpecialChar := false

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		default:
			hasSpecialChar = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecialChar
}

func validateNameWithSpecialChars(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	regex := regexp.MustCompile(`^[\p{L}'\- ]+$`)
	return regex.MatchString(name)
}
