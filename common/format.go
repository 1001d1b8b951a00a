package common

import (
	"regexp"
	"strings"
)

// Accepts international numbers with a leading + and up to 14 digits, or
// local numbers starting with 0 followed by 9 to 14 digits.
var phoneRegex = regexp.MustCompile(`^(\+\d{1,14}|0\d{9,14})$`)

func IsValidMobilePhone(mobilePhone string) bool {
	trimmed := strings.TrimSpace(mobilePhone)
	if trimmed == "" {
		return false
	}
	return phoneRegex.MatchString(trimmed)
}

func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
