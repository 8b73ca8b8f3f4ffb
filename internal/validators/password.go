package validators

import "unicode"

// Password policy: at least 8 characters with at least one letter and
// one digit.
const MinPasswordLen = 8

func IsPasswordValid(password string) bool {
	if len(password) < MinPasswordLen {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
