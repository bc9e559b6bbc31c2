package utils

import (
	"unicode" // Character classes

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

// ValidatePassword returns one message per violated rule, or nil
func ValidatePassword(password string) []string {
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}
	var errs []string
	if len([]rune(password)) < MinPasswordLength {
		errs = append(errs, "Passwords must be at least 6 characters.")
	}
	if !hasSymbol {
		errs = append(errs, "Passwords must have at least one non alphanumeric character.")
	}
	if !hasDigit {
		errs = append(errs, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		errs = append(errs, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		errs = append(errs, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return errs
}

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a candidate password
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
