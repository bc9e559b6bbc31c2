package repository

import (
	"errors"
	"strings"

	"partner_management/internal/domain"

	"gorm.io/gorm"
)

// notFound maps gorm.ErrRecordNotFound to a domain NotFound error
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(message)
	}
	return err
}

// isDuplicateKey reports a unique constraint violation. TranslateError covers the
// supported drivers; the message check catches drivers without a translator.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}

func toLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
