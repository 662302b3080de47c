package postgres

import (
	"strings"

	"bazaar/internal/errors"

	"gorm.io/gorm"
)

// The connection runs with TranslateError, so the dialect maps SQLSTATE
// 23505, 23503 and 23514 onto the gorm sentinels below.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// not_null_violation (23502) has no gorm sentinel.
func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null constraint") ||
		strings.Contains(errMsg, "23502")
}
