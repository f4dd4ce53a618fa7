package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error classification.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
