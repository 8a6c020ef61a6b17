package postgres

import (
	"database/sql/driver"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "23514") // PostgreSQL check_violation error code
}

// isConnectivityError reports whether the error means the database itself is
// unreachable, as opposed to a statement that failed on a healthy connection.
func isConnectivityError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, gorm.ErrInvalidDB) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.Contains(errMsg, "08000") || // PostgreSQL connection_exception class
		strings.Contains(errMsg, "08003") || // connection_does_not_exist
		strings.Contains(errMsg, "08006") || // connection_failure
		strings.Contains(errMsg, "57p01") // admin_shutdown
}

// storeError translates a failed statement into the domain taxonomy:
// connectivity failures surface as the retryable 503, everything else as a
// plain execution failure.
func storeError(err error, details string) error {
	if isConnectivityError(err) {
		return domainerrors.ErrStoreUnavailable.WithDetails(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
