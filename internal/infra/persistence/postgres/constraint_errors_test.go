package postgres

import (
	"database/sql/driver"
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreError_ConnectivityFailuresAreRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "bad connection", err: driver.ErrBadConn},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")},
		{name: "connection reset", err: errors.New("read tcp 10.0.0.1:41372->10.0.0.2:5432: read: connection reset by peer")},
		{name: "admin shutdown", err: errors.New("FATAL: terminating connection due to administrator command (SQLSTATE 57P01)")},
		{name: "connection failure class", err: errors.New("connection failure (SQLSTATE 08006)")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := storeError(tc.err, "failed to create order")

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
			assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
			assert.Equal(t, "failed to create order", appErr.Details())
		})
	}
}

func TestStoreError_StatementFailureIsNotRetryable(t *testing.T) {
	err := storeError(errors.New(`null value in column "name" violates not-null constraint (SQLSTATE 23502)`), "failed to create product")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to create product", appErr.Details())
}
