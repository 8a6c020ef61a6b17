package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPagination() *config.PaginationConfig {
	return &config.PaginationConfig{
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}
