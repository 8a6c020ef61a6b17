// Package handler contains the HTTP handlers for the application.
package handler

import (
	"storefront/internal/delivery/http/middleware"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// actorFromContext returns the actor placed on the context by the
// authentication middleware.
func actorFromContext(c echo.Context) (usecase.Actor, error) {
	actor, ok := c.Get(middleware.ActorContextKey).(usecase.Actor)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}
