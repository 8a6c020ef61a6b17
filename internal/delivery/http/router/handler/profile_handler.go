package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and address book handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile returns the acting account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// UpdateProfile applies name and password changes to the acting account.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), actor, usecase.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// ListAddresses returns the actor's address book, default first.
func (h *ProfileHandler) ListAddresses(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAddressViews(addresses))
}

type addressRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	IsDefault  bool   `json:"isDefault"`
}

func (r addressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		FullName:   r.FullName,
		Phone:      r.Phone,
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		IsDefault:  r.IsDefault,
	}
}

// AddAddress creates a new delivery address for the actor.
func (h *ProfileHandler) AddAddress(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.AddAddress(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAddressView(address))
}

// UpdateAddress replaces the fields of one of the actor's addresses.
func (h *ProfileHandler) UpdateAddress(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid address ID")
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), actor, addressID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAddressView(address))
}

// RemoveAddress deletes one of the actor's addresses.
func (h *ProfileHandler) RemoveAddress(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid address ID")
	}

	if err := h.uc.RemoveAddress(c.Request().Context(), actor, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address removed"})
}
