// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated account performing an operation.
// Handlers build it from the verified token claims.
type Actor struct {
	AccountID uuid.UUID
	Role      entity.Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// IsSeller reports whether the actor holds the seller role.
func (a Actor) IsSeller() bool {
	return a.Role == entity.RoleSeller
}

// Pagination describes the paging window applied to a listing and the size
// of the full result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination derives the output paging block from a window and a total.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
