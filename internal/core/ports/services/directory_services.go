package services

import (
	"context"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/SscSPs/correspondence_app/internal/dto"
)

// DirectorySvcFacade exposes the user and unit directory that approver and routing pickers read from.
type DirectorySvcFacade interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error)

	// GetUnit retrieves a unit together with its composed numbering code.
	GetUnit(ctx context.Context, unitID string) (*dto.UnitResponse, error)
}
