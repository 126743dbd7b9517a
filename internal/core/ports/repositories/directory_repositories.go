package repositories

import (
	"context"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// UnitReader resolves organisational units.
type UnitReader interface {
	FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error)
}

// UnitRepositoryFacade adds unit setup to UnitReader.
type UnitRepositoryFacade interface {
	UnitReader
	SaveUnit(ctx context.Context, unit domain.Unit) error
}

// ClassificationReader resolves archive classifications.
type ClassificationReader interface {
	FindClassificationByID(ctx context.Context, classificationID string) (*domain.Classification, error)
}

// ClassificationRepositoryFacade adds classification setup to ClassificationReader.
type ClassificationRepositoryFacade interface {
	ClassificationReader
	SaveClassification(ctx context.Context, c domain.Classification) error
}
