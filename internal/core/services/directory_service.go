package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
)

// directoryService provides read access to users and units.
type directoryService struct {
	BaseService
	userRepo portsrepo.UserReader
	unitRepo portsrepo.UnitReader
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(userRepo portsrepo.UserReader, unitRepo portsrepo.UnitReader) portssvc.DirectorySvcFacade {
	return &directoryService{userRepo: userRepo, unitRepo: unitRepo}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

func (s *directoryService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *directoryService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *directoryService) GetUnit(ctx context.Context, unitID string) (*dto.UnitResponse, error) {
	unit, err := s.unitRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	fullCode, err := ResolveUnitCode(ctx, s.unitRepo, unitID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compose unit code", slog.String("unit_id", unitID))
		return nil, err
	}
	return &dto.UnitResponse{
		UnitID:   unit.UnitID,
		Code:     unit.Code,
		FullCode: fullCode,
		Name:     unit.Name,
		ParentID: unit.ParentID,
	}, nil
}
