package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
)

// numberingService renders letter numbers from the configured templates. Ordinals come from a
// SequenceReserver so two letters in the same scope never share one.
type numberingService struct {
	*letterCommands
	templates       domain.NumberingTemplates
	units           portsrepo.UnitReader
	classifications portsrepo.ClassificationReader
	sequences       portsrepo.SequenceReserver
}

// NumberingDeps groups the collaborators of the numbering service.
type NumberingDeps struct {
	Letters         portsrepo.LetterRepositoryFacade
	Users           portsrepo.UserReader
	Units           portsrepo.UnitReader
	Classifications portsrepo.ClassificationReader
	Sequences       portsrepo.SequenceReserver
	Templates       domain.NumberingTemplates
}

// NewNumberingService creates a new NumberingService.
func NewNumberingService(deps NumberingDeps, opts ...ServiceOption) portssvc.NumberingSvcFacade {
	return &numberingService{
		letterCommands:  newLetterCommands(deps.Letters, deps.Users, opts...),
		templates:       deps.Templates,
		units:           deps.Units,
		classifications: deps.Classifications,
		sequences:       deps.Sequences,
	}
}

var _ portssvc.NumberingSvcFacade = (*numberingService)(nil)

// ResolveUnitCode returns the full unit code of unitID: "parent.child" for branch units.
func ResolveUnitCode(ctx context.Context, units portsrepo.UnitReader, unitID string) (string, error) {
	if unitID == "" {
		return "", fmt.Errorf("%w: issuing unit is not set", apperrors.ErrValidation)
	}
	unit, err := units.FindUnitByID(ctx, unitID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve unit %s: %w", unitID, err)
	}
	if !unit.IsBranch() {
		return domain.ComposeUnitCode(*unit, nil), nil
	}
	parent, err := units.FindUnitByID(ctx, *unit.ParentID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve parent unit of %s: %w", unitID, err)
	}
	return domain.ComposeUnitCode(*unit, parent), nil
}

func (s *numberingService) GenerateLetterNumber(ctx context.Context, letterID string, req dto.GenerateNumberRequest, actorID string) (*domain.OutgoingLetter, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	current, err := s.letters.FindLetterByID(ctx, letterID)
	if err != nil {
		return nil, err
	}
	letter, err := asOutgoing(current)
	if err != nil {
		return nil, err
	}

	// Everything that can reject the command is checked before an ordinal is reserved.
	if err := letter.CanAssignNumber(actor, req.Regenerate); err != nil {
		return nil, err
	}
	scope, err := letter.NumberingScope()
	if err != nil {
		return nil, err
	}
	unitCode, err := ResolveUnitCode(ctx, s.units, letter.UnitID)
	if err != nil {
		return nil, err
	}
	classification, err := s.classifications.FindClassificationByID(ctx, *letter.ClassificationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: classification %s does not exist", apperrors.ErrMissingClassification, *letter.ClassificationID)
		}
		return nil, fmt.Errorf("failed to resolve classification: %w", err)
	}

	floor, err := s.letters.CountOutgoingInScope(ctx, scope, letter.LetterID)
	if err != nil {
		return nil, fmt.Errorf("failed to count letters in scope %s: %w", scope.Key(), err)
	}
	ordinal, err := s.sequences.ReserveOrdinal(ctx, scope, floor)
	if err != nil {
		s.LogError(ctx, err, "Failed to reserve ordinal", slog.String("scope", scope.Key()))
		return nil, fmt.Errorf("failed to reserve ordinal: %w", err)
	}

	number, err := domain.GenerateNumber(s.templates.For(letter.OutgoingKind), domain.NumberingContext{
		UnitCode:           unitCode,
		ClassificationCode: classification.Code,
		PrimaryIssueID:     letter.PrimaryIssueID,
		ClassificationID:   letter.ClassificationID,
		Year:               scope.Year,
		ExistingCount:      ordinal - 1,
		Kind:               letter.OutgoingKind,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.run(ctx, "GenerateLetterNumber", letterID, actorID, func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		out, err := asOutgoing(l)
		if err != nil {
			return "", err
		}
		// The letter may have been edited since it was read; its scope must still match the ordinal.
		if latest, err := out.NumberingScope(); err != nil || latest != scope {
			return "", fmt.Errorf("%w: letter %s changed while it was being numbered", apperrors.ErrInvalidTransition, out.LetterID)
		}
		return domain.EventNumberAssigned, out.AssignNumber(number, req.Regenerate, actor, at)
	})
	if err != nil {
		s.LogCommandError(ctx, err, "Reserved ordinal left unused",
			slog.String("scope", scope.Key()), slog.Int("ordinal", ordinal))
		return nil, err
	}
	return updated.(*domain.OutgoingLetter), nil
}
