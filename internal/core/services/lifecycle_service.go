package services

import (
	"context"
	"time"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
)

// lifecycleService drives outgoing letters through approval and signature.
type lifecycleService struct {
	*letterCommands
}

// NewLifecycleService creates a new LifecycleService.
func NewLifecycleService(letters portsrepo.LetterRepositoryFacade, users portsrepo.UserReader, opts ...ServiceOption) portssvc.LifecycleSvcFacade {
	return &lifecycleService{letterCommands: newLetterCommands(letters, users, opts...)}
}

var _ portssvc.LifecycleSvcFacade = (*lifecycleService)(nil)

func (s *lifecycleService) outgoing(ctx context.Context, op, letterID, actorID string, fn func(*domain.OutgoingLetter, domain.UserRef, time.Time) (domain.LetterEventType, error)) (*domain.OutgoingLetter, error) {
	updated, err := s.run(ctx, op, letterID, actorID, func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		out, err := asOutgoing(l)
		if err != nil {
			return "", err
		}
		return fn(out, actor, at)
	})
	if err != nil {
		return nil, err
	}
	return updated.(*domain.OutgoingLetter), nil
}

func (s *lifecycleService) SubmitForApproval(ctx context.Context, letterID string, actorID string) (*domain.OutgoingLetter, error) {
	return s.outgoing(ctx, "SubmitForApproval", letterID, actorID, func(l *domain.OutgoingLetter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		return domain.EventSubmitted, l.SubmitForApproval(actor, at)
	})
}

func (s *lifecycleService) DecideStep(ctx context.Context, letterID string, stepID string, req dto.DecisionRequest, actorID string) (*domain.OutgoingLetter, error) {
	return s.outgoing(ctx, "DecideStep", letterID, actorID, func(l *domain.OutgoingLetter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		if err := l.Decide(stepID, req.Decision, req.Notes, actor, at); err != nil {
			return "", err
		}
		switch {
		case l.Status == domain.StatusRevisi:
			return domain.EventLetterRejected, nil
		case l.Status == domain.StatusDisetujui:
			return domain.EventLetterApproved, nil
		default:
			return domain.EventStepApproved, nil
		}
	})
}

func (s *lifecycleService) AttachSignature(ctx context.Context, letterID string, req dto.SignatureRequest, signerID string) (*domain.OutgoingLetter, error) {
	return s.outgoing(ctx, "AttachSignature", letterID, signerID, func(l *domain.OutgoingLetter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		return domain.EventLetterSigned, l.AttachSignature(req.ToArtifact(), actor, at)
	})
}
