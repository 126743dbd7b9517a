package services

import (
	"context"
	"time"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
)

// disposisiService routes incoming letters to users.
type disposisiService struct {
	*letterCommands
}

// NewDisposisiService creates a new DisposisiService.
func NewDisposisiService(letters portsrepo.LetterRepositoryFacade, users portsrepo.UserReader, opts ...ServiceOption) portssvc.DisposisiSvcFacade {
	return &disposisiService{letterCommands: newLetterCommands(letters, users, opts...)}
}

var _ portssvc.DisposisiSvcFacade = (*disposisiService)(nil)

func (s *disposisiService) AddRouting(ctx context.Context, letterID string, req dto.AddRoutingRequest, actorID string) (*domain.RoutingEntry, error) {
	target, err := s.member(ctx, req.TargetUserID, "routing target")
	if err != nil {
		return nil, err
	}
	var entry domain.RoutingEntry
	_, err = s.run(ctx, "AddRouting", letterID, actorID, func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		in, err := asIncoming(l)
		if err != nil {
			return "", err
		}
		entry, err = in.AddRouting(actor, target, req.Note, req.Urgency, req.ParentEntryID, at)
		return domain.EventRoutingAdded, err
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *disposisiService) SetRoutingStatus(ctx context.Context, letterID string, entryID string, req dto.SetRoutingStatusRequest, actorID string) (*domain.RoutingEntry, error) {
	var entry domain.RoutingEntry
	_, err := s.run(ctx, "SetRoutingStatus", letterID, actorID, func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		in, err := asIncoming(l)
		if err != nil {
			return "", err
		}
		if err := in.SetRoutingStatus(entryID, req.Status, actor, at); err != nil {
			return "", err
		}
		for _, e := range in.Routing {
			if e.EntryID == entryID {
				entry = e
			}
		}
		return domain.EventRoutingStatusSet, nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
