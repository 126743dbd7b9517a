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

const (
	defaultListLimit   = 20
	defaultSearchLimit = 20
)

// letterService provides creation, editing, reading and archival of letters of every kind.
type letterService struct {
	*letterCommands
	search portsrepo.LetterSearcher
}

// NewLetterService creates a new LetterService. search may be nil when no index is configured.
func NewLetterService(letters portsrepo.LetterRepositoryFacade, users portsrepo.UserReader, search portsrepo.LetterSearcher, opts ...ServiceOption) portssvc.LetterSvcFacade {
	return &letterService{
		letterCommands: newLetterCommands(letters, users, opts...),
		search:         search,
	}
}

var _ portssvc.LetterSvcFacade = (*letterService)(nil)

func letterDate(d *time.Time, at time.Time) time.Time {
	if d == nil {
		return at
	}
	return *d
}

func (s *letterService) CreateOutgoingLetter(ctx context.Context, req dto.CreateOutgoingLetterRequest, creatorID string) (*domain.OutgoingLetter, error) {
	creator, err := s.actor(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	approvers, err := s.members(ctx, req.ApproverIDs, "approver")
	if err != nil {
		return nil, err
	}
	if req.InReplyToID != nil && *req.InReplyToID != "" {
		if err := s.checkReplyTarget(ctx, *req.InReplyToID); err != nil {
			return nil, err
		}
	}

	at := s.now()
	letter, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{
		Subject:          req.Subject,
		LetterDate:       letterDate(req.LetterDate, at),
		CategoryID:       req.CategoryID,
		Sensitivity:      req.Sensitivity,
		Recipient:        req.Recipient,
		OutgoingKind:     req.OutgoingKind,
		UnitID:           req.UnitID,
		PrimaryIssueID:   req.PrimaryIssueID,
		ClassificationID: req.ClassificationID,
		Summary:          req.Summary,
		InReplyToID:      req.InReplyToID,
		Approvers:        approvers,
		Attachments:      dto.ToAttachments(req.Attachments),
	}, at)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, letter, creator, at); err != nil {
		return nil, err
	}
	return letter, nil
}

// checkReplyTarget verifies that an outgoing letter answers an existing incoming letter.
func (s *letterService) checkReplyTarget(ctx context.Context, letterID string) error {
	target, err := s.letters.FindLetterByID(ctx, letterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: replied letter %s does not exist", apperrors.ErrValidation, letterID)
		}
		return fmt.Errorf("failed to load replied letter: %w", err)
	}
	if _, err := asIncoming(target); err != nil {
		return err
	}
	return nil
}

func (s *letterService) CreateIncomingLetter(ctx context.Context, req dto.CreateIncomingLetterRequest, registrarID string) (*domain.IncomingLetter, error) {
	registrar, err := s.actor(ctx, registrarID)
	if err != nil {
		return nil, err
	}
	at := s.now()
	received := at
	if req.DateReceived != nil {
		received = *req.DateReceived
	}
	letter, err := domain.NewIncomingLetter(registrar, domain.IncomingRegistration{
		LetterNumber: req.LetterNumber,
		Subject:      req.Subject,
		LetterDate:   letterDate(req.LetterDate, at),
		CategoryID:   req.CategoryID,
		Sensitivity:  req.Sensitivity,
		Sender:       req.Sender,
		DateReceived: received,
		Attachments:  dto.ToAttachments(req.Attachments),
	}, at)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, letter, registrar, at); err != nil {
		return nil, err
	}
	return letter, nil
}

func (s *letterService) CreateInternalMemo(ctx context.Context, req dto.CreateMemoRequest, creatorID string) (*domain.InternalMemo, error) {
	creator, err := s.actor(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	recipients, err := s.members(ctx, req.RecipientIDs, "recipient")
	if err != nil {
		return nil, err
	}
	recipientIDs := make([]string, len(recipients))
	for i, r := range recipients {
		recipientIDs[i] = r.UserID
	}

	at := s.now()
	memo, err := domain.NewInternalMemo(creator, domain.MemoDraft{
		Subject:      req.Subject,
		LetterDate:   letterDate(req.LetterDate, at),
		CategoryID:   req.CategoryID,
		Sensitivity:  req.Sensitivity,
		RecipientIDs: recipientIDs,
		Summary:      req.Summary,
		Attachments:  dto.ToAttachments(req.Attachments),
	}, at)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, memo, creator, at); err != nil {
		return nil, err
	}
	return memo, nil
}

func (s *letterService) UpdateOutgoingDraft(ctx context.Context, letterID string, req dto.UpdateOutgoingDraftRequest, editorID string) (*domain.OutgoingLetter, error) {
	approvers, err := s.members(ctx, req.ApproverIDs, "approver")
	if err != nil {
		return nil, err
	}
	changes := domain.DraftChanges{
		Subject:          req.Subject,
		LetterDate:       req.LetterDate,
		CategoryID:       req.CategoryID,
		Sensitivity:      req.Sensitivity,
		Recipient:        req.Recipient,
		OutgoingKind:     req.OutgoingKind,
		UnitID:           req.UnitID,
		PrimaryIssueID:   req.PrimaryIssueID,
		ClassificationID: req.ClassificationID,
		Summary:          req.Summary,
		Approvers:        approvers,
	}
	updated, err := s.run(ctx, "UpdateOutgoingDraft", letterID, editorID, func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		out, err := asOutgoing(l)
		if err != nil {
			return "", err
		}
		return domain.EventDraftUpdated, out.UpdateDraft(actor, changes, at)
	})
	if err != nil {
		return nil, err
	}
	return updated.(*domain.OutgoingLetter), nil
}

func (s *letterService) SendMemo(ctx context.Context, letterID string, actorID string) (*domain.InternalMemo, error) {
	updated, err := s.run(ctx, "SendMemo", letterID, actorID, func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		memo, err := asMemo(l)
		if err != nil {
			return "", err
		}
		return domain.EventMemoSent, memo.Send(actor, at)
	})
	if err != nil {
		return nil, err
	}
	return updated.(*domain.InternalMemo), nil
}

func (s *letterService) AddComment(ctx context.Context, letterID string, req dto.AddCommentRequest, authorID string) (*domain.Comment, error) {
	var comment domain.Comment
	_, err := s.run(ctx, "AddComment", letterID, authorID, func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		var err error
		comment, err = domain.AddComment(l, actor, req.Body, at)
		return domain.EventCommentAdded, err
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *letterService) ArchiveLetter(ctx context.Context, letterID string, req dto.ArchiveLetterRequest, actorID string) (domain.Letter, error) {
	return s.run(ctx, "ArchiveLetter", letterID, actorID, func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error) {
		return domain.EventLetterArchived, domain.Archive(l, req.FolderID, actor, at)
	})
}

func (s *letterService) GetLetterView(ctx context.Context, letterID string, viewerID string) (*domain.LetterView, error) {
	letter, err := s.letters.FindLetterByID(ctx, letterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get letter", slog.String("letter_id", letterID))
		}
		return nil, err
	}
	view := domain.NewLetterView(letter, viewerID)
	return &view, nil
}

func (s *letterService) ListLetters(ctx context.Context, viewerID string, params dto.ListLettersParams) (*dto.ListLettersResponse, error) {
	filter := portsrepo.LetterFilter{Archived: params.Archived}
	if params.Kind != nil && *params.Kind != "" {
		kind := domain.LetterKind(*params.Kind)
		filter.Kind = &kind
	}
	if params.Status != nil && *params.Status != "" {
		status := domain.LetterStatus(*params.Status)
		filter.Status = &status
	}
	if params.Mine {
		filter.CreatorID = &viewerID
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	letters, nextToken, err := s.letters.ListLetters(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list letters")
		return nil, fmt.Errorf("failed to list letters: %w", err)
	}
	return &dto.ListLettersResponse{
		Letters:   dto.ToLetterViewResponses(letters, viewerID),
		NextToken: nextToken,
	}, nil
}

func (s *letterService) SearchLetters(ctx context.Context, viewerID string, params dto.SearchLettersParams) ([]domain.Letter, error) {
	if s.search == nil {
		return nil, fmt.Errorf("%w: archive search is not configured", apperrors.ErrNotFound)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	ids, err := s.search.SearchLetterIDs(ctx, params.Query, limit)
	if err != nil {
		s.LogError(ctx, err, "Archive search failed", slog.String("query", params.Query))
		return nil, fmt.Errorf("failed to search letters: %w", err)
	}

	letters := make([]domain.Letter, 0, len(ids))
	for _, id := range ids {
		l, err := s.letters.FindLetterByID(ctx, id)
		if errors.Is(err, apperrors.ErrNotFound) {
			// index lags behind the store
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load search hit %s: %w", id, err)
		}
		letters = append(letters, l)
	}
	s.LogDebug(ctx, "Archive search", slog.String("viewer_id", viewerID), slog.Int("hits", len(letters)))
	return letters, nil
}
