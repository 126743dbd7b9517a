package services

import (
	"context"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/SscSPs/correspondence_app/internal/dto"
)

// LetterReaderSvc defines read operations for letters
type LetterReaderSvc interface {
	// GetLetterView retrieves a letter with the values derived for viewerID.
	GetLetterView(ctx context.Context, letterID string, viewerID string) (*domain.LetterView, error)

	// ListLetters retrieves a page of letters.
	ListLetters(ctx context.Context, viewerID string, params dto.ListLettersParams) (*dto.ListLettersResponse, error)

	// SearchLetters runs a free text search over the archive index.
	SearchLetters(ctx context.Context, viewerID string, params dto.SearchLettersParams) ([]domain.Letter, error)
}

// LetterWriterSvc defines write operations shared by every letter kind
type LetterWriterSvc interface {
	// CreateOutgoingLetter drafts a new outgoing letter in Draf at version 1.
	CreateOutgoingLetter(ctx context.Context, req dto.CreateOutgoingLetterRequest, creatorID string) (*domain.OutgoingLetter, error)

	// CreateIncomingLetter registers a received letter.
	CreateIncomingLetter(ctx context.Context, req dto.CreateIncomingLetterRequest, registrarID string) (*domain.IncomingLetter, error)

	// CreateInternalMemo drafts a new memo.
	CreateInternalMemo(ctx context.Context, req dto.CreateMemoRequest, creatorID string) (*domain.InternalMemo, error)

	// UpdateOutgoingDraft edits a Draf or Revisi letter. Only its creator may do it.
	UpdateOutgoingDraft(ctx context.Context, letterID string, req dto.UpdateOutgoingDraftRequest, editorID string) (*domain.OutgoingLetter, error)

	// SendMemo delivers a draft memo.
	SendMemo(ctx context.Context, letterID string, actorID string) (*domain.InternalMemo, error)

	// AddComment appends to the letter's comment thread.
	AddComment(ctx context.Context, letterID string, req dto.AddCommentRequest, authorID string) (*domain.Comment, error)

	// ArchiveLetter files the letter into an archive folder.
	ArchiveLetter(ctx context.Context, letterID string, req dto.ArchiveLetterRequest, actorID string) (domain.Letter, error)
}

// LetterSvcFacade combines all letter-related service interfaces
type LetterSvcFacade interface {
	LetterReaderSvc
	LetterWriterSvc
}
