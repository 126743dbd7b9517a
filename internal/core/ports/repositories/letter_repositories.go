package repositories

import (
	"context"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
)

// LetterFilter narrows ListLetters. Nil fields do not filter.
type LetterFilter struct {
	Kind      *domain.LetterKind
	Status    *domain.LetterStatus
	Archived  *bool
	CreatorID *string
}

// LetterReader defines read operations for letter data
type LetterReader interface {
	// FindLetterByID retrieves a letter of any kind by its identifier.
	FindLetterByID(ctx context.Context, letterID string) (domain.Letter, error)

	// ListLetters retrieves letters newest first using token-based pagination.
	// It returns the letters, a token for the next page, and an error.
	ListLetters(ctx context.Context, filter LetterFilter, limit int, nextToken *string) ([]domain.Letter, *string, error)

	// CountOutgoingInScope counts outgoing letters in a numbering scope, skipping excludeID.
	CountOutgoingInScope(ctx context.Context, scope domain.SequenceScope, excludeID string) (int, error)
}

// LetterWriter defines write operations for letter data
type LetterWriter interface {
	// SaveLetter persists a new letter.
	SaveLetter(ctx context.Context, letter domain.Letter) error

	// UpdateLetter is the single writer of an existing letter. fn runs on a private copy while the
	// letter is locked; the copy is stored only when fn returns nil.
	UpdateLetter(ctx context.Context, letterID string, fn func(domain.Letter) error) (domain.Letter, error)
}

// LetterSearcher finds letters by free text.
type LetterSearcher interface {
	// SearchLetterIDs returns matching letter ids, best match first.
	SearchLetterIDs(ctx context.Context, query string, limit int) ([]string, error)
}

// LetterRepositoryFacade combines all letter-related repository interfaces
type LetterRepositoryFacade interface {
	LetterReader
	LetterWriter
}
