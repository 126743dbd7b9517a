// Package memory holds in-process implementations of the repository ports. It backs the service
// when no database is configured and serves as the reference store in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/SscSPs/correspondence_app/internal/utils/pagination"
)

// LetterStore keeps letters as encoded snapshots so callers never share memory with the store.
type LetterStore struct {
	mu      sync.Mutex
	letters map[string][]byte
}

// NewLetterStore creates an empty store.
func NewLetterStore() *LetterStore {
	return &LetterStore{letters: make(map[string][]byte)}
}

var (
	_ portsrepo.LetterRepositoryFacade = (*LetterStore)(nil)
	_ portsrepo.LetterSearcher         = (*LetterStore)(nil)
)

func (s *LetterStore) SaveLetter(ctx context.Context, letter domain.Letter) error {
	raw, err := domain.MarshalLetter(letter)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := letter.Base().LetterID
	if _, exists := s.letters[id]; exists {
		return fmt.Errorf("%w: letter %s", apperrors.ErrDuplicate, id)
	}
	s.letters[id] = raw
	return nil
}

func (s *LetterStore) FindLetterByID(ctx context.Context, letterID string) (domain.Letter, error) {
	s.mu.Lock()
	raw, ok := s.letters[letterID]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: letter %s", apperrors.ErrNotFound, letterID)
	}
	return domain.UnmarshalLetter(raw)
}

func (s *LetterStore) UpdateLetter(ctx context.Context, letterID string, fn func(domain.Letter) error) (domain.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.letters[letterID]
	if !ok {
		return nil, fmt.Errorf("%w: letter %s", apperrors.ErrNotFound, letterID)
	}
	working, err := domain.UnmarshalLetter(raw)
	if err != nil {
		return nil, err
	}
	if err := fn(working); err != nil {
		return nil, err
	}
	updated, err := domain.MarshalLetter(working)
	if err != nil {
		return nil, err
	}
	s.letters[letterID] = updated
	return domain.UnmarshalLetter(updated)
}

func (s *LetterStore) all() ([]domain.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Letter, 0, len(s.letters))
	for _, raw := range s.letters {
		l, err := domain.UnmarshalLetter(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *LetterStore) ListLetters(ctx context.Context, filter portsrepo.LetterFilter, limit int, nextToken *string) ([]domain.Letter, *string, error) {
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	if limit <= 0 {
		limit = 20
	}
	letters, err := s.all()
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(letters, func(i, j int) bool {
		a, b := letters[i].Base(), letters[j].Base()
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.LetterID < b.LetterID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	page := make([]domain.Letter, 0, limit)
	for _, l := range letters {
		b := l.Base()
		if cursor != nil && !cursor.After(b.CreatedAt, b.LetterID) {
			continue
		}
		if !matches(l, filter) {
			continue
		}
		if len(page) == limit {
			last := page[len(page)-1].Base()
			token := pagination.EncodeToken(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.LetterID})
			return page, &token, nil
		}
		page = append(page, l)
	}
	return page, nil, nil
}

func matches(l domain.Letter, f portsrepo.LetterFilter) bool {
	b := l.Base()
	if f.Kind != nil && l.Kind() != *f.Kind {
		return false
	}
	if f.Status != nil && domain.StatusOf(l) != *f.Status {
		return false
	}
	if f.Archived != nil && b.IsArchived != *f.Archived {
		return false
	}
	if f.CreatorID != nil && b.Creator.UserID != *f.CreatorID {
		return false
	}
	return true
}

func (s *LetterStore) CountOutgoingInScope(ctx context.Context, scope domain.SequenceScope, excludeID string) (int, error) {
	letters, err := s.all()
	if err != nil {
		return 0, err
	}
	return domain.CountInScope(letters, scope, excludeID), nil
}

// SearchLetterIDs is a case-insensitive substring match over subject, number, sender and recipient,
// newest first.
func (s *LetterStore) SearchLetterIDs(ctx context.Context, query string, limit int) ([]string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	letters, err := s.all()
	if err != nil {
		return nil, err
	}
	sort.Slice(letters, func(i, j int) bool {
		return letters[i].Base().CreatedAt.After(letters[j].Base().CreatedAt)
	})
	ids := make([]string, 0)
	for _, l := range letters {
		if len(ids) == limit {
			break
		}
		for _, field := range domain.SearchableFields(l) {
			if q != "" && strings.Contains(strings.ToLower(field), q) {
				ids = append(ids, l.Base().LetterID)
				break
			}
		}
	}
	return ids, nil
}
