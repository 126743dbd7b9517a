package search

import (
	"context"
	"log/slog"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/SscSPs/correspondence_app/internal/middleware"
)

// Service tries Meilisearch first and falls back to the letter store's own search.
type Service struct {
	meili    *Meili
	fallback portsrepo.LetterSearcher
}

// NewService creates a search service. meili may be nil if Meilisearch is not configured.
func NewService(meili *Meili, fallback portsrepo.LetterSearcher) *Service {
	return &Service{meili: meili, fallback: fallback}
}

var _ portsrepo.LetterSearcher = (*Service)(nil)

func (s *Service) SearchLetterIDs(ctx context.Context, query string, limit int) ([]string, error) {
	if s.meili != nil && s.meili.Healthy() {
		ids, err := s.meili.SearchLetterIDs(ctx, query, limit)
		if err == nil {
			return ids, nil
		}
		middleware.GetLoggerFromCtx(ctx).Warn("Meilisearch error, falling back to store search", slog.String("error", err.Error()))
	}
	return s.fallback.SearchLetterIDs(ctx, query, limit)
}

// HandleLetterEvent re-indexes the letter an event carries. It is subscribed to the event bus.
func (s *Service) HandleLetterEvent(ctx context.Context, event domain.LetterEvent) error {
	if s.meili == nil || !s.meili.Healthy() || event.Letter == nil {
		return nil
	}
	return s.meili.IndexLetter(ToDocument(event.Letter))
}
