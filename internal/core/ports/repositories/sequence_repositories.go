package repositories

import (
	"context"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
)

// SequenceReserver hands out letter-number ordinals per numbering scope.
type SequenceReserver interface {
	// ReserveOrdinal atomically stores and returns max(last reserved, floor)+1 for scope.
	// Two calls never return the same ordinal for the same scope.
	ReserveOrdinal(ctx context.Context, scope domain.SequenceScope, floor int) (int, error)
}
