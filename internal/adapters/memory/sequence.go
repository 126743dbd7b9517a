package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
)

// SequenceReserver keeps the last reserved ordinal per scope behind a mutex.
type SequenceReserver struct {
	mu   sync.Mutex
	last map[string]int
}

// NewSequenceReserver creates a reserver with no reserved ordinals.
func NewSequenceReserver() *SequenceReserver {
	return &SequenceReserver{last: make(map[string]int)}
}

var _ portsrepo.SequenceReserver = (*SequenceReserver)(nil)

func (r *SequenceReserver) ReserveOrdinal(ctx context.Context, scope domain.SequenceScope, floor int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := max(r.last[scope.Key()], floor) + 1
	r.last[scope.Key()] = next
	return next, nil
}
