package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/google/uuid"
)

// IncomingLetter is a letter received from outside. It has no approval lifecycle;
// work on it is driven by routing entries (disposisi).
type IncomingLetter struct {
	LetterBase
	Sender       string         `json:"sender"`
	DateReceived time.Time      `json:"dateReceived"`
	Routing      []RoutingEntry `json:"routing"` // Append-only
}

func (*IncomingLetter) Kind() LetterKind { return KindIncoming }
func (*IncomingLetter) isLetter()        {}

// IncomingRegistration carries the intake data of an incoming letter.
type IncomingRegistration struct {
	LetterNumber string // Number printed on the received letter, may be empty
	Subject      string
	LetterDate   time.Time
	CategoryID   string
	Sensitivity  Sensitivity
	Sender       string
	DateReceived time.Time
	Attachments  []Attachment
}

// NewIncomingLetter registers a received letter.
func NewIncomingLetter(registrar UserRef, r IncomingRegistration, at time.Time) (*IncomingLetter, error) {
	base, err := NewLetterBase(registrar, r.Subject, r.LetterDate, r.CategoryID, r.Sensitivity, at)
	if err != nil {
		return nil, err
	}
	if isBlank(r.Sender) {
		return nil, fmt.Errorf("%w: sender is required", apperrors.ErrValidation)
	}
	if !isBlank(r.LetterNumber) {
		n := strings.TrimSpace(r.LetterNumber)
		base.LetterNumber = &n
	}
	received := r.DateReceived
	if received.IsZero() {
		received = at
	}
	base.Attachments = append([]Attachment(nil), r.Attachments...)
	return &IncomingLetter{
		LetterBase:   base,
		Sender:       strings.TrimSpace(r.Sender),
		DateReceived: received,
	}, nil
}

// RoutingStatus is the progress of one routing entry.
type RoutingStatus string

const (
	RoutingDiproses RoutingStatus = "Diproses"
	RoutingSelesai  RoutingStatus = "Selesai"
	RoutingDitolak  RoutingStatus = "Ditolak"
)

// IsTerminal reports whether the entry can no longer change.
func (s RoutingStatus) IsTerminal() bool {
	return s == RoutingSelesai || s == RoutingDitolak
}

// RoutingEntry is one disposisi instruction addressed to a user.
type RoutingEntry struct {
	EntryID       string        `json:"entryID"`
	ParentEntryID *string       `json:"parentEntryID,omitempty"` // Set when forwarded from another entry
	Creator       UserRef       `json:"creator"`
	Target        UserRef       `json:"target"`
	Note          string        `json:"note"`
	Urgency       Sensitivity   `json:"urgency"`
	Status        RoutingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	DecidedAt     *time.Time    `json:"decidedAt,omitempty"`
}

// AddRouting appends a new Diproses entry. Fan-out is unlimited and the same target may
// receive several entries. When parentEntryID is set, only that entry's target may forward it.
func (l *IncomingLetter) AddRouting(creator, target UserRef, note string, urgency Sensitivity, parentEntryID *string, at time.Time) (RoutingEntry, error) {
	if l.IsArchived {
		return RoutingEntry{}, fmt.Errorf("%w: letter %s is archived", apperrors.ErrInvalidTransition, l.LetterID)
	}
	if creator.IsZero() {
		return RoutingEntry{}, fmt.Errorf("%w: routing creator is required", apperrors.ErrValidation)
	}
	if target.IsZero() {
		return RoutingEntry{}, fmt.Errorf("%w: routing target is required", apperrors.ErrValidation)
	}
	if isBlank(note) {
		return RoutingEntry{}, fmt.Errorf("%w: routing note is required", apperrors.ErrValidation)
	}
	if urgency == "" {
		urgency = SensitivityBiasa
	}
	if !urgency.IsValid() {
		return RoutingEntry{}, fmt.Errorf("%w: unknown urgency %q", apperrors.ErrValidation, urgency)
	}
	parent := nonBlank(parentEntryID)
	if parent != nil {
		idx := l.routingIndex(*parent)
		if idx < 0 {
			return RoutingEntry{}, fmt.Errorf("%w: routing entry %s", apperrors.ErrNotFound, *parent)
		}
		if l.Routing[idx].Target.UserID != creator.UserID {
			return RoutingEntry{}, fmt.Errorf("%w: only the addressed user can forward entry %s", apperrors.ErrForbidden, *parent)
		}
	}

	entry := RoutingEntry{
		EntryID:       uuid.NewString(),
		ParentEntryID: parent,
		Creator:       creator,
		Target:        target,
		Note:          strings.TrimSpace(note),
		Urgency:       urgency,
		Status:        RoutingDiproses,
		CreatedAt:     at,
	}
	l.Routing = append(l.Routing, entry)
	l.touch(creator.UserID, at)
	return entry, nil
}

// SetRoutingStatus closes an entry. Only the addressed user may do it, and only once.
func (l *IncomingLetter) SetRoutingStatus(entryID string, status RoutingStatus, actor UserRef, at time.Time) error {
	if l.IsArchived {
		return fmt.Errorf("%w: letter %s is archived", apperrors.ErrInvalidTransition, l.LetterID)
	}
	if status != RoutingSelesai && status != RoutingDitolak {
		return fmt.Errorf("%w: routing status must be %s or %s", apperrors.ErrValidation, RoutingSelesai, RoutingDitolak)
	}
	idx := l.routingIndex(entryID)
	if idx < 0 {
		return fmt.Errorf("%w: routing entry %s", apperrors.ErrNotFound, entryID)
	}
	entry := l.Routing[idx]
	if actor.UserID != entry.Target.UserID {
		return fmt.Errorf("%w: routing entry %s is addressed to another user", apperrors.ErrForbidden, entryID)
	}
	if entry.Status != RoutingDiproses {
		return fmt.Errorf("%w: routing entry %s is already %s", apperrors.ErrInvalidTransition, entryID, entry.Status)
	}
	decidedAt := at
	l.Routing[idx].Status = status
	l.Routing[idx].DecidedAt = &decidedAt
	l.touch(actor.UserID, at)
	return nil
}

// DistinctRoutingTargets returns target names across all entries, de-duplicated in
// order of first appearance, regardless of entry status.
func (l *IncomingLetter) DistinctRoutingTargets() []string {
	seen := make(map[string]struct{}, len(l.Routing))
	names := make([]string, 0, len(l.Routing))
	for _, e := range l.Routing {
		if _, ok := seen[e.Target.Name]; ok {
			continue
		}
		seen[e.Target.Name] = struct{}{}
		names = append(names, e.Target.Name)
	}
	return names
}

// RoutingFor returns the entries addressed to userID.
func (l *IncomingLetter) RoutingFor(userID string) []RoutingEntry {
	var out []RoutingEntry
	for _, e := range l.Routing {
		if e.Target.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (l *IncomingLetter) routingIndex(entryID string) int {
	for i, e := range l.Routing {
		if e.EntryID == entryID {
			return i
		}
	}
	return -1
}
