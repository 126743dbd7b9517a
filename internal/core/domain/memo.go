package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
)

// InternalMemo is a nota dinas addressed to users inside the office.
type InternalMemo struct {
	LetterBase
	RecipientIDs []string     `json:"recipientIDs"`
	Summary      string       `json:"summary"`
	Status       LetterStatus `json:"status"`
}

func (*InternalMemo) Kind() LetterKind { return KindMemo }
func (*InternalMemo) isLetter()        {}

// MemoDraft carries the fields of a new memo.
type MemoDraft struct {
	Subject      string
	LetterDate   time.Time
	CategoryID   string
	Sensitivity  Sensitivity
	RecipientIDs []string
	Summary      string
	Attachments  []Attachment
}

// NewInternalMemo creates a memo in Draf.
func NewInternalMemo(creator UserRef, d MemoDraft, at time.Time) (*InternalMemo, error) {
	base, err := NewLetterBase(creator, d.Subject, d.LetterDate, d.CategoryID, d.Sensitivity, at)
	if err != nil {
		return nil, err
	}
	base.Attachments = append([]Attachment(nil), d.Attachments...)
	return &InternalMemo{
		LetterBase:   base,
		RecipientIDs: dedupe(d.RecipientIDs),
		Summary:      d.Summary,
		Status:       StatusDraf,
	}, nil
}

// Send delivers a draft memo to its recipients.
func (m *InternalMemo) Send(actor UserRef, at time.Time) error {
	if m.Status != StatusDraf || m.IsArchived {
		return fmt.Errorf("%w: memo %s is %s", apperrors.ErrInvalidTransition, m.LetterID, m.Status)
	}
	if actor.UserID != m.Creator.UserID {
		return fmt.Errorf("%w: only the creator can send memo %s", apperrors.ErrForbidden, m.LetterID)
	}
	if len(m.RecipientIDs) == 0 {
		return fmt.Errorf("%w: memo needs at least one recipient", apperrors.ErrValidation)
	}
	m.Status = StatusTerkirim
	m.touch(actor.UserID, at)
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if isBlank(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
