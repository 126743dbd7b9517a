// Package search keeps the archive search index in step with the letter store.
package search

import (
	"github.com/SscSPs/correspondence_app/internal/core/domain"
)

// LetterDocument is the indexed form of a letter.
type LetterDocument struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Status       string `json:"status"`
	Subject      string `json:"subject"`
	LetterNumber string `json:"letterNumber"`
	Sender       string `json:"sender"`
	Recipient    string `json:"recipient"`
	Summary      string `json:"summary"`
	CreatorID    string `json:"creatorId"`
	IsArchived   bool   `json:"isArchived"`
	CreatedAt    int64  `json:"createdAt"` // Unix seconds, sortable
}

// ToDocument maps a letter to its index document.
func ToDocument(l domain.Letter) LetterDocument {
	b := l.Base()
	doc := LetterDocument{
		ID:         b.LetterID,
		Kind:       string(l.Kind()),
		Status:     string(domain.StatusOf(l)),
		Subject:    b.Subject,
		CreatorID:  b.Creator.UserID,
		IsArchived: b.IsArchived,
		CreatedAt:  b.CreatedAt.Unix(),
	}
	if b.LetterNumber != nil {
		doc.LetterNumber = *b.LetterNumber
	}
	switch v := l.(type) {
	case *domain.IncomingLetter:
		doc.Sender = v.Sender
	case *domain.OutgoingLetter:
		doc.Recipient = v.Recipient
		doc.Summary = v.Summary
	case *domain.InternalMemo:
		doc.Summary = v.Summary
	}
	return doc
}
