package domain

import "time"

// LetterEventType names a lifecycle event.
type LetterEventType string

const (
	EventLetterCreated    LetterEventType = "letter.created"
	EventDraftUpdated     LetterEventType = "letter.draft_updated"
	EventNumberAssigned   LetterEventType = "letter.number_assigned"
	EventSubmitted        LetterEventType = "letter.submitted"
	EventStepApproved     LetterEventType = "letter.step_approved"
	EventLetterApproved   LetterEventType = "letter.approved"
	EventLetterRejected   LetterEventType = "letter.rejected"
	EventLetterSigned     LetterEventType = "letter.signed"
	EventMemoSent         LetterEventType = "letter.memo_sent"
	EventRoutingAdded     LetterEventType = "letter.routing_added"
	EventRoutingStatusSet LetterEventType = "letter.routing_status_set"
	EventCommentAdded     LetterEventType = "letter.comment_added"
	EventLetterArchived   LetterEventType = "letter.archived"
)

// LetterEvent is emitted after a command has been persisted.
type LetterEvent struct {
	Type       LetterEventType `json:"type"`
	LetterID   string          `json:"letterID"`
	Kind       LetterKind      `json:"kind"`
	FromStatus LetterStatus    `json:"fromStatus,omitempty"`
	ToStatus   LetterStatus    `json:"toStatus,omitempty"`
	ActorID    string          `json:"actorID"`
	OccurredAt time.Time       `json:"occurredAt"`
	Letter     Letter          `json:"-"` // Snapshot after the command, for subscribers that index it
}

// NewLetterEvent builds an event for l after a command moved it from `from`.
func NewLetterEvent(t LetterEventType, l Letter, from LetterStatus, actorID string, at time.Time) LetterEvent {
	return LetterEvent{
		Type:       t,
		LetterID:   l.Base().LetterID,
		Kind:       l.Kind(),
		FromStatus: from,
		ToStatus:   StatusOf(l),
		ActorID:    actorID,
		OccurredAt: at,
		Letter:     l,
	}
}
