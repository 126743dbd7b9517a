package services

import (
	"context"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/SscSPs/correspondence_app/internal/dto"
)

// ApprovalSvc drives the approval chain of outgoing letters
type ApprovalSvc interface {
	// SubmitForApproval moves a Draf or Revisi letter into Menunggu Persetujuan with a fresh chain.
	SubmitForApproval(ctx context.Context, letterID string, actorID string) (*domain.OutgoingLetter, error)

	// DecideStep records the current approver's decision on a step.
	DecideStep(ctx context.Context, letterID string, stepID string, req dto.DecisionRequest, actorID string) (*domain.OutgoingLetter, error)
}

// SignatureSvc applies signatures to approved letters
type SignatureSvc interface {
	// AttachSignature signs an approved letter and marks it Terkirim.
	AttachSignature(ctx context.Context, letterID string, req dto.SignatureRequest, signerID string) (*domain.OutgoingLetter, error)
}

// LifecycleSvcFacade combines the lifecycle service interfaces
type LifecycleSvcFacade interface {
	ApprovalSvc
	SignatureSvc
}

// DisposisiSvcFacade routes incoming letters to users
type DisposisiSvcFacade interface {
	// AddRouting creates a new Diproses entry, optionally forwarding an entry addressed to the actor.
	AddRouting(ctx context.Context, letterID string, req dto.AddRoutingRequest, actorID string) (*domain.RoutingEntry, error)

	// SetRoutingStatus closes an entry addressed to the actor.
	SetRoutingStatus(ctx context.Context, letterID string, entryID string, req dto.SetRoutingStatusRequest, actorID string) (*domain.RoutingEntry, error)
}

// NumberingSvcFacade generates letter numbers
type NumberingSvcFacade interface {
	// GenerateLetterNumber reserves the next ordinal in the letter's scope and stores the rendered number.
	GenerateLetterNumber(ctx context.Context, letterID string, req dto.GenerateNumberRequest, actorID string) (*domain.OutgoingLetter, error)
}

// EventPublisher receives lifecycle events after commands have been persisted.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LetterEvent)
}
