package dto

import "github.com/SscSPs/correspondence_app/internal/core/domain"

// DecisionRequest is an approver's decision on the current step.
type DecisionRequest struct {
	Decision domain.ApprovalStatus `json:"decision" binding:"required,oneof=Disetujui Ditolak"`
	Notes    string                `json:"notes"` // Required when rejecting
}

// SignatureRequest signs an approved letter.
type SignatureRequest struct {
	Kind      domain.SignatureKind `json:"kind" binding:"required,oneof=IMAGE QR_CODE CERTIFIED_TTE"`
	ImageData []byte               `json:"imageData"` // Base64 in JSON, required for IMAGE
	Provider  string               `json:"provider"`
}

// ToArtifact converts the request to a domain artifact.
func (r SignatureRequest) ToArtifact() domain.SignatureArtifact {
	return domain.SignatureArtifact{Kind: r.Kind, ImageData: r.ImageData, Provider: r.Provider}
}

// GenerateNumberRequest asks for a letter number. Regenerate replaces an existing number.
type GenerateNumberRequest struct {
	Regenerate bool `json:"regenerate"`
}

// AddRoutingRequest creates a disposisi entry on an incoming letter.
type AddRoutingRequest struct {
	TargetUserID  string             `json:"targetUserID" binding:"required"`
	Note          string             `json:"note" binding:"required"`
	Urgency       domain.Sensitivity `json:"urgency" binding:"omitempty,sensitivity"`
	ParentEntryID *string            `json:"parentEntryID"` // Set when forwarding an entry addressed to the caller
}

// SetRoutingStatusRequest closes a disposisi entry.
type SetRoutingStatusRequest struct {
	Status domain.RoutingStatus `json:"status" binding:"required,oneof=Selesai Ditolak"`
}
