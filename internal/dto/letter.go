package dto

import (
	"time"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AttachmentRequest is the metadata of an already uploaded file.
type AttachmentRequest struct {
	Name      string `json:"name" binding:"required"`
	MimeType  string `json:"mimeType"`
	SizeBytes int64  `json:"sizeBytes" binding:"gte=0"`
	Reference string `json:"reference" binding:"required"`
}

// CreateOutgoingLetterRequest defines the data needed to draft an outgoing letter.
type CreateOutgoingLetterRequest struct {
	Subject          string              `json:"subject" binding:"required"`
	LetterDate       *time.Time          `json:"letterDate"` // Defaults to now
	CategoryID       string              `json:"categoryID"`
	Sensitivity      domain.Sensitivity  `json:"sensitivity" binding:"omitempty,sensitivity"`
	Recipient        string              `json:"recipient" binding:"required"`
	OutgoingKind     domain.OutgoingKind `json:"outgoingKind" binding:"omitempty,oneof=Biasa SK SPPD"`
	UnitID           string              `json:"unitID" binding:"required"`
	PrimaryIssueID   *string             `json:"primaryIssueID"`
	ClassificationID *string             `json:"classificationID"`
	Summary          string              `json:"summary"`
	InReplyToID      *string             `json:"inReplyToID"` // Incoming letter being answered
	ApproverIDs      []string            `json:"approverIDs" binding:"dive,required"`
	Attachments      []AttachmentRequest `json:"attachments" binding:"dive"`
}

// UpdateOutgoingDraftRequest defines the fields a creator may change while the letter is editable.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateOutgoingDraftRequest struct {
	Subject          *string              `json:"subject"`
	LetterDate       *time.Time           `json:"letterDate"`
	CategoryID       *string              `json:"categoryID"`
	Sensitivity      *domain.Sensitivity  `json:"sensitivity" binding:"omitempty,sensitivity"`
	Recipient        *string              `json:"recipient"`
	OutgoingKind     *domain.OutgoingKind `json:"outgoingKind" binding:"omitempty,oneof=Biasa SK SPPD"`
	UnitID           *string              `json:"unitID"`
	PrimaryIssueID   *string              `json:"primaryIssueID"`
	ClassificationID *string              `json:"classificationID"`
	Summary          *string              `json:"summary"`
	ApproverIDs      []string             `json:"approverIDs" binding:"omitempty,dive,required"` // Replaces the order when present
}

// CreateIncomingLetterRequest defines the intake data of a received letter.
type CreateIncomingLetterRequest struct {
	LetterNumber string              `json:"letterNumber"`
	Subject      string              `json:"subject" binding:"required"`
	LetterDate   *time.Time          `json:"letterDate"`
	CategoryID   string              `json:"categoryID"`
	Sensitivity  domain.Sensitivity  `json:"sensitivity" binding:"omitempty,sensitivity"`
	Sender       string              `json:"sender" binding:"required"`
	DateReceived *time.Time          `json:"dateReceived"`
	Attachments  []AttachmentRequest `json:"attachments" binding:"dive"`
}

// CreateMemoRequest defines the data of a new internal memo.
type CreateMemoRequest struct {
	Subject      string              `json:"subject" binding:"required"`
	LetterDate   *time.Time          `json:"letterDate"`
	CategoryID   string              `json:"categoryID"`
	Sensitivity  domain.Sensitivity  `json:"sensitivity" binding:"omitempty,sensitivity"`
	RecipientIDs []string            `json:"recipientIDs" binding:"dive,required"`
	Summary      string              `json:"summary"`
	Attachments  []AttachmentRequest `json:"attachments" binding:"dive"`
}

// AddCommentRequest adds a message to a letter's comment thread.
type AddCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// ArchiveLetterRequest files a letter into an archive folder.
type ArchiveLetterRequest struct {
	FolderID string `json:"folderID" binding:"required"`
}

// ListLettersParams defines the query parameters for listing letters.
type ListLettersParams struct {
	Kind      *string `form:"kind" binding:"omitempty,oneof=SURAT_MASUK SURAT_KELUAR NOTA_DINAS"`
	Status    *string `form:"status"`
	Archived  *bool   `form:"archived"`
	Mine      bool    `form:"mine"` // Only letters created by the requesting user
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// SearchLettersParams defines the query parameters of the archive search.
type SearchLettersParams struct {
	Query string `form:"q" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// LetterViewResponse is a letter together with the values derived for the requesting user.
type LetterViewResponse struct {
	Kind               domain.LetterKind   `json:"kind"`
	Status             domain.LetterStatus `json:"status,omitempty"`
	Letter             domain.Letter       `json:"letter"`
	CurrentApprover    *domain.UserRef     `json:"currentApprover,omitempty"`
	CompletionFraction decimal.Decimal     `json:"completionFraction"`
	RoutingTargets     []string            `json:"routingTargets"`
	Editable           bool                `json:"editable"`
}

// ListLettersResponse wraps a page of letters.
type ListLettersResponse struct {
	Letters   []LetterViewResponse `json:"letters"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToLetterViewResponse converts a domain.LetterView to its DTO.
func ToLetterViewResponse(v domain.LetterView) LetterViewResponse {
	return LetterViewResponse{
		Kind:               v.Letter.Kind(),
		Status:             v.Status,
		Letter:             v.Letter,
		CurrentApprover:    v.CurrentApprover,
		CompletionFraction: v.CompletionFraction,
		RoutingTargets:     v.RoutingTargets,
		Editable:           v.Editable,
	}
}

// ToLetterViewResponses derives the views of letters for viewerID.
func ToLetterViewResponses(letters []domain.Letter, viewerID string) []LetterViewResponse {
	out := make([]LetterViewResponse, len(letters))
	for i, l := range letters {
		out[i] = ToLetterViewResponse(domain.NewLetterView(l, viewerID))
	}
	return out
}

// ToAttachments converts request attachments to domain attachments.
func ToAttachments(reqs []AttachmentRequest) []domain.Attachment {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]domain.Attachment, len(reqs))
	for i, a := range reqs {
		out[i] = domain.Attachment{Name: a.Name, MimeType: a.MimeType, SizeBytes: a.SizeBytes, Reference: a.Reference}
	}
	return out
}
