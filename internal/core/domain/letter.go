package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/google/uuid"
)

// LetterKind discriminates the letter variants.
type LetterKind string

const (
	KindIncoming LetterKind = "SURAT_MASUK"
	KindOutgoing LetterKind = "SURAT_KELUAR"
	KindMemo     LetterKind = "NOTA_DINAS"
)

// Sensitivity is the confidentiality/urgency level of a letter or a routing instruction.
type Sensitivity string

const (
	SensitivityBiasa         Sensitivity = "Biasa"
	SensitivityPenting       Sensitivity = "Penting"
	SensitivitySangatPenting Sensitivity = "SangatPenting"
	SensitivityRahasia       Sensitivity = "Rahasia"
)

// IsValid reports whether s is one of the known levels.
func (s Sensitivity) IsValid() bool {
	switch s {
	case SensitivityBiasa, SensitivityPenting, SensitivitySangatPenting, SensitivityRahasia:
		return true
	}
	return false
}

// LetterStatus is the lifecycle status of outgoing letters and memos.
type LetterStatus string

const (
	StatusDraf                LetterStatus = "Draf"
	StatusRevisi              LetterStatus = "Revisi"
	StatusMenungguPersetujuan LetterStatus = "Menunggu Persetujuan"
	StatusDisetujui           LetterStatus = "Disetujui"
	StatusTerkirim            LetterStatus = "Terkirim"
)

// Attachment is the metadata of a file attached to a letter. The content lives elsewhere.
type Attachment struct {
	Name      string `json:"name"`
	MimeType  string `json:"mimeType"`
	SizeBytes int64  `json:"sizeBytes"`
	Reference string `json:"reference"` // Opaque storage key owned by the file store
}

// Comment is one message in a letter's comment thread.
type Comment struct {
	CommentID string    `json:"commentID"`
	Author    UserRef   `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// LetterBase holds the fields shared by every letter kind.
type LetterBase struct {
	LetterID        string       `json:"letterID"`
	LetterNumber    *string      `json:"letterNumber,omitempty"` // Nil until generated
	LetterDate      time.Time    `json:"letterDate"`
	Subject         string       `json:"subject"`
	CategoryID      string       `json:"categoryID"`
	Sensitivity     Sensitivity  `json:"sensitivity"`
	Creator         UserRef      `json:"creator"`
	Attachments     []Attachment `json:"attachments"`
	Comments        []Comment    `json:"comments"`
	LinkedTaskIDs   []string     `json:"linkedTaskIDs"`
	IsArchived      bool         `json:"isArchived"`
	ArchiveFolderID *string      `json:"archiveFolderID,omitempty"`
	ArchivedAt      *time.Time   `json:"archivedAt,omitempty"`
	AuditFields
}

// Base returns the shared fields. It lets LetterBase satisfy most of the Letter interface.
func (b *LetterBase) Base() *LetterBase {
	return b
}

// Letter is the tagged union of IncomingLetter, OutgoingLetter and InternalMemo.
// The set is closed: only this package can add variants.
type Letter interface {
	Base() *LetterBase
	Kind() LetterKind
	isLetter()
}

// NewLetterBase builds the shared part of a new letter.
func NewLetterBase(creator UserRef, subject string, letterDate time.Time, categoryID string, sensitivity Sensitivity, at time.Time) (LetterBase, error) {
	if creator.IsZero() {
		return LetterBase{}, fmt.Errorf("%w: creator is required", apperrors.ErrValidation)
	}
	if isBlank(subject) {
		return LetterBase{}, fmt.Errorf("%w: subject is required", apperrors.ErrValidation)
	}
	if sensitivity == "" {
		sensitivity = SensitivityBiasa
	}
	if !sensitivity.IsValid() {
		return LetterBase{}, fmt.Errorf("%w: unknown sensitivity %q", apperrors.ErrValidation, sensitivity)
	}
	if letterDate.IsZero() {
		letterDate = at
	}
	return LetterBase{
		LetterID:    uuid.NewString(),
		LetterDate:  letterDate,
		Subject:     strings.TrimSpace(subject),
		CategoryID:  categoryID,
		Sensitivity: sensitivity,
		Creator:     creator,
		AuditFields: AuditFields{
			CreatedAt:     at,
			CreatedBy:     creator.UserID,
			LastUpdatedAt: at,
			LastUpdatedBy: creator.UserID,
		},
	}, nil
}

// StatusOf returns the lifecycle status of a letter. Incoming letters have no
// approval lifecycle and report an empty status.
func StatusOf(l Letter) LetterStatus {
	switch v := l.(type) {
	case *OutgoingLetter:
		return v.Status
	case *InternalMemo:
		return v.Status
	case *IncomingLetter:
		return ""
	default:
		panic(fmt.Sprintf("domain: unknown letter variant %T", l))
	}
}

// AddComment appends a comment to the letter's thread.
func AddComment(l Letter, author UserRef, body string, at time.Time) (Comment, error) {
	b := l.Base()
	if author.IsZero() {
		return Comment{}, fmt.Errorf("%w: comment author is required", apperrors.ErrValidation)
	}
	if isBlank(body) {
		return Comment{}, fmt.Errorf("%w: comment body is required", apperrors.ErrValidation)
	}
	if b.IsArchived {
		return Comment{}, fmt.Errorf("%w: letter %s is archived", apperrors.ErrInvalidTransition, b.LetterID)
	}
	c := Comment{
		CommentID: uuid.NewString(),
		Author:    author,
		Body:      strings.TrimSpace(body),
		CreatedAt: at,
	}
	b.Comments = append(b.Comments, c)
	b.touch(author.UserID, at)
	return c, nil
}

// Archive files a letter into folderID. It is the only externally triggered terminal
// transition for incoming letters and memos and is available from any non-archived state.
func Archive(l Letter, folderID string, actor UserRef, at time.Time) error {
	b := l.Base()
	if actor.IsZero() {
		return fmt.Errorf("%w: acting user is required", apperrors.ErrValidation)
	}
	if isBlank(folderID) {
		return fmt.Errorf("%w: archive folder is required", apperrors.ErrValidation)
	}
	if b.IsArchived {
		return fmt.Errorf("%w: letter %s is already archived", apperrors.ErrInvalidTransition, b.LetterID)
	}
	folder := strings.TrimSpace(folderID)
	archivedAt := at
	b.IsArchived = true
	b.ArchiveFolderID = &folder
	b.ArchivedAt = &archivedAt
	b.touch(actor.UserID, at)
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
