package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
)

// OutgoingKind is the kind of outgoing letter. It selects the numbering template.
type OutgoingKind string

const (
	OutgoingBiasa OutgoingKind = "Biasa"
	OutgoingSK    OutgoingKind = "SK"   // Surat keputusan (decree)
	OutgoingSPPD  OutgoingKind = "SPPD" // Travel order, bare numeric number format
)

// IsValid reports whether k is a known outgoing kind.
func (k OutgoingKind) IsValid() bool {
	return k == OutgoingBiasa || k == OutgoingSK || k == OutgoingSPPD
}

// OutgoingLetter is a letter drafted inside the office, approved through an approval chain,
// signed and sent.
type OutgoingLetter struct {
	LetterBase
	Recipient        string                `json:"recipient"`
	OutgoingKind     OutgoingKind          `json:"outgoingKind"`
	UnitID           string                `json:"unitID"`                     // Issuing unit, drives the unit code
	PrimaryIssueID   *string               `json:"primaryIssueID,omitempty"`   // Masalah utama, numbering scope
	ClassificationID *string               `json:"classificationID,omitempty"` // Klasifikasi arsip
	Summary          string                `json:"summary"`
	InReplyToID      *string               `json:"inReplyToID,omitempty"` // Incoming letter this one answers
	Status           LetterStatus          `json:"status"`
	Version          int                   `json:"version"`
	History          []VersionHistoryEntry `json:"history"`
	Approvers        []UserRef             `json:"approvers"` // Configured approver order
	ApprovalChain    ApprovalChain         `json:"approvalChain"`
	Signature        *Signature            `json:"signature,omitempty"`
}

func (*OutgoingLetter) Kind() LetterKind { return KindOutgoing }
func (*OutgoingLetter) isLetter()        {}

// OutgoingDraft carries the fields a creator supplies for a new outgoing letter.
type OutgoingDraft struct {
	Subject          string
	LetterDate       time.Time
	CategoryID       string
	Sensitivity      Sensitivity
	Recipient        string
	OutgoingKind     OutgoingKind
	UnitID           string
	PrimaryIssueID   *string
	ClassificationID *string
	Summary          string
	InReplyToID      *string
	Approvers        []UserRef
	Attachments      []Attachment
}

// NewOutgoingLetter creates a Draf letter at version 1.
func NewOutgoingLetter(creator UserRef, d OutgoingDraft, at time.Time) (*OutgoingLetter, error) {
	base, err := NewLetterBase(creator, d.Subject, d.LetterDate, d.CategoryID, d.Sensitivity, at)
	if err != nil {
		return nil, err
	}
	kind := d.OutgoingKind
	if kind == "" {
		kind = OutgoingBiasa
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown outgoing kind %q", apperrors.ErrValidation, kind)
	}
	if err := validateApprovers(d.Approvers); err != nil {
		return nil, err
	}
	base.Attachments = append([]Attachment(nil), d.Attachments...)
	return &OutgoingLetter{
		LetterBase:       base,
		Recipient:        strings.TrimSpace(d.Recipient),
		OutgoingKind:     kind,
		UnitID:           d.UnitID,
		PrimaryIssueID:   nonBlank(d.PrimaryIssueID),
		ClassificationID: nonBlank(d.ClassificationID),
		Summary:          d.Summary,
		InReplyToID:      nonBlank(d.InReplyToID),
		Status:           StatusDraf,
		Version:          1,
		Approvers:        append([]UserRef(nil), d.Approvers...),
	}, nil
}

// IsEditableStatus reports whether the status allows the creator to edit the letter.
func (l *OutgoingLetter) IsEditableStatus() bool {
	return l.Status == StatusDraf || l.Status == StatusRevisi
}

// CanEdit reports whether userID may edit the letter right now. Every other
// state/user combination is read-only.
func (l *OutgoingLetter) CanEdit(userID string) bool {
	return l.IsEditableStatus() && !l.IsArchived && l.Creator.UserID == userID
}

func (l *OutgoingLetter) checkEditable(editor UserRef) error {
	if !l.IsEditableStatus() || l.IsArchived {
		return fmt.Errorf("%w: letter %s is %s and cannot be edited", apperrors.ErrInvalidTransition, l.LetterID, l.Status)
	}
	if editor.UserID != l.Creator.UserID {
		return fmt.Errorf("%w: only the creator can edit letter %s", apperrors.ErrForbidden, l.LetterID)
	}
	return nil
}

// DraftChanges is a partial update of an editable letter. Nil fields stay untouched.
type DraftChanges struct {
	Subject          *string
	LetterDate       *time.Time
	CategoryID       *string
	Sensitivity      *Sensitivity
	Recipient        *string
	OutgoingKind     *OutgoingKind
	UnitID           *string
	PrimaryIssueID   *string
	ClassificationID *string
	Summary          *string
	Approvers        []UserRef // Replaces the approver order when non-nil
}

// UpdateDraft applies changes while the letter is Draf or Revisi. The letter number is
// never touched here.
func (l *OutgoingLetter) UpdateDraft(editor UserRef, c DraftChanges, at time.Time) error {
	if err := l.checkEditable(editor); err != nil {
		return err
	}
	if c.Subject != nil && isBlank(*c.Subject) {
		return fmt.Errorf("%w: subject is required", apperrors.ErrValidation)
	}
	if c.Sensitivity != nil && !c.Sensitivity.IsValid() {
		return fmt.Errorf("%w: unknown sensitivity %q", apperrors.ErrValidation, *c.Sensitivity)
	}
	if c.OutgoingKind != nil && !c.OutgoingKind.IsValid() {
		return fmt.Errorf("%w: unknown outgoing kind %q", apperrors.ErrValidation, *c.OutgoingKind)
	}
	if c.Approvers != nil {
		if err := validateApprovers(c.Approvers); err != nil {
			return err
		}
	}

	if c.Subject != nil {
		l.Subject = strings.TrimSpace(*c.Subject)
	}
	if c.LetterDate != nil {
		l.LetterDate = *c.LetterDate
	}
	if c.CategoryID != nil {
		l.CategoryID = *c.CategoryID
	}
	if c.Sensitivity != nil {
		l.Sensitivity = *c.Sensitivity
	}
	if c.Recipient != nil {
		l.Recipient = strings.TrimSpace(*c.Recipient)
	}
	if c.OutgoingKind != nil {
		l.OutgoingKind = *c.OutgoingKind
	}
	if c.UnitID != nil {
		l.UnitID = *c.UnitID
	}
	if c.PrimaryIssueID != nil {
		l.PrimaryIssueID = nonBlank(c.PrimaryIssueID)
	}
	if c.ClassificationID != nil {
		l.ClassificationID = nonBlank(c.ClassificationID)
	}
	if c.Summary != nil {
		l.Summary = *c.Summary
	}
	if c.Approvers != nil {
		l.Approvers = append([]UserRef(nil), c.Approvers...)
	}
	l.touch(editor.UserID, at)
	return nil
}

// NumberingScope returns the sequence scope of the letter, or MissingClassification when the
// primary issue or the archive classification has not been selected.
func (l *OutgoingLetter) NumberingScope() (SequenceScope, error) {
	if l.ClassificationID == nil {
		return SequenceScope{}, fmt.Errorf("%w: archive classification is not selected", apperrors.ErrMissingClassification)
	}
	scope, ok := ScopeOf(l)
	if !ok {
		return SequenceScope{}, fmt.Errorf("%w: primary issue is not selected", apperrors.ErrMissingClassification)
	}
	return scope, nil
}

// CanAssignNumber checks whether actor may number the letter now. A stored number is only
// replaced when regenerate is set explicitly.
func (l *OutgoingLetter) CanAssignNumber(actor UserRef, regenerate bool) error {
	if err := l.checkEditable(actor); err != nil {
		return err
	}
	if l.LetterNumber != nil && !regenerate {
		return fmt.Errorf("%w: letter %s already numbered %s", apperrors.ErrInvalidTransition, l.LetterID, *l.LetterNumber)
	}
	return nil
}

// AssignNumber stores a generated letter number.
func (l *OutgoingLetter) AssignNumber(number string, regenerate bool, actor UserRef, at time.Time) error {
	if err := l.CanAssignNumber(actor, regenerate); err != nil {
		return err
	}
	if isBlank(number) {
		return fmt.Errorf("%w: letter number is empty", apperrors.ErrValidation)
	}
	n := number
	l.LetterNumber = &n
	l.touch(actor.UserID, at)
	return nil
}

// SubmitForApproval moves a Draf or Revisi letter into Menunggu Persetujuan with a fresh,
// all-pending chain built in the configured approver order.
func (l *OutgoingLetter) SubmitForApproval(actor UserRef, at time.Time) error {
	if l.IsArchived || !l.IsEditableStatus() {
		return fmt.Errorf("%w: cannot submit letter %s from %s", apperrors.ErrInvalidTransition, l.LetterID, l.Status)
	}
	if actor.UserID != l.Creator.UserID {
		return fmt.Errorf("%w: only the creator can submit letter %s", apperrors.ErrForbidden, l.LetterID)
	}
	if len(l.Approvers) == 0 {
		return fmt.Errorf("%w: approval chain is empty", apperrors.ErrValidation)
	}
	l.ApprovalChain = NewApprovalChain(l.Approvers)
	l.Status = StatusMenungguPersetujuan
	l.touch(actor.UserID, at)
	return nil
}

// Decide records the current approver's decision on stepID.
//
// Approving the last step completes the chain (Disetujui). Rejecting any step moves the
// letter to Revisi, archives the decided cycle into History, bumps Version by one and
// resets the chain to a fresh pending cycle for the next submission.
func (l *OutgoingLetter) Decide(stepID string, decision ApprovalStatus, notes string, actor UserRef, at time.Time) error {
	if l.IsArchived {
		return fmt.Errorf("%w: letter %s is archived", apperrors.ErrInvalidTransition, l.LetterID)
	}
	if l.Status != StatusMenungguPersetujuan {
		return fmt.Errorf("%w: letter %s is %s, not awaiting approval", apperrors.ErrInvalidTransition, l.LetterID, l.Status)
	}
	idx, err := l.ApprovalChain.checkDecision(stepID, decision, notes, actor)
	if err != nil {
		return err
	}

	decidedAt := at
	chain := l.ApprovalChain.clone()
	chain.Steps[idx].Status = decision
	chain.Steps[idx].Notes = strings.TrimSpace(notes)
	chain.Steps[idx].DecidedAt = &decidedAt

	switch decision {
	case ApprovalDisetujui:
		l.ApprovalChain = chain
		if chain.IsComplete() {
			l.Status = StatusDisetujui
		}
	case ApprovalDitolak:
		l.History = append(l.History, VersionHistoryEntry{
			Version:        l.Version,
			RevisedAt:      at,
			RejectedBy:     actor,
			RejectionNotes: strings.TrimSpace(notes),
			Steps:          chain.Steps,
		})
		l.Version++
		l.ApprovalChain = NewApprovalChain(l.Approvers)
		l.Status = StatusRevisi
	}
	l.touch(actor.UserID, at)
	return nil
}

// CurrentApprover returns the approver whose decision the chain is waiting for.
func (l *OutgoingLetter) CurrentApprover() (UserRef, bool) {
	if l.Status != StatusMenungguPersetujuan {
		return UserRef{}, false
	}
	step, ok := l.ApprovalChain.Current()
	if !ok {
		return UserRef{}, false
	}
	return step.Approver, true
}

// AttachSignature signs an approved letter. Signing is a single atomic transition
// Disetujui -> Terkirim and can happen once per letter.
func (l *OutgoingLetter) AttachSignature(artifact SignatureArtifact, actor UserRef, at time.Time) error {
	if l.IsArchived {
		return fmt.Errorf("%w: letter %s is archived", apperrors.ErrInvalidTransition, l.LetterID)
	}
	if l.Signature != nil {
		return fmt.Errorf("%w: letter %s is already signed", apperrors.ErrInvalidTransition, l.LetterID)
	}
	if l.Status != StatusDisetujui {
		return fmt.Errorf("%w: letter %s is %s, only approved letters can be signed", apperrors.ErrInvalidTransition, l.LetterID, l.Status)
	}
	if actor.IsZero() {
		return fmt.Errorf("%w: signer is required", apperrors.ErrValidation)
	}
	sig, err := newSignature(l, artifact, actor, at)
	if err != nil {
		return err
	}
	l.Signature = sig
	l.Status = StatusTerkirim
	l.touch(actor.UserID, at)
	return nil
}

func validateApprovers(approvers []UserRef) error {
	for i, a := range approvers {
		if a.IsZero() {
			return fmt.Errorf("%w: approver at position %d is missing", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}

func nonBlank(s *string) *string {
	if s == nil || isBlank(*s) {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
