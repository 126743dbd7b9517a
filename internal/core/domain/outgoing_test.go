package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	creator   = domain.UserRef{UserID: "creator", Name: "Citra"}
	approverX = domain.UserRef{UserID: "x", Name: "Xavier"}
	approverY = domain.UserRef{UserID: "y", Name: "Yuni"}
	outsider  = domain.UserRef{UserID: "z", Name: "Zaki"}
	baseTime  = time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
)

func newTwoStepLetter(t *testing.T) *domain.OutgoingLetter {
	t.Helper()
	l, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{
		Subject:   "Undangan rapat",
		Recipient: "Dinas Pendidikan",
		Approvers: []domain.UserRef{approverX, approverY},
	}, baseTime)
	require.NoError(t, err)
	return l
}

func snapshot(t *testing.T, l domain.Letter) []byte {
	t.Helper()
	raw, err := domain.MarshalLetter(l)
	require.NoError(t, err)
	return raw
}

func TestNewOutgoingLetter(t *testing.T) {
	l := newTwoStepLetter(t)

	assert.NotEmpty(t, l.LetterID)
	assert.Equal(t, domain.StatusDraf, l.Status)
	assert.Equal(t, 1, l.Version)
	assert.Empty(t, l.History)
	assert.Nil(t, l.LetterNumber)
	assert.Equal(t, domain.OutgoingBiasa, l.OutgoingKind)
	assert.Equal(t, domain.SensitivityBiasa, l.Sensitivity)

	_, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{Subject: " "}, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewOutgoingLetter(creator, domain.OutgoingDraft{Subject: "s", OutgoingKind: "Memo"}, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOutgoingLetter_ApproveRejectResubmit(t *testing.T) {
	l := newTwoStepLetter(t)
	require.NoError(t, l.SubmitForApproval(creator, baseTime))
	assert.Equal(t, domain.StatusMenungguPersetujuan, l.Status)
	require.NoError(t, l.ApprovalChain.CheckInvariants())

	current, ok := l.CurrentApprover()
	require.True(t, ok)
	assert.Equal(t, approverX, current)

	stepX := l.ApprovalChain.Steps[0].StepID
	stepY := l.ApprovalChain.Steps[1].StepID

	require.NoError(t, l.Decide(stepX, domain.ApprovalDisetujui, "", approverX, baseTime.Add(time.Hour)))
	assert.Equal(t, domain.StatusMenungguPersetujuan, l.Status)
	require.NoError(t, l.ApprovalChain.CheckInvariants())
	current, ok = l.CurrentApprover()
	require.True(t, ok)
	assert.Equal(t, approverY, current)
	assert.True(t, decimal.RequireFromString("0.5").Equal(l.ApprovalChain.CompletionFraction()))

	require.NoError(t, l.Decide(stepY, domain.ApprovalDitolak, "revise budget section", approverY, baseTime.Add(2*time.Hour)))
	assert.Equal(t, domain.StatusRevisi, l.Status)
	assert.Equal(t, 2, l.Version)
	require.Len(t, l.History, 1)
	assert.Equal(t, 1, l.History[0].Version)
	assert.Equal(t, "revise budget section", l.History[0].RejectionNotes)
	assert.Equal(t, approverY, l.History[0].RejectedBy)
	assert.Equal(t, domain.ApprovalDitolak, l.History[0].Steps[1].Status)
	_, ok = l.CurrentApprover()
	assert.False(t, ok)

	require.NoError(t, l.SubmitForApproval(creator, baseTime.Add(3*time.Hour)))
	assert.Equal(t, domain.StatusMenungguPersetujuan, l.Status)
	require.Len(t, l.ApprovalChain.Steps, 2)
	assert.Equal(t, approverX, l.ApprovalChain.Steps[0].Approver)
	assert.Equal(t, domain.ApprovalMenunggu, l.ApprovalChain.Steps[0].Status)
	assert.Equal(t, approverY, l.ApprovalChain.Steps[1].Approver)
	assert.Equal(t, domain.ApprovalMenunggu, l.ApprovalChain.Steps[1].Status)
	assert.NotEqual(t, stepX, l.ApprovalChain.Steps[0].StepID)
}

func TestOutgoingLetter_FullApprovalAndSignature(t *testing.T) {
	l := newTwoStepLetter(t)
	require.NoError(t, l.SubmitForApproval(creator, baseTime))
	require.NoError(t, l.Decide(l.ApprovalChain.Steps[0].StepID, domain.ApprovalDisetujui, "ok", approverX, baseTime))
	require.NoError(t, l.Decide(l.ApprovalChain.Steps[1].StepID, domain.ApprovalDisetujui, "", approverY, baseTime))

	assert.Equal(t, domain.StatusDisetujui, l.Status)
	assert.True(t, l.ApprovalChain.IsComplete())
	assert.True(t, decimal.NewFromInt(1).Equal(l.ApprovalChain.CompletionFraction()))

	err := l.SubmitForApproval(creator, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	require.NoError(t, l.AttachSignature(domain.ImageArtifact([]byte("png")), approverY, baseTime))
	assert.Equal(t, domain.StatusTerkirim, l.Status)
	require.NotNil(t, l.Signature)
	assert.Len(t, l.Signature.Digest, 64)
	assert.True(t, domain.VerifySignature(l))

	before := snapshot(t, l)
	err = l.AttachSignature(domain.QRCodeArtifact(), approverY, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, before, snapshot(t, l))
}

func TestOutgoingLetter_AttachSignature_Rejected(t *testing.T) {
	l := newTwoStepLetter(t)

	signFails := func(state domain.LetterStatus) {
		t.Helper()
		require.Equal(t, state, l.Status)
		before := snapshot(t, l)
		err := l.AttachSignature(domain.QRCodeArtifact(), approverX, baseTime)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition, "signing from %s", state)
		assert.Equal(t, before, snapshot(t, l))
	}

	signFails(domain.StatusDraf)
	require.NoError(t, l.SubmitForApproval(creator, baseTime))
	signFails(domain.StatusMenungguPersetujuan)
	require.NoError(t, l.Decide(l.ApprovalChain.Steps[0].StepID, domain.ApprovalDitolak, "ganti perihal", approverX, baseTime))
	signFails(domain.StatusRevisi)

	require.NoError(t, l.SubmitForApproval(creator, baseTime))
	require.NoError(t, l.Decide(l.ApprovalChain.Steps[0].StepID, domain.ApprovalDisetujui, "", approverX, baseTime))
	require.NoError(t, l.Decide(l.ApprovalChain.Steps[1].StepID, domain.ApprovalDisetujui, "", approverY, baseTime))

	before := snapshot(t, l)
	err := l.AttachSignature(domain.ImageArtifact(nil), approverX, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, before, snapshot(t, l))

	err = l.AttachSignature(domain.SignatureArtifact{Kind: "WET_INK"}, approverX, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	require.NoError(t, l.AttachSignature(domain.CertifiedArtifact("BSrE"), approverX, baseTime))
	assert.Equal(t, "BSrE", l.Signature.Provider)
}

func TestOutgoingLetter_DecideErrors(t *testing.T) {
	l := newTwoStepLetter(t)

	err := l.Decide("any", domain.ApprovalDisetujui, "", approverX, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition, "deciding before submission")

	require.NoError(t, l.SubmitForApproval(creator, baseTime))
	stepX := l.ApprovalChain.Steps[0].StepID
	stepY := l.ApprovalChain.Steps[1].StepID

	tests := []struct {
		name     string
		stepID   string
		decision domain.ApprovalStatus
		notes    string
		actor    domain.UserRef
		wantErr  error
	}{
		{"unknown decision", stepX, domain.ApprovalMenunggu, "", approverX, apperrors.ErrValidation},
		{"unknown step", "missing", domain.ApprovalDisetujui, "", approverX, apperrors.ErrNotFound},
		{"step out of order", stepY, domain.ApprovalDisetujui, "", approverY, apperrors.ErrForbidden},
		{"wrong approver", stepX, domain.ApprovalDisetujui, "", outsider, apperrors.ErrForbidden},
		{"rejection without notes", stepX, domain.ApprovalDitolak, "   ", approverX, apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := snapshot(t, l)
			err := l.Decide(tt.stepID, tt.decision, tt.notes, tt.actor, baseTime)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, snapshot(t, l), "failed command must leave the letter unchanged")
		})
	}

	require.NoError(t, l.Decide(stepX, domain.ApprovalDisetujui, "", approverX, baseTime))

	after := []struct {
		name    string
		stepID  string
		actor   domain.UserRef
		wantErr error
	}{
		{"earlier approver on the current step", stepY, approverX, apperrors.ErrForbidden},
		{"earlier approver on their own decided step", stepX, approverX, apperrors.ErrForbidden},
		{"outsider naming an unknown step", "missing", outsider, apperrors.ErrForbidden},
		{"current approver on a terminal step", stepX, approverY, apperrors.ErrInvalidTransition},
	}
	for _, tt := range after {
		t.Run(tt.name, func(t *testing.T) {
			before := snapshot(t, l)
			err := l.Decide(tt.stepID, domain.ApprovalDitolak, "late", tt.actor, baseTime)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, snapshot(t, l))
		})
	}
	assert.Equal(t, domain.ApprovalDisetujui, l.ApprovalChain.Steps[0].Status)
	assert.Equal(t, domain.ApprovalMenunggu, l.ApprovalChain.Steps[1].Status)
}

func TestOutgoingLetter_ArchivedRefusesApprovalAndSignature(t *testing.T) {
	l := newTwoStepLetter(t)
	require.NoError(t, l.SubmitForApproval(creator, baseTime))
	require.NoError(t, domain.Archive(l, "arsip", creator, baseTime))
	before := snapshot(t, l)

	err := l.Decide(l.ApprovalChain.Steps[0].StepID, domain.ApprovalDisetujui, "", approverX, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	err = l.Decide(l.ApprovalChain.Steps[0].StepID, domain.ApprovalDitolak, "tolak", approverX, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, before, snapshot(t, l))

	approved := newTwoStepLetter(t)
	require.NoError(t, approved.SubmitForApproval(creator, baseTime))
	require.NoError(t, approved.Decide(approved.ApprovalChain.Steps[0].StepID, domain.ApprovalDisetujui, "", approverX, baseTime))
	require.NoError(t, approved.Decide(approved.ApprovalChain.Steps[1].StepID, domain.ApprovalDisetujui, "", approverY, baseTime))
	require.NoError(t, domain.Archive(approved, "arsip", creator, baseTime))
	before = snapshot(t, approved)

	err = approved.AttachSignature(domain.QRCodeArtifact(), approverY, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, before, snapshot(t, approved))
	assert.Nil(t, approved.Signature)
	assert.Equal(t, domain.StatusDisetujui, approved.Status)
}

func TestOutgoingLetter_SubmitErrors(t *testing.T) {
	l := newTwoStepLetter(t)
	assert.ErrorIs(t, l.SubmitForApproval(outsider, baseTime), apperrors.ErrForbidden)

	empty, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{Subject: "s"}, baseTime)
	require.NoError(t, err)
	assert.ErrorIs(t, empty.SubmitForApproval(creator, baseTime), apperrors.ErrValidation)
	assert.Equal(t, domain.StatusDraf, empty.Status)

	require.NoError(t, l.SubmitForApproval(creator, baseTime))
	assert.ErrorIs(t, l.SubmitForApproval(creator, baseTime), apperrors.ErrInvalidTransition)
}

func TestOutgoingLetter_UpdateDraft(t *testing.T) {
	l := newTwoStepLetter(t)
	subject := "Undangan rapat koordinasi"
	issue := "issue-9"

	require.NoError(t, l.UpdateDraft(creator, domain.DraftChanges{
		Subject:        &subject,
		PrimaryIssueID: &issue,
		Approvers:      []domain.UserRef{approverY},
	}, baseTime.Add(time.Minute)))
	assert.Equal(t, subject, l.Subject)
	assert.Equal(t, "issue-9", *l.PrimaryIssueID)
	assert.Equal(t, []domain.UserRef{approverY}, l.Approvers)
	assert.Equal(t, baseTime.Add(time.Minute), l.LastUpdatedAt)

	assert.ErrorIs(t, l.UpdateDraft(outsider, domain.DraftChanges{Subject: &subject}, baseTime), apperrors.ErrForbidden)

	blank := " "
	assert.ErrorIs(t, l.UpdateDraft(creator, domain.DraftChanges{Subject: &blank}, baseTime), apperrors.ErrValidation)

	assert.True(t, l.CanEdit(creator.UserID))
	assert.False(t, l.CanEdit(outsider.UserID))

	require.NoError(t, l.SubmitForApproval(creator, baseTime))
	assert.False(t, l.CanEdit(creator.UserID))
	assert.ErrorIs(t, l.UpdateDraft(creator, domain.DraftChanges{Subject: &subject}, baseTime), apperrors.ErrInvalidTransition)
}

func TestOutgoingLetter_AssignNumber(t *testing.T) {
	l := newTwoStepLetter(t)

	require.NoError(t, l.AssignNumber("NOMOR 1/KU/A/TAHUN 2024", false, creator, baseTime))
	assert.Equal(t, "NOMOR 1/KU/A/TAHUN 2024", *l.LetterNumber)

	err := l.AssignNumber("NOMOR 2/KU/A/TAHUN 2024", false, creator, baseTime)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, "NOMOR 1/KU/A/TAHUN 2024", *l.LetterNumber)

	require.NoError(t, l.AssignNumber("NOMOR 2/KU/A/TAHUN 2024", true, creator, baseTime))
	assert.Equal(t, "NOMOR 2/KU/A/TAHUN 2024", *l.LetterNumber)

	assert.ErrorIs(t, l.AssignNumber("x", true, outsider, baseTime), apperrors.ErrForbidden)
}

func TestApprovalChain_CheckInvariants(t *testing.T) {
	chain := domain.NewApprovalChain([]domain.UserRef{approverX, approverY})
	require.NoError(t, chain.CheckInvariants())

	broken := domain.ApprovalChain{Steps: []domain.ApprovalStep{
		{StepID: "1", Position: 1, Status: domain.ApprovalMenunggu},
		{StepID: "2", Position: 2, Status: domain.ApprovalDisetujui},
	}}
	assert.Error(t, broken.CheckInvariants())

	rejected := domain.ApprovalChain{Steps: []domain.ApprovalStep{
		{StepID: "1", Position: 1, Status: domain.ApprovalDitolak},
		{StepID: "2", Position: 2, Status: domain.ApprovalMenunggu},
	}}
	assert.Error(t, rejected.CheckInvariants())
	assert.Equal(t, -1, rejected.CurrentIndex())
	assert.False(t, domain.ApprovalChain{}.IsComplete())
	assert.True(t, decimal.Zero.Equal(domain.ApprovalChain{}.CompletionFraction()))
}
