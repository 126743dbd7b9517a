package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const numberTemplate = "NOMOR [NOMOR_URUT_PER_MASALAH]/[KODE_KLASIFIKASI_ARSIP]/[KODE_UNIT_KERJA_LENGKAP]/TAHUN [TAHUN_SAAT_INI]"

func TestGenerateNumber(t *testing.T) {
	issue := "issue-1"
	class := "class-1"

	tests := []struct {
		name    string
		ctx     domain.NumberingContext
		want    string
		wantErr error
	}{
		{
			name: "biasa letter keeps the literal tokens",
			ctx: domain.NumberingContext{
				UnitCode: "A.01", ClassificationCode: "KU", PrimaryIssueID: &issue, ClassificationID: &class,
				Year: 2024, ExistingCount: 3, Kind: domain.OutgoingBiasa,
			},
			want: "NOMOR 4/KU/A.01/TAHUN 2024",
		},
		{
			name: "sppd letter uses the bare numeric format",
			ctx: domain.NumberingContext{
				UnitCode: "A.01", ClassificationCode: "KU", PrimaryIssueID: &issue, ClassificationID: &class,
				Year: 2024, ExistingCount: 3, Kind: domain.OutgoingSPPD,
			},
			want: "4/KU/A.01/2024",
		},
		{
			name: "first letter in scope gets ordinal one without padding",
			ctx: domain.NumberingContext{
				UnitCode: "B", ClassificationCode: "HK", PrimaryIssueID: &issue, ClassificationID: &class,
				Year: 2025, ExistingCount: 0, Kind: domain.OutgoingSK,
			},
			want: "NOMOR 1/HK/B/TAHUN 2025",
		},
		{
			name: "year is always four digits",
			ctx: domain.NumberingContext{
				UnitCode: "B", ClassificationCode: "HK", PrimaryIssueID: &issue, ClassificationID: &class,
				Year: 987, ExistingCount: 11,
			},
			want: "NOMOR 12/HK/B/TAHUN 0987",
		},
		{
			name:    "missing primary issue",
			ctx:     domain.NumberingContext{ClassificationID: &class, Year: 2024},
			wantErr: apperrors.ErrMissingClassification,
		},
		{
			name:    "missing classification",
			ctx:     domain.NumberingContext{PrimaryIssueID: &issue, Year: 2024},
			wantErr: apperrors.ErrMissingClassification,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.GenerateNumber(numberTemplate, tt.ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateNumber_BlankTemplateUsesDefault(t *testing.T) {
	issue, class := "i", "c"
	got, err := domain.GenerateNumber("  ", domain.NumberingContext{
		UnitCode: "X", ClassificationCode: "Y", PrimaryIssueID: &issue, ClassificationID: &class, Year: 2024,
	})
	require.NoError(t, err)
	assert.Equal(t, "NOMOR 1/Y/X/TAHUN 2024", got)
}

func TestCountInScope(t *testing.T) {
	creator := domain.UserRef{UserID: "u1", Name: "Ani"}
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issueA, issueB := "A", "B"

	mk := func(issue *string, date time.Time) *domain.OutgoingLetter {
		l, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{
			Subject: "s", LetterDate: date, PrimaryIssueID: issue,
		}, at)
		require.NoError(t, err)
		return l
	}

	self := mk(&issueA, at)
	letters := []domain.Letter{
		self,
		mk(&issueA, at),
		mk(&issueA, at.AddDate(0, 6, 0)),
		mk(&issueA, at.AddDate(1, 0, 0)),
		mk(&issueB, at),
		mk(nil, at),
	}
	incoming, err := domain.NewIncomingLetter(creator, domain.IncomingRegistration{Subject: "in", Sender: "Dinas"}, at)
	require.NoError(t, err)
	letters = append(letters, incoming)

	scope, ok := domain.ScopeOf(self)
	require.True(t, ok)
	assert.Equal(t, "A:2024", scope.Key())
	assert.Equal(t, 2, domain.CountInScope(letters, scope, self.LetterID))
	assert.Equal(t, 3, domain.CountInScope(letters, scope, ""))

	_, ok = domain.ScopeOf(mk(nil, at))
	assert.False(t, ok)
}

func TestComposeUnitCode(t *testing.T) {
	parentID := "p"
	parent := domain.Unit{UnitID: "p", Code: "A"}
	branch := domain.Unit{UnitID: "c", Code: "01", ParentID: &parentID}

	assert.Equal(t, "A.01", domain.ComposeUnitCode(branch, &parent))
	assert.Equal(t, "A", domain.ComposeUnitCode(parent, nil))
	assert.Equal(t, "01", domain.ComposeUnitCode(branch, nil))
}

func TestNumberingTemplates_For(t *testing.T) {
	templates := domain.NumberingTemplates{
		domain.OutgoingBiasa: "B/[NOMOR_URUT_PER_MASALAH]",
		domain.OutgoingSK:    "SK/[NOMOR_URUT_PER_MASALAH]",
	}
	assert.Equal(t, "SK/[NOMOR_URUT_PER_MASALAH]", templates.For(domain.OutgoingSK))
	assert.Equal(t, "B/[NOMOR_URUT_PER_MASALAH]", templates.For(domain.OutgoingSPPD))
	assert.Equal(t, domain.DefaultNumberingTemplate, domain.NumberingTemplates{}.For(domain.OutgoingSK))
}

func TestOutgoingLetter_NumberingScope(t *testing.T) {
	issue, class := "issue-1", "class-1"
	l, err := domain.NewOutgoingLetter(domain.UserRef{UserID: "u"}, domain.OutgoingDraft{
		Subject: "s", LetterDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), PrimaryIssueID: &issue,
	}, time.Now().UTC())
	require.NoError(t, err)

	_, err = l.NumberingScope()
	assert.ErrorIs(t, err, apperrors.ErrMissingClassification)

	l.ClassificationID = &class
	scope, err := l.NumberingScope()
	require.NoError(t, err)
	assert.Equal(t, domain.SequenceScope{PrimaryIssueID: "issue-1", Year: 2024}, scope)

	l.PrimaryIssueID = nil
	_, err = l.NumberingScope()
	assert.ErrorIs(t, err, apperrors.ErrMissingClassification)
}
