package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLetterRow(t *testing.T) {
	at := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	creator := domain.UserRef{UserID: "u1", Name: "Ani"}
	issue := "issue-1"

	out, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{
		Subject:        "Undangan Rapat",
		Recipient:      "Dinas Sosial",
		PrimaryIssueID: &issue,
		LetterDate:     time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC),
	}, at)
	require.NoError(t, err)

	row, err := toLetterRow(out)
	require.NoError(t, err)
	assert.Equal(t, out.LetterID, row.LetterID)
	assert.Equal(t, "SURAT_KELUAR", row.Kind)
	assert.Equal(t, "Draf", row.Status)
	assert.Equal(t, "u1", row.CreatorID)
	require.NotNil(t, row.PrimaryIssueID)
	assert.Equal(t, issue, *row.PrimaryIssueID)
	assert.Equal(t, 2023, row.LetterYear, "numbering year follows the letter date")
	assert.Contains(t, row.SearchText, "undangan rapat")
	assert.Contains(t, row.SearchText, "dinas sosial")

	decoded, err := domain.UnmarshalLetter([]byte(row.Document))
	require.NoError(t, err)
	assert.Equal(t, out, decoded)

	in, err := domain.NewIncomingLetter(creator, domain.IncomingRegistration{Subject: "Permohonan", Sender: "Dinkes"}, at)
	require.NoError(t, err)
	row, err = toLetterRow(in)
	require.NoError(t, err)
	assert.Nil(t, row.PrimaryIssueID)
	assert.Equal(t, "", row.Status)
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `100\%\_a\\b`, likeEscaper.Replace(`100%_a\b`))
}
