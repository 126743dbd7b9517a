package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/correspondence_app/internal/adapters/memory"
	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	creator = domain.UserRef{UserID: "u1", Name: "Ani"}
	t0      = time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
)

func newOutgoing(t *testing.T, subject string, at time.Time) *domain.OutgoingLetter {
	t.Helper()
	l, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{
		Subject:   subject,
		Recipient: "Dinas Sosial",
		Approvers: []domain.UserRef{{UserID: "x", Name: "X"}},
	}, at)
	require.NoError(t, err)
	return l
}

func TestLetterStore_SaveFindUpdate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLetterStore()
	l := newOutgoing(t, "Undangan", t0)

	require.NoError(t, store.SaveLetter(ctx, l))
	assert.ErrorIs(t, store.SaveLetter(ctx, l), apperrors.ErrDuplicate)

	found, err := store.FindLetterByID(ctx, l.LetterID)
	require.NoError(t, err)
	assert.Equal(t, l, found)

	// Mutating a read copy does not touch the store
	found.Base().Subject = "changed"
	again, err := store.FindLetterByID(ctx, l.LetterID)
	require.NoError(t, err)
	assert.Equal(t, "Undangan", again.Base().Subject)

	updated, err := store.UpdateLetter(ctx, l.LetterID, func(x domain.Letter) error {
		return x.(*domain.OutgoingLetter).SubmitForApproval(creator, t0)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMenungguPersetujuan, domain.StatusOf(updated))

	_, err = store.FindLetterByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLetterStore_UpdateLetter_FailureLeavesLetterUnchanged(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLetterStore()
	l := newOutgoing(t, "Undangan", t0)
	require.NoError(t, store.SaveLetter(ctx, l))

	_, err := store.UpdateLetter(ctx, l.LetterID, func(x domain.Letter) error {
		x.Base().Subject = "half applied"
		return apperrors.ErrForbidden
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	found, err := store.FindLetterByID(ctx, l.LetterID)
	require.NoError(t, err)
	assert.Equal(t, "Undangan", found.Base().Subject)

	_, err = store.UpdateLetter(ctx, "missing", func(domain.Letter) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLetterStore_UpdateLetter_SerialisesWriters(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLetterStore()
	l := newOutgoing(t, "Undangan", t0)
	require.NoError(t, store.SaveLetter(ctx, l))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.UpdateLetter(ctx, l.LetterID, func(x domain.Letter) error {
				_, err := domain.AddComment(x, creator, "ok", t0)
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := store.FindLetterByID(ctx, l.LetterID)
	require.NoError(t, err)
	assert.Len(t, found.Base().Comments, 20)
}

func TestLetterStore_ListLettersPaginates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLetterStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveLetter(ctx, newOutgoing(t, "Surat", t0.Add(time.Duration(i)*time.Hour))))
	}
	memo, err := domain.NewInternalMemo(creator, domain.MemoDraft{Subject: "Memo"}, t0.Add(10*time.Hour))
	require.NoError(t, err)
	require.NoError(t, store.SaveLetter(ctx, memo))

	kind := domain.KindOutgoing
	filter := portsrepo.LetterFilter{Kind: &kind}

	page1, token, err := store.ListLetters(ctx, filter, 2, nil)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotNil(t, token)
	assert.Equal(t, t0.Add(4*time.Hour), page1[0].Base().CreatedAt)

	page2, token, err := store.ListLetters(ctx, filter, 2, token)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.NotNil(t, token)
	assert.Equal(t, t0.Add(2*time.Hour), page2[0].Base().CreatedAt)

	page3, token, err := store.ListLetters(ctx, filter, 2, token)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Nil(t, token)

	all, _, err := store.ListLetters(ctx, portsrepo.LetterFilter{}, 10, nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, domain.KindMemo, all[0].Kind())

	bad := "not-a-token"
	_, _, err = store.ListLetters(ctx, filter, 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLetterStore_CountAndSearch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLetterStore()
	issue := "issue-1"

	for i, subject := range []string{"Rapat anggaran", "Laporan anggaran", "Undangan"} {
		l := newOutgoing(t, subject, t0.Add(time.Duration(i)*time.Minute))
		l.PrimaryIssueID = &issue
		require.NoError(t, store.SaveLetter(ctx, l))
	}

	n, err := store.CountOutgoingInScope(ctx, domain.SequenceScope{PrimaryIssueID: issue, Year: 2024}, "")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	ids, err := store.SearchLetterIDs(ctx, "ANGGARAN", 10)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	ids, err = store.SearchLetterIDs(ctx, "anggaran", 1)
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	ids, err = store.SearchLetterIDs(ctx, " ", 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
