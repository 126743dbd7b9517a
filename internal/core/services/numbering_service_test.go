package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/SscSPs/correspondence_app/internal/core/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type NumberingServiceTestSuite struct {
	correspondenceSuite
}

func TestNumberingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NumberingServiceTestSuite))
}

func (s *NumberingServiceTestSuite) draft(kind domain.OutgoingKind, classification *string) *domain.OutgoingLetter {
	letter, err := s.svc.Letter.CreateOutgoingLetter(s.ctx, dto.CreateOutgoingLetterRequest{
		Subject:          "Surat keuangan",
		Recipient:        "BPKAD",
		OutgoingKind:     kind,
		UnitID:           branchUnitID,
		PrimaryIssueID:   strPtr(issueID),
		ClassificationID: classification,
		ApproverIDs:      []string{kabagID},
	}, staffID)
	s.Require().NoError(err)
	return letter
}

func (s *NumberingServiceTestSuite) TestGenerateLetterNumber_FourthLetterInScope() {
	for i := 0; i < 3; i++ {
		s.draft(domain.OutgoingBiasa, strPtr(classID))
	}
	letter := s.draft(domain.OutgoingBiasa, strPtr(classID))

	numbered, err := s.svc.Numbering.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.Require().NoError(err)
	s.Require().NotNil(numbered.LetterNumber)
	s.Equal("NOMOR 4/KU/A.01/TAHUN 2024", *numbered.LetterNumber)
	s.Equal(domain.EventNumberAssigned, s.events.Last().Type)

	_, err = s.svc.Numbering.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	s.Equal("NOMOR 4/KU/A.01/TAHUN 2024", *s.stored(letter.LetterID).Base().LetterNumber)

	sppd := s.draft(domain.OutgoingSPPD, strPtr(classID))
	numbered, err = s.svc.Numbering.GenerateLetterNumber(s.ctx, sppd.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.Require().NoError(err)
	s.Equal("5/KU/A.01/2024", *numbered.LetterNumber)

	regenerated, err := s.svc.Numbering.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{Regenerate: true}, staffID)
	s.Require().NoError(err)
	s.Equal("NOMOR 6/KU/A.01/TAHUN 2024", *regenerated.LetterNumber, "ordinals are never handed out twice")
}

func (s *NumberingServiceTestSuite) TestGenerateLetterNumber_MissingClassification() {
	letter := s.draft(domain.OutgoingBiasa, nil)
	_, err := s.svc.Numbering.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.ErrorIs(err, apperrors.ErrMissingClassification)

	unknown := s.draft(domain.OutgoingBiasa, strPtr("class-unknown"))
	_, err = s.svc.Numbering.GenerateLetterNumber(s.ctx, unknown.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.ErrorIs(err, apperrors.ErrMissingClassification)
	s.Nil(s.stored(unknown.LetterID).Base().LetterNumber)
}

func (s *NumberingServiceTestSuite) TestGenerateLetterNumber_OnlyCreatorWhileEditable() {
	letter := s.draft(domain.OutgoingBiasa, strPtr(classID))
	_, err := s.svc.Numbering.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{}, kabagID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.Lifecycle.SubmitForApproval(s.ctx, letter.LetterID, staffID)
	s.Require().NoError(err)
	_, err = s.svc.Numbering.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (s *NumberingServiceTestSuite) TestGenerateLetterNumber_ConcurrentRequestsGetDistinctNumbers() {
	const n = 8
	ids := make([]string, n)
	for i := range ids {
		ids[i] = s.draft(domain.OutgoingBiasa, strPtr(classID)).LetterID
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = map[string]bool{}
	)
	for _, id := range ids {
		wg.Add(1)
		go func(letterID string) {
			defer wg.Done()
			l, err := s.svc.Numbering.GenerateLetterNumber(s.ctx, letterID, dto.GenerateNumberRequest{}, staffID)
			if !s.NoError(err) {
				return
			}
			mu.Lock()
			numbers[*l.LetterNumber] = true
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	s.Len(numbers, n)
}

func (s *NumberingServiceTestSuite) TestResolveUnitCode() {
	code, err := services.ResolveUnitCode(s.ctx, s.directory, branchUnitID)
	s.Require().NoError(err)
	s.Equal("A.01", code)

	code, err = services.ResolveUnitCode(s.ctx, s.directory, rootUnitID)
	s.Require().NoError(err)
	s.Equal("A", code)

	_, err = services.ResolveUnitCode(s.ctx, s.directory, "")
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = services.ResolveUnitCode(s.ctx, s.directory, "unit-unknown")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// The reservation happens only after every check passed.
func (s *NumberingServiceTestSuite) TestGenerateLetterNumber_ReserverUsage() {
	reserver := new(MockSequenceReserver)
	svc := services.NewNumberingService(services.NumberingDeps{
		Letters:         s.letters,
		Users:           s.directory,
		Units:           s.directory,
		Classifications: s.directory,
		Sequences:       reserver,
	}, services.WithClock(func() time.Time { return fixedNow }))

	unclassified := s.draft(domain.OutgoingBiasa, nil)
	_, err := svc.GenerateLetterNumber(s.ctx, unclassified.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.ErrorIs(err, apperrors.ErrMissingClassification)
	reserver.AssertNotCalled(s.T(), "ReserveOrdinal", mock.Anything, mock.Anything, mock.Anything)

	letter := s.draft(domain.OutgoingBiasa, strPtr(classID))
	scope := domain.SequenceScope{PrimaryIssueID: issueID, Year: 2024}

	reserver.On("ReserveOrdinal", s.ctx, scope, 1).Return(0, errors.New("connection reset")).Once()
	_, err = svc.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.Require().Error(err)
	s.Nil(apperrors.Kind(err))

	reserver.On("ReserveOrdinal", s.ctx, scope, 1).Return(17, nil).Once()
	numbered, err := svc.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{}, staffID)
	s.Require().NoError(err)
	s.Equal("NOMOR 17/KU/A.01/TAHUN 2024", *numbered.LetterNumber)

	reserver.AssertExpectations(s.T())
}

func TestNumberingService_ScopeChangedDuringNumbering(t *testing.T) {
	s := new(NumberingServiceTestSuite)
	s.SetT(t)
	s.SetupTest()

	letter := s.draft(domain.OutgoingBiasa, strPtr(classID))
	otherIssue := "issue-umum"

	// The reserver edits the letter mid-flight, as a concurrent UpdateOutgoingDraft would.
	reserver := new(MockSequenceReserver)
	reserver.On("ReserveOrdinal", mock.Anything, mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		_, err := s.svc.Letter.UpdateOutgoingDraft(context.Background(), letter.LetterID, dto.UpdateOutgoingDraftRequest{PrimaryIssueID: &otherIssue}, staffID)
		require.NoError(t, err)
	}).Return(1, nil)

	svc := services.NewNumberingService(services.NumberingDeps{
		Letters: s.letters, Users: s.directory, Units: s.directory, Classifications: s.directory, Sequences: reserver,
	})
	_, err := svc.GenerateLetterNumber(s.ctx, letter.LetterID, dto.GenerateNumberRequest{}, staffID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Nil(t, s.stored(letter.LetterID).Base().LetterNumber, fmt.Sprintf("letter %s must stay unnumbered", letter.LetterID))
}
