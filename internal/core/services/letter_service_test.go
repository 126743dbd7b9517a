package services_test

import (
	"testing"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/stretchr/testify/suite"
)

type LetterServiceTestSuite struct {
	correspondenceSuite
}

func TestLetterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LetterServiceTestSuite))
}

func (s *LetterServiceTestSuite) outgoingRequest() dto.CreateOutgoingLetterRequest {
	return dto.CreateOutgoingLetterRequest{
		Subject:          "Undangan rapat anggaran",
		Recipient:        "Dinas Sosial",
		UnitID:           branchUnitID,
		PrimaryIssueID:   strPtr(issueID),
		ClassificationID: strPtr(classID),
		ApproverIDs:      []string{kabagID, kadinID},
	}
}

func (s *LetterServiceTestSuite) TestCreateOutgoingLetter_Success() {
	letter, err := s.svc.Letter.CreateOutgoingLetter(s.ctx, s.outgoingRequest(), staffID)

	s.Require().NoError(err)
	s.Equal(domain.StatusDraf, letter.Status)
	s.Equal(1, letter.Version)
	s.Equal(domain.OutgoingBiasa, letter.OutgoingKind)
	s.Equal(fixedNow, letter.LetterDate)
	s.Equal([]domain.UserRef{{UserID: kabagID, Name: "Kepala Bagian"}, {UserID: kadinID, Name: "Kepala Dinas"}}, letter.Approvers)
	s.Equal("Staf Umum", letter.Creator.Name)

	s.Equal(letter, s.stored(letter.LetterID))
	s.Equal([]domain.LetterEventType{domain.EventLetterCreated}, s.events.Types())
	s.Equal(staffID, s.events.Last().ActorID)
}

func (s *LetterServiceTestSuite) TestCreateOutgoingLetter_Rejections() {
	unknownApprover := s.outgoingRequest()
	unknownApprover.ApproverIDs = []string{kabagID, "ghost"}
	_, err := s.svc.Letter.CreateOutgoingLetter(s.ctx, unknownApprover, staffID)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Letter.CreateOutgoingLetter(s.ctx, s.outgoingRequest(), "ghost")
	s.ErrorIs(err, apperrors.ErrForbidden)

	badKind := s.outgoingRequest()
	badKind.OutgoingKind = "Kilat"
	_, err = s.svc.Letter.CreateOutgoingLetter(s.ctx, badKind, staffID)
	s.ErrorIs(err, apperrors.ErrValidation)

	missingReply := s.outgoingRequest()
	missingReply.InReplyToID = strPtr("nope")
	_, err = s.svc.Letter.CreateOutgoingLetter(s.ctx, missingReply, staffID)
	s.ErrorIs(err, apperrors.ErrValidation)

	s.Empty(s.events.Types())
}

func (s *LetterServiceTestSuite) TestCreateOutgoingLetter_ReplyMustTargetIncoming() {
	incoming, err := s.svc.Letter.CreateIncomingLetter(s.ctx, dto.CreateIncomingLetterRequest{
		Subject: "Permohonan data", Sender: "Dinas Kesehatan",
	}, sekretarisID)
	s.Require().NoError(err)
	memo, err := s.svc.Letter.CreateInternalMemo(s.ctx, dto.CreateMemoRequest{Subject: "Memo"}, staffID)
	s.Require().NoError(err)

	reply := s.outgoingRequest()
	reply.InReplyToID = strPtr(memo.LetterID)
	_, err = s.svc.Letter.CreateOutgoingLetter(s.ctx, reply, staffID)
	s.ErrorIs(err, apperrors.ErrValidation)

	reply.InReplyToID = strPtr(incoming.LetterID)
	letter, err := s.svc.Letter.CreateOutgoingLetter(s.ctx, reply, staffID)
	s.Require().NoError(err)
	s.Equal(incoming.LetterID, *letter.InReplyToID)
}

func (s *LetterServiceTestSuite) TestUpdateOutgoingDraft() {
	letter, err := s.svc.Letter.CreateOutgoingLetter(s.ctx, s.outgoingRequest(), staffID)
	s.Require().NoError(err)

	subject := "Undangan rapat anggaran perubahan"
	updated, err := s.svc.Letter.UpdateOutgoingDraft(s.ctx, letter.LetterID, dto.UpdateOutgoingDraftRequest{
		Subject:     &subject,
		ApproverIDs: []string{kadinID},
	}, staffID)
	s.Require().NoError(err)
	s.Equal(subject, updated.Subject)
	s.Equal([]domain.UserRef{{UserID: kadinID, Name: "Kepala Dinas"}}, updated.Approvers)
	s.Equal(domain.EventDraftUpdated, s.events.Last().Type)

	_, err = s.svc.Letter.UpdateOutgoingDraft(s.ctx, letter.LetterID, dto.UpdateOutgoingDraftRequest{Subject: &subject}, kabagID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.Letter.UpdateOutgoingDraft(s.ctx, letter.LetterID, dto.UpdateOutgoingDraftRequest{ApproverIDs: []string{"ghost"}}, staffID)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Letter.UpdateOutgoingDraft(s.ctx, "missing", dto.UpdateOutgoingDraftRequest{Subject: &subject}, staffID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LetterServiceTestSuite) TestMemoLifecycle() {
	_, err := s.svc.Letter.CreateInternalMemo(s.ctx, dto.CreateMemoRequest{
		Subject: "Jadwal piket", RecipientIDs: []string{"ghost"},
	}, staffID)
	s.ErrorIs(err, apperrors.ErrValidation)

	memo, err := s.svc.Letter.CreateInternalMemo(s.ctx, dto.CreateMemoRequest{
		Subject: "Jadwal piket", RecipientIDs: []string{pelaksanaID, bendaharaID, pelaksanaID},
	}, staffID)
	s.Require().NoError(err)
	s.Equal([]string{pelaksanaID, bendaharaID}, memo.RecipientIDs)

	_, err = s.svc.Letter.SendMemo(s.ctx, memo.LetterID, pelaksanaID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	sent, err := s.svc.Letter.SendMemo(s.ctx, memo.LetterID, staffID)
	s.Require().NoError(err)
	s.Equal(domain.StatusTerkirim, sent.Status)

	event := s.events.Last()
	s.Equal(domain.EventMemoSent, event.Type)
	s.Equal(domain.StatusDraf, event.FromStatus)
	s.Equal(domain.StatusTerkirim, event.ToStatus)

	_, err = s.svc.Letter.SendMemo(s.ctx, memo.LetterID, staffID)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (s *LetterServiceTestSuite) TestCommentAndArchive() {
	letter, err := s.svc.Letter.CreateOutgoingLetter(s.ctx, s.outgoingRequest(), staffID)
	s.Require().NoError(err)

	comment, err := s.svc.Letter.AddComment(s.ctx, letter.LetterID, dto.AddCommentRequest{Body: "Lampiran kurang"}, kabagID)
	s.Require().NoError(err)
	s.Equal("Kepala Bagian", comment.Author.Name)
	s.Len(s.stored(letter.LetterID).Base().Comments, 1)

	archived, err := s.svc.Letter.ArchiveLetter(s.ctx, letter.LetterID, dto.ArchiveLetterRequest{FolderID: "arsip-2024"}, staffID)
	s.Require().NoError(err)
	s.True(archived.Base().IsArchived)
	s.Equal(domain.EventLetterArchived, s.events.Last().Type)

	_, err = s.svc.Letter.AddComment(s.ctx, letter.LetterID, dto.AddCommentRequest{Body: "late"}, kabagID)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (s *LetterServiceTestSuite) TestGetLetterView() {
	letter, err := s.svc.Letter.CreateOutgoingLetter(s.ctx, s.outgoingRequest(), staffID)
	s.Require().NoError(err)

	view, err := s.svc.Letter.GetLetterView(s.ctx, letter.LetterID, staffID)
	s.Require().NoError(err)
	s.True(view.Editable)

	view, err = s.svc.Letter.GetLetterView(s.ctx, letter.LetterID, kabagID)
	s.Require().NoError(err)
	s.False(view.Editable)

	_, err = s.svc.Letter.GetLetterView(s.ctx, "missing", staffID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LetterServiceTestSuite) TestListLetters() {
	for i := 0; i < 3; i++ {
		_, err := s.svc.Letter.CreateOutgoingLetter(s.ctx, s.outgoingRequest(), staffID)
		s.Require().NoError(err)
	}
	_, err := s.svc.Letter.CreateIncomingLetter(s.ctx, dto.CreateIncomingLetterRequest{
		Subject: "Permohonan data", Sender: "Dinas Kesehatan",
	}, sekretarisID)
	s.Require().NoError(err)

	all, err := s.svc.Letter.ListLetters(s.ctx, staffID, dto.ListLettersParams{})
	s.Require().NoError(err)
	s.Len(all.Letters, 4)
	s.Nil(all.NextToken)

	mine, err := s.svc.Letter.ListLetters(s.ctx, sekretarisID, dto.ListLettersParams{Mine: true})
	s.Require().NoError(err)
	s.Require().Len(mine.Letters, 1)
	s.Equal(domain.KindIncoming, mine.Letters[0].Kind)

	kind := string(domain.KindOutgoing)
	page, err := s.svc.Letter.ListLetters(s.ctx, staffID, dto.ListLettersParams{Kind: &kind, Limit: 2})
	s.Require().NoError(err)
	s.Len(page.Letters, 2)
	s.Require().NotNil(page.NextToken)
	s.True(page.Letters[0].Editable)

	rest, err := s.svc.Letter.ListLetters(s.ctx, staffID, dto.ListLettersParams{Kind: &kind, Limit: 2, NextToken: page.NextToken})
	s.Require().NoError(err)
	s.Len(rest.Letters, 1)
	s.Nil(rest.NextToken)
}

func (s *LetterServiceTestSuite) TestSearchLetters() {
	match, err := s.svc.Letter.CreateIncomingLetter(s.ctx, dto.CreateIncomingLetterRequest{
		Subject: "Permohonan data", Sender: "Dinas Kesehatan",
	}, sekretarisID)
	s.Require().NoError(err)
	_, err = s.svc.Letter.CreateOutgoingLetter(s.ctx, s.outgoingRequest(), staffID)
	s.Require().NoError(err)

	hits, err := s.svc.Letter.SearchLetters(s.ctx, staffID, dto.SearchLettersParams{Query: "kesehatan"})
	s.Require().NoError(err)
	s.Require().Len(hits, 1)
	s.Equal(match.LetterID, hits[0].Base().LetterID)
}
