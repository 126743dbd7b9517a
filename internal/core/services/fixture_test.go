package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/correspondence_app/internal/adapters/memory"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// Users, units and classifications seeded into every suite.
const (
	staffID      = "user-staff"
	kabagID      = "user-kabag"
	kadinID      = "user-kadin"
	sekretarisID = "user-sekretaris"
	pelaksanaID  = "user-pelaksana"
	bendaharaID  = "user-bendahara"

	rootUnitID   = "unit-root"
	branchUnitID = "unit-branch"
	issueID      = "issue-keuangan"
	classID      = "class-ku"
)

var fixedNow = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

// --- Recording publisher ---
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.LetterEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event domain.LetterEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Types() []domain.LetterEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.LetterEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func (p *recordingPublisher) Last() domain.LetterEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

// --- Mock SequenceReserver ---
type MockSequenceReserver struct {
	mock.Mock
}

func (m *MockSequenceReserver) ReserveOrdinal(ctx context.Context, scope domain.SequenceScope, floor int) (int, error) {
	args := m.Called(ctx, scope, floor)
	return args.Int(0), args.Error(1)
}

// correspondenceSuite wires the services over the in-memory adapter.
type correspondenceSuite struct {
	suite.Suite
	ctx       context.Context
	letters   *memory.LetterStore
	directory *memory.Directory
	sequences portsrepo.SequenceReserver
	events    *recordingPublisher
	svc       *portssvc.ServiceContainer
}

func (s *correspondenceSuite) SetupTest() {
	s.ctx = context.Background()
	s.letters = memory.NewLetterStore()
	s.directory = memory.NewDirectory()
	s.events = &recordingPublisher{}
	s.sequences = memory.NewSequenceReserver()

	for _, u := range []domain.User{
		{UserID: staffID, Name: "Staf Umum", Role: domain.RoleStaff, UnitID: branchUnitID},
		{UserID: kabagID, Name: "Kepala Bagian", Role: domain.RolePimpinan, UnitID: branchUnitID},
		{UserID: kadinID, Name: "Kepala Dinas", Role: domain.RolePimpinan, UnitID: rootUnitID},
		{UserID: sekretarisID, Name: "Sekretaris", Role: domain.RoleSekretaris, UnitID: rootUnitID},
		{UserID: pelaksanaID, Name: "Pelaksana", Role: domain.RoleStaff, UnitID: branchUnitID},
		{UserID: bendaharaID, Name: "Bendahara", Role: domain.RoleStaff, UnitID: branchUnitID},
	} {
		s.Require().NoError(s.directory.SaveUser(s.ctx, u))
	}
	root := rootUnitID
	s.Require().NoError(s.directory.SaveUnit(s.ctx, domain.Unit{UnitID: rootUnitID, Code: "A", Name: "Sekretariat"}))
	s.Require().NoError(s.directory.SaveUnit(s.ctx, domain.Unit{UnitID: branchUnitID, Code: "01", Name: "Subbagian Keuangan", ParentID: &root}))
	s.Require().NoError(s.directory.SaveClassification(s.ctx, domain.Classification{ClassificationID: classID, Code: "KU", Name: "Keuangan"}))

	s.svc = services.NewServiceContainer(portsrepo.RepositoryProvider{
		LetterRepo:         s.letters,
		UserRepo:           s.directory,
		UnitRepo:           s.directory,
		ClassificationRepo: s.directory,
		Sequences:          s.sequences,
		Search:             s.letters,
	}, domain.NumberingTemplates{},
		services.WithEventPublisher(s.events),
		services.WithClock(func() time.Time { return fixedNow }))
}

func (s *correspondenceSuite) stored(letterID string) domain.Letter {
	l, err := s.letters.FindLetterByID(s.ctx, letterID)
	s.Require().NoError(err)
	return l
}

func strPtr(v string) *string { return &v }
