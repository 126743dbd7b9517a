package services

import (
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, templates domain.NumberingTemplates, opts ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Letter:    NewLetterService(repos.LetterRepo, repos.UserRepo, repos.Search, opts...),
		Lifecycle: NewLifecycleService(repos.LetterRepo, repos.UserRepo, opts...),
		Disposisi: NewDisposisiService(repos.LetterRepo, repos.UserRepo, opts...),
		Numbering: NewNumberingService(NumberingDeps{
			Letters:         repos.LetterRepo,
			Users:           repos.UserRepo,
			Units:           repos.UnitRepo,
			Classifications: repos.ClassificationRepo,
			Sequences:       repos.Sequences,
			Templates:       templates,
		}, opts...),
		Directory: NewDirectoryService(repos.UserRepo, repos.UnitRepo),
	}
}
