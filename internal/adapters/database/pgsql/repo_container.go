package pgsql

import (
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. The letters table doubles as the
// archive search backend; callers may swap Search for a dedicated index.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	letterRepo := newPgxLetterRepository(dbPool)
	directoryRepo := newPgxDirectoryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LetterRepo:         letterRepo,
		UserRepo:           directoryRepo,
		UnitRepo:           directoryRepo,
		ClassificationRepo: directoryRepo,
		Sequences:          newPgxSequenceRepository(dbPool),
		Search:             letterRepo,
	}
}
