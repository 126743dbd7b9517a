package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSequenceRepository reserves numbering ordinals with a single upsert, so the
// row lock serialises concurrent reservations in the same scope.
type PgxSequenceRepository struct {
	db *pgxpool.Pool
}

func newPgxSequenceRepository(db *pgxpool.Pool) *PgxSequenceRepository {
	return &PgxSequenceRepository{db: db}
}

var _ portsrepo.SequenceReserver = (*PgxSequenceRepository)(nil)

func (r *PgxSequenceRepository) ReserveOrdinal(ctx context.Context, scope domain.SequenceScope, floor int) (int, error) {
	query := `
		INSERT INTO letter_sequences (primary_issue_id, letter_year, last_ordinal, updated_at)
		VALUES ($1, $2, $3 + 1, NOW())
		ON CONFLICT (primary_issue_id, letter_year) DO UPDATE SET
			last_ordinal = GREATEST(letter_sequences.last_ordinal, $3) + 1,
			updated_at = NOW()
		RETURNING last_ordinal;
	`
	var ordinal int
	if err := r.db.QueryRow(ctx, query, scope.PrimaryIssueID, scope.Year, floor).Scan(&ordinal); err != nil {
		return 0, fmt.Errorf("failed to reserve ordinal in scope %s: %w", scope.Key(), err)
	}
	return ordinal, nil
}
