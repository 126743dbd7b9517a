package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/SscSPs/correspondence_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLetterRepository stores each letter as a JSONB document next to the columns
// needed for filtering, paging and numbering.
type PgxLetterRepository struct {
	BaseRepository
}

func newPgxLetterRepository(pool *pgxpool.Pool) *PgxLetterRepository {
	return &PgxLetterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.LetterRepositoryFacade = (*PgxLetterRepository)(nil)
	_ portsrepo.LetterSearcher         = (*PgxLetterRepository)(nil)
	_ portsrepo.TransactionManager     = (*PgxLetterRepository)(nil)
)

// letterRow holds the indexed columns derived from a letter.
type letterRow struct {
	LetterID       string
	Kind           string
	Status         string
	CreatorID      string
	IsArchived     bool
	PrimaryIssueID *string
	LetterYear     int
	LetterNumber   *string
	SearchText     string
	Document       string
	CreatedAt      time.Time
	LastUpdatedAt  time.Time
}

func toLetterRow(l domain.Letter) (letterRow, error) {
	raw, err := domain.MarshalLetter(l)
	if err != nil {
		return letterRow{}, err
	}
	b := l.Base()
	row := letterRow{
		LetterID:      b.LetterID,
		Kind:          string(l.Kind()),
		Status:        string(domain.StatusOf(l)),
		CreatorID:     b.Creator.UserID,
		IsArchived:    b.IsArchived,
		LetterYear:    b.LetterDate.Year(),
		LetterNumber:  b.LetterNumber,
		SearchText:    strings.ToLower(strings.Join(domain.SearchableFields(l), " ")),
		Document:      string(raw),
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
	if out, ok := l.(*domain.OutgoingLetter); ok {
		if scope, ok := domain.ScopeOf(out); ok {
			row.PrimaryIssueID = &scope.PrimaryIssueID
		}
	}
	return row, nil
}

func (r *PgxLetterRepository) SaveLetter(ctx context.Context, letter domain.Letter) error {
	row, err := toLetterRow(letter)
	if err != nil {
		return fmt.Errorf("failed to encode letter: %w", err)
	}
	query := `
		INSERT INTO letters (
			letter_id, kind, status, creator_id, is_archived, primary_issue_id, letter_year,
			letter_number, search_text, document, created_at, last_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = r.Pool.Exec(ctx, query,
		row.LetterID, row.Kind, row.Status, row.CreatorID, row.IsArchived, row.PrimaryIssueID, row.LetterYear,
		row.LetterNumber, row.SearchText, row.Document, row.CreatedAt, row.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: letter %s", apperrors.ErrDuplicate, row.LetterID)
		}
		return fmt.Errorf("failed to save letter: %w", err)
	}
	return nil
}

func (r *PgxLetterRepository) FindLetterByID(ctx context.Context, letterID string) (domain.Letter, error) {
	var document []byte
	err := r.Pool.QueryRow(ctx, `SELECT document FROM letters WHERE letter_id = $1;`, letterID).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: letter %s", apperrors.ErrNotFound, letterID)
		}
		return nil, fmt.Errorf("failed to find letter by ID %s: %w", letterID, err)
	}
	return domain.UnmarshalLetter(document)
}

// UpdateLetter locks the row, applies fn to the decoded letter and writes it back in the same
// transaction. Concurrent commands on one letter therefore run one after another.
func (r *PgxLetterRepository) UpdateLetter(ctx context.Context, letterID string, fn func(domain.Letter) error) (domain.Letter, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	var document []byte
	err = tx.QueryRow(ctx, `SELECT document FROM letters WHERE letter_id = $1 FOR UPDATE;`, letterID).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: letter %s", apperrors.ErrNotFound, letterID)
		}
		return nil, fmt.Errorf("failed to lock letter %s: %w", letterID, err)
	}
	letter, err := domain.UnmarshalLetter(document)
	if err != nil {
		return nil, err
	}
	if err := fn(letter); err != nil {
		return nil, err
	}

	row, err := toLetterRow(letter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode letter: %w", err)
	}
	query := `
		UPDATE letters
		SET status = $2, is_archived = $3, primary_issue_id = $4, letter_year = $5,
		    letter_number = $6, search_text = $7, document = $8, last_updated_at = $9
		WHERE letter_id = $1;
	`
	if _, err := tx.Exec(ctx, query,
		row.LetterID, row.Status, row.IsArchived, row.PrimaryIssueID, row.LetterYear,
		row.LetterNumber, row.SearchText, row.Document, row.LastUpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to update letter %s: %w", letterID, err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return letter, nil
}

func (r *PgxLetterRepository) ListLetters(ctx context.Context, filter portsrepo.LetterFilter, limit int, nextToken *string) ([]domain.Letter, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	conditions := []string{"TRUE"}
	args := []interface{}{}
	addArg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Kind != nil {
		conditions = append(conditions, "kind = "+addArg(string(*filter.Kind)))
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = "+addArg(string(*filter.Status)))
	}
	if filter.Archived != nil {
		conditions = append(conditions, "is_archived = "+addArg(*filter.Archived))
	}
	if filter.CreatorID != nil {
		conditions = append(conditions, "creator_id = "+addArg(*filter.CreatorID))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		createdAt := addArg(cursor.CreatedAt)
		conditions = append(conditions, "(created_at < "+createdAt+" OR (created_at = "+createdAt+" AND letter_id > "+addArg(cursor.ID)+"))")
	}

	query := `SELECT document FROM letters WHERE ` + strings.Join(conditions, " AND ") +
		` ORDER BY created_at DESC, letter_id ASC LIMIT ` + addArg(fetchLimit) + `;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query letters", err)
	}
	defer rows.Close()

	letters := make([]domain.Letter, 0, fetchLimit)
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan letter row", err)
		}
		l, err := domain.UnmarshalLetter(document)
		if err != nil {
			return nil, nil, err
		}
		letters = append(letters, l)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating letter rows", err)
	}

	var nextTokenVal *string
	if len(letters) > limit {
		last := letters[limit-1].Base()
		token := pagination.EncodeToken(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.LetterID})
		nextTokenVal = &token
		letters = letters[:limit]
	}
	return letters, nextTokenVal, nil
}

func (r *PgxLetterRepository) CountOutgoingInScope(ctx context.Context, scope domain.SequenceScope, excludeID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM letters
		WHERE kind = $1 AND primary_issue_id = $2 AND letter_year = $3 AND letter_id <> $4;
	`
	var n int
	if err := r.Pool.QueryRow(ctx, query, string(domain.KindOutgoing), scope.PrimaryIssueID, scope.Year, excludeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count letters in scope %s: %w", scope.Key(), err)
	}
	return n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchLetterIDs is the fallback archive search used when no search index is configured.
func (r *PgxLetterRepository) SearchLetterIDs(ctx context.Context, query string, limit int) ([]string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}, nil
	}
	q = likeEscaper.Replace(q)
	rows, err := r.Pool.Query(ctx, `
		SELECT letter_id FROM letters
		WHERE search_text LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2;
	`, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search letters: %w", err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect search hits: %w", err)
	}
	return ids, nil
}
