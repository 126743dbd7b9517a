package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDirectoryRepository reads users, units and archive classifications.
type PgxDirectoryRepository struct {
	db *pgxpool.Pool
}

func newPgxDirectoryRepository(db *pgxpool.Pool) *PgxDirectoryRepository {
	return &PgxDirectoryRepository{db: db}
}

var (
	_ portsrepo.UserRepositoryFacade           = (*PgxDirectoryRepository)(nil)
	_ portsrepo.UnitRepositoryFacade           = (*PgxDirectoryRepository)(nil)
	_ portsrepo.ClassificationRepositoryFacade = (*PgxDirectoryRepository)(nil)
)

const userColumns = `user_id, name, role, unit_id, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Name,
		&u.Role,
		&u.UnitID,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
		&u.DeletedAt,
	)
	return u, err
}

func (r *PgxDirectoryRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, name, role, unit_id, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Role,
		user.UnitID,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s", apperrors.ErrDuplicate, user.UserID)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxDirectoryRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return &user, nil
}

func (r *PgxDirectoryRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	// Default limit if not specified or invalid
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxDirectoryRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	query := `
        INSERT INTO units (unit_id, code, name, parent_id)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (unit_id) DO UPDATE SET
            code = EXCLUDED.code,
            name = EXCLUDED.name,
            parent_id = EXCLUDED.parent_id;
    `
	if _, err := r.db.Exec(ctx, query, unit.UnitID, unit.Code, unit.Name, unit.ParentID); err != nil {
		return fmt.Errorf("failed to save unit: %w", err)
	}
	return nil
}

func (r *PgxDirectoryRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	var unit domain.Unit
	err := r.db.QueryRow(ctx, `SELECT unit_id, code, name, parent_id FROM units WHERE unit_id = $1;`, unitID).
		Scan(&unit.UnitID, &unit.Code, &unit.Name, &unit.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: unit %s", apperrors.ErrNotFound, unitID)
		}
		return nil, fmt.Errorf("failed to find unit by ID %s: %w", unitID, err)
	}
	return &unit, nil
}

func (r *PgxDirectoryRepository) SaveClassification(ctx context.Context, c domain.Classification) error {
	query := `
        INSERT INTO classifications (classification_id, code, name)
        VALUES ($1, $2, $3)
        ON CONFLICT (classification_id) DO UPDATE SET
            code = EXCLUDED.code,
            name = EXCLUDED.name;
    `
	if _, err := r.db.Exec(ctx, query, c.ClassificationID, c.Code, c.Name); err != nil {
		return fmt.Errorf("failed to save classification: %w", err)
	}
	return nil
}

func (r *PgxDirectoryRepository) FindClassificationByID(ctx context.Context, classificationID string) (*domain.Classification, error) {
	var c domain.Classification
	err := r.db.QueryRow(ctx, `SELECT classification_id, code, name FROM classifications WHERE classification_id = $1;`, classificationID).
		Scan(&c.ClassificationID, &c.Code, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: classification %s", apperrors.ErrNotFound, classificationID)
		}
		return nil, fmt.Errorf("failed to find classification by ID %s: %w", classificationID, err)
	}
	return &c, nil
}
