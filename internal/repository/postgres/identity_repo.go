// internal/repository/postgres/identity_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"humsafar-service/internal/domain/identity"
	xerrors "humsafar-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdentityRepository struct {
	db *pgxpool.Pool
}

func NewIdentityRepository(db *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Upsert inserts or refreshes the mirror row for an identity seen in a
// verified token.
func (r *IdentityRepository) Upsert(ctx context.Context, id *identity.Identity) error {
	query := `
		INSERT INTO identities (id, username, full_name, is_staff)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    full_name = EXCLUDED.full_name,
		    is_staff = EXCLUDED.is_staff,
		    updated_on = now()
		RETURNING created_on, updated_on
	`

	err := r.db.QueryRow(ctx, query, id.ID, id.Username, id.FullName, id.IsStaff).
		Scan(&id.CreatedOn, &id.UpdatedOn)
	if err != nil {
		return fmt.Errorf("failed to upsert identity: %w", err)
	}
	return nil
}

func (r *IdentityRepository) FindByID(ctx context.Context, identityID string) (*identity.Identity, error) {
	query := `
		SELECT id, username, full_name, is_staff, created_on, updated_on
		FROM identities
		WHERE id = $1
	`

	var id identity.Identity
	err := r.db.QueryRow(ctx, query, identityID).Scan(
		&id.ID, &id.Username, &id.FullName, &id.IsStaff, &id.CreatedOn, &id.UpdatedOn,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find identity: %w", err)
	}
	return &id, nil
}

// Delete removes the identity; the profile, owned vehicles and their
// contracts go with it via the schema cascades.
func (r *IdentityRepository) Delete(ctx context.Context, identityID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM identities WHERE id = $1`, identityID)
	if err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
