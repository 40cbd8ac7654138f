// internal/repository/postgres/profile_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"humsafar-service/internal/domain/profile"
	xerrors "humsafar-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, identity_id, birthdate, gender, role, primary_contact,
	alternate_contact, address, address_latitude, address_longitude, landmark,
	town, active, date_deactivated, bio, created_by, created_on, updated_by, updated_on`

func scanProfile(row pgx.Row, p *profile.UserProfile) error {
	return row.Scan(
		&p.ID, &p.IdentityID, &p.Birthdate, &p.Gender, &p.Role, &p.PrimaryContact,
		&p.AlternateContact, &p.Address, &p.AddressLatitude, &p.AddressLongitude, &p.Landmark,
		&p.Town, &p.Active, &p.DateDeactivated, &p.Bio, &p.CreatedBy, &p.CreatedOn, &p.UpdatedBy, &p.UpdatedOn,
	)
}

// Create inserts the profile. The unique constraint on identity_id keeps
// the one-to-one with the identity record.
func (r *ProfileRepository) Create(ctx context.Context, p *profile.UserProfile) error {
	query := `
		INSERT INTO user_profiles (
			identity_id, birthdate, gender, role, primary_contact, alternate_contact,
			address, address_latitude, address_longitude, landmark, town, active, bio,
			created_by, created_on, updated_by, updated_on
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx, query,
		p.IdentityID, p.Birthdate, p.Gender, p.Role, p.PrimaryContact, p.AlternateContact,
		p.Address, p.AddressLatitude, p.AddressLongitude, p.Landmark, p.Town, p.Active, p.Bio,
		p.CreatedBy, p.CreatedOn, p.UpdatedBy, p.UpdatedOn,
	).Scan(&p.ID)

	if isUniqueViolation(err) {
		return xerrors.ErrDuplicateEntry
	}
	if isForeignKeyViolation(err) {
		return xerrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id int64) (*profile.UserProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_profiles WHERE id = $1`, profileColumns)

	var p profile.UserProfile
	err := scanProfile(r.db.QueryRow(ctx, query, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) FindByIdentity(ctx context.Context, identityID string) (*profile.UserProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_profiles WHERE identity_id = $1`, profileColumns)

	var p profile.UserProfile
	err := scanProfile(r.db.QueryRow(ctx, query, identityID), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &p, nil
}

// Update writes the editable fields plus the updated stamp in one
// statement. The active flag and deactivation timestamp are not touched
// here.
func (r *ProfileRepository) Update(ctx context.Context, p *profile.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET primary_contact = $1, alternate_contact = $2, address = $3,
		    address_latitude = $4, address_longitude = $5, landmark = $6,
		    town = $7, bio = $8, updated_by = $9, updated_on = $10
		WHERE id = $11
	`

	result, err := r.db.Exec(
		ctx, query,
		p.PrimaryContact, p.AlternateContact, p.Address,
		p.AddressLatitude, p.AddressLongitude, p.Landmark,
		p.Town, p.Bio, p.UpdatedBy, p.UpdatedOn, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Deactivate flips active off and records the deactivation time together
// with the updated stamp, atomically.
func (r *ProfileRepository) Deactivate(ctx context.Context, p *profile.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET active = FALSE, date_deactivated = $1, updated_by = $2, updated_on = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(ctx, query, p.DateDeactivated, p.UpdatedBy, p.UpdatedOn, p.ID)
	if err != nil {
		return fmt.Errorf("failed to deactivate profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) List(ctx context.Context, filters *profile.ProfileListFilters) ([]profile.UserProfile, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filters != nil {
		if filters.Role != "" {
			conditions = append(conditions, fmt.Sprintf("role = $%d", argPos))
			args = append(args, strings.ToUpper(filters.Role))
			argPos++
		}
		if filters.Town != "" {
			conditions = append(conditions, fmt.Sprintf("upper(town) = upper($%d)", argPos))
			args = append(args, filters.Town)
			argPos++
		}
		if filters.Active != nil {
			conditions = append(conditions, fmt.Sprintf("active = $%d", argPos))
			args = append(args, *filters.Active)
			argPos++
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM user_profiles WHERE %s ORDER BY created_on DESC`,
		profileColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []profile.UserProfile{}
	for rows.Next() {
		var p profile.UserProfile
		if err := scanProfile(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
