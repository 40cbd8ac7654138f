// internal/repository/postgres/vehicle_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"humsafar-service/internal/domain/vehicle"
	xerrors "humsafar-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleColumns = `id, registration_number, color, model_id, owner_id,
	date_added, status, created_by, created_on, updated_by, updated_on`

func scanVehicle(row pgx.Row, v *vehicle.Vehicle) error {
	return row.Scan(
		&v.ID, &v.RegistrationNumber, &v.Color, &v.ModelID, &v.OwnerID,
		&v.DateAdded, &v.Status, &v.CreatedBy, &v.CreatedOn, &v.UpdatedBy, &v.UpdatedOn,
	)
}

// Create inserts the vehicle. The unique index on registration_number
// decides the winner when two registrations race; the loser gets
// ErrDuplicateEntry.
func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehicles (
			registration_number, color, model_id, owner_id, date_added, status,
			created_by, created_on, updated_by, updated_on
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx, query,
		v.RegistrationNumber, v.Color, v.ModelID, v.OwnerID, v.DateAdded, v.Status,
		v.CreatedBy, v.CreatedOn, v.UpdatedBy, v.UpdatedOn,
	).Scan(&v.ID)

	if isUniqueViolation(err) {
		return xerrors.ErrDuplicateEntry
	}
	if isForeignKeyViolation(err) {
		return xerrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1`, vehicleColumns)

	var v vehicle.Vehicle
	err := scanVehicle(r.db.QueryRow(ctx, query, id), &v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepository) FindByRegistration(ctx context.Context, registrationNumber string) (*vehicle.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE registration_number = $1`, vehicleColumns)

	var v vehicle.Vehicle
	err := scanVehicle(r.db.QueryRow(ctx, query, registrationNumber), &v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepository) ExistsByRegistration(ctx context.Context, registrationNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vehicles WHERE registration_number = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, registrationNumber).Scan(&exists)
	return exists, err
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, v *vehicle.Vehicle) error {
	query := `UPDATE vehicles SET status = $1, updated_by = $2, updated_on = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, query, v.Status, v.UpdatedBy, v.UpdatedOn, v.ID)
	if err != nil {
		return fmt.Errorf("failed to update vehicle status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes the vehicle; dependent contracts ride the same statement
// via the schema cascade.
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *VehicleRepository) List(ctx context.Context, filters *vehicle.VehicleListFilters) ([]vehicle.Vehicle, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filters != nil {
		if filters.OwnerID != "" {
			conditions = append(conditions, fmt.Sprintf("owner_id = $%d", argPos))
			args = append(args, filters.OwnerID)
			argPos++
		}
		if filters.ModelID != 0 {
			conditions = append(conditions, fmt.Sprintf("model_id = $%d", argPos))
			args = append(args, filters.ModelID)
			argPos++
		}
		if len(filters.Statuses) > 0 {
			statuses := make([]string, len(filters.Statuses))
			for i, s := range filters.Statuses {
				statuses[i] = strings.ToUpper(s)
			}
			conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", argPos))
			args = append(args, pq.Array(statuses))
			argPos++
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE %s ORDER BY date_added DESC, id DESC`,
		vehicleColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []vehicle.Vehicle{}
	for rows.Next() {
		var v vehicle.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
