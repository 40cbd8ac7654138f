// internal/repository/postgres/vehicle_model_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"humsafar-service/internal/domain/catalog"
	xerrors "humsafar-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleModelRepository struct {
	db *pgxpool.Pool
}

func NewVehicleModelRepository(db *pgxpool.Pool) *VehicleModelRepository {
	return &VehicleModelRepository{db: db}
}

func (r *VehicleModelRepository) Create(ctx context.Context, m *catalog.VehicleModel) error {
	query := `
		INSERT INTO vehicle_models (vendor, model, type, capacity, created_by, created_on, updated_by, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx, query,
		m.Vendor, m.Model, m.Type, m.Capacity,
		m.CreatedBy, m.CreatedOn, m.UpdatedBy, m.UpdatedOn,
	).Scan(&m.ID)
	if isCheckViolation(err) {
		return xerrors.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("failed to create vehicle model: %w", err)
	}
	return nil
}

func (r *VehicleModelRepository) FindByID(ctx context.Context, id int64) (*catalog.VehicleModel, error) {
	query := `
		SELECT id, vendor, model, type, capacity, created_by, created_on, updated_by, updated_on
		FROM vehicle_models
		WHERE id = $1
	`

	var m catalog.VehicleModel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Vendor, &m.Model, &m.Type, &m.Capacity,
		&m.CreatedBy, &m.CreatedOn, &m.UpdatedBy, &m.UpdatedOn,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle model: %w", err)
	}
	return &m, nil
}

func (r *VehicleModelRepository) Update(ctx context.Context, m *catalog.VehicleModel) error {
	query := `
		UPDATE vehicle_models
		SET vendor = $1, model = $2, type = $3, capacity = $4, updated_by = $5, updated_on = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(ctx, query, m.Vendor, m.Model, m.Type, m.Capacity, m.UpdatedBy, m.UpdatedOn, m.ID)
	if isCheckViolation(err) {
		return xerrors.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("failed to update vehicle model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes the catalog entry; vehicles built on it and their
// contracts are cascaded by the schema.
func (r *VehicleModelRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM vehicle_models WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *VehicleModelRepository) List(ctx context.Context) ([]catalog.VehicleModel, error) {
	query := `
		SELECT id, vendor, model, type, capacity, created_by, created_on, updated_by, updated_on
		FROM vehicle_models
		ORDER BY vendor, model
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle models: %w", err)
	}
	defer rows.Close()

	models := []catalog.VehicleModel{}
	for rows.Next() {
		var m catalog.VehicleModel
		err := rows.Scan(
			&m.ID, &m.Vendor, &m.Model, &m.Type, &m.Capacity,
			&m.CreatedBy, &m.CreatedOn, &m.UpdatedBy, &m.UpdatedOn,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle model: %w", err)
		}
		models = append(models, m)
	}
	return models, rows.Err()
}
