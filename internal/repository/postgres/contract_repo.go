// internal/repository/postgres/contract_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"humsafar-service/internal/domain/contract"
	xerrors "humsafar-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContractRepository struct {
	db *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

const contractColumns = `id, vehicle_id, companion_profile_id, effective_start_date,
	expiry_date, is_active, fuel_share, maintenance_share, schedule,
	created_by, created_on, updated_by, updated_on`

func scanContract(row pgx.Row, c *contract.Contract) error {
	var schedule []byte
	err := row.Scan(
		&c.ID, &c.VehicleID, &c.CompanionProfileID, &c.EffectiveStartDate,
		&c.ExpiryDate, &c.IsActive, &c.FuelShare, &c.MaintenanceShare, &schedule,
		&c.CreatedBy, &c.CreatedOn, &c.UpdatedBy, &c.UpdatedOn,
	)
	if err != nil {
		return err
	}
	c.Schedule = contract.Schedule(schedule)
	return nil
}

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (
			vehicle_id, companion_profile_id, effective_start_date, expiry_date,
			is_active, fuel_share, maintenance_share, schedule,
			created_by, created_on, updated_by, updated_on
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx, query,
		c.VehicleID, c.CompanionProfileID, c.EffectiveStartDate, c.ExpiryDate,
		c.IsActive, c.FuelShare, c.MaintenanceShare, []byte(c.Schedule),
		c.CreatedBy, c.CreatedOn, c.UpdatedBy, c.UpdatedOn,
	).Scan(&c.ID)

	if isForeignKeyViolation(err) {
		return xerrors.ErrNotFound
	}
	if isCheckViolation(err) {
		return xerrors.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id int64) (*contract.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE id = $1`, contractColumns)

	var c contract.Contract
	err := scanContract(r.db.QueryRow(ctx, query, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}
	return &c, nil
}

func (r *ContractRepository) Terminate(ctx context.Context, c *contract.Contract) error {
	query := `UPDATE contracts SET is_active = FALSE, updated_by = $1, updated_on = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, c.UpdatedBy, c.UpdatedOn, c.ID)
	if err != nil {
		return fmt.Errorf("failed to terminate contract: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ContractRepository) List(ctx context.Context, filters *contract.ContractListFilters) ([]contract.Contract, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filters != nil {
		if filters.VehicleID != 0 {
			conditions = append(conditions, fmt.Sprintf("vehicle_id = $%d", argPos))
			args = append(args, filters.VehicleID)
			argPos++
		}
		if filters.CompanionProfileID != 0 {
			conditions = append(conditions, fmt.Sprintf("companion_profile_id = $%d", argPos))
			args = append(args, filters.CompanionProfileID)
			argPos++
		}
		if filters.Active != nil {
			conditions = append(conditions, fmt.Sprintf("is_active = $%d", argPos))
			args = append(args, *filters.Active)
			argPos++
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE %s ORDER BY effective_start_date DESC, id DESC`,
		contractColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	contracts := []contract.Contract{}
	for rows.Next() {
		var c contract.Contract
		if err := scanContract(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
