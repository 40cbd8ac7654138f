// internal/repository/postgres/migrations.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations are applied in order at boot. The cascade rules live here:
// deleting an identity removes its profile and its owned vehicles, deleting
// a catalog model removes its vehicles, and deleting a vehicle or a profile
// removes the dependent contracts, each atomically with the parent delete.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS identities (
		id         TEXT PRIMARY KEY,
		username   TEXT NOT NULL,
		full_name  TEXT NOT NULL DEFAULT '',
		is_staff   BOOLEAN NOT NULL DEFAULT FALSE,
		created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id                BIGSERIAL PRIMARY KEY,
		identity_id       TEXT NOT NULL UNIQUE REFERENCES identities(id) ON DELETE CASCADE,
		birthdate         DATE NOT NULL,
		gender            CHAR(1) NOT NULL,
		role              TEXT NOT NULL,
		primary_contact   TEXT NOT NULL,
		alternate_contact TEXT,
		address           TEXT NOT NULL DEFAULT '',
		address_latitude  DOUBLE PRECISION,
		address_longitude DOUBLE PRECISION,
		landmark          TEXT NOT NULL,
		town              TEXT NOT NULL,
		active            BOOLEAN NOT NULL DEFAULT TRUE,
		date_deactivated  TIMESTAMPTZ,
		bio               TEXT NOT NULL DEFAULT '',
		created_by        TEXT NOT NULL,
		created_on        TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_by        TEXT NOT NULL,
		updated_on        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS vehicle_models (
		id         BIGSERIAL PRIMARY KEY,
		vendor     TEXT NOT NULL,
		model      TEXT NOT NULL DEFAULT 'Unknown',
		type       TEXT NOT NULL,
		capacity   SMALLINT NOT NULL DEFAULT 2 CHECK (capacity > 0),
		created_by TEXT NOT NULL,
		created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_by TEXT NOT NULL,
		updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id                  BIGSERIAL PRIMARY KEY,
		registration_number TEXT NOT NULL UNIQUE,
		color               TEXT NOT NULL DEFAULT 'white',
		model_id            BIGINT NOT NULL REFERENCES vehicle_models(id) ON DELETE CASCADE,
		owner_id            TEXT NOT NULL REFERENCES identities(id) ON DELETE CASCADE,
		date_added          DATE NOT NULL DEFAULT CURRENT_DATE,
		status              TEXT NOT NULL,
		created_by          TEXT NOT NULL,
		created_on          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_by          TEXT NOT NULL,
		updated_on          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id                   BIGSERIAL PRIMARY KEY,
		vehicle_id           BIGINT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		companion_profile_id BIGINT NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
		effective_start_date DATE NOT NULL,
		expiry_date          DATE NOT NULL,
		is_active            BOOLEAN NOT NULL DEFAULT TRUE,
		fuel_share           SMALLINT NOT NULL CHECK (fuel_share BETWEEN 0 AND 100),
		maintenance_share    SMALLINT NOT NULL CHECK (maintenance_share BETWEEN 0 AND 100),
		schedule             JSON NOT NULL,
		created_by           TEXT NOT NULL,
		created_on           TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_by           TEXT NOT NULL,
		updated_on           TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (effective_start_date <= expiry_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_owner ON vehicles(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_vehicle ON contracts(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_companion ON contracts(companion_profile_id)`,
}

// RunMigrations applies the schema statements in order.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
