package vehicle

import (
	"time"

	"humsafar-service/internal/pkg/audit"
	"humsafar-service/internal/refdata"
)

// Vehicle is a concrete owned vehicle referencing a catalog model and an
// owner identity. RegistrationNumber is unique across all vehicles.
type Vehicle struct {
	ID                 int64                 `json:"id" db:"id"`
	RegistrationNumber string                `json:"registration_number" db:"registration_number"`
	Color              string                `json:"color" db:"color"`
	ModelID            int64                 `json:"model_id" db:"model_id"`
	OwnerID            string                `json:"owner_id" db:"owner_id"`
	DateAdded          time.Time             `json:"date_added" db:"date_added"`
	Status             refdata.VehicleStatus `json:"status" db:"status"`
	audit.Stamp
}

// DefaultColor is stored when the caller leaves the color blank.
const DefaultColor = "white"
