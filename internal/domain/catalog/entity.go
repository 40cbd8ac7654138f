package catalog

import (
	"humsafar-service/internal/pkg/audit"
	"humsafar-service/internal/refdata"
)

// VehicleModel is a make/model catalog entry, e.g. "Suzuki Alto".
type VehicleModel struct {
	ID       int64               `json:"id" db:"id"`
	Vendor   string              `json:"vendor" db:"vendor"`
	Model    string              `json:"model" db:"model"`
	Type     refdata.VehicleType `json:"type" db:"type"`
	Capacity int                 `json:"capacity" db:"capacity"`
	audit.Stamp
}

const (
	// DefaultModelName is stored when the caller leaves the model blank.
	DefaultModelName = "Unknown"
	// DefaultCapacity is the seating capacity assumed when unspecified.
	DefaultCapacity = 2
)
