package contract

import (
	"bytes"
	"encoding/json"
	"time"

	"humsafar-service/internal/pkg/audit"
)

// Schedule is the opaque recurring-usage document attached to a contract.
// It is stored and returned verbatim; the core never interprets it.
type Schedule = json.RawMessage

// Contract binds a vehicle to a companion profile for a bounded period,
// with percentage cost shares and a schedule document.
type Contract struct {
	ID                 int64     `json:"id" db:"id"`
	VehicleID          int64     `json:"vehicle_id" db:"vehicle_id"`
	CompanionProfileID int64     `json:"companion_profile_id" db:"companion_profile_id"`
	EffectiveStartDate time.Time `json:"effective_start_date" db:"effective_start_date"`
	ExpiryDate         time.Time `json:"expiry_date" db:"expiry_date"`
	IsActive           bool      `json:"is_active" db:"is_active"`
	FuelShare          int       `json:"fuel_share" db:"fuel_share"`
	MaintenanceShare   int       `json:"maintenance_share" db:"maintenance_share"`
	Schedule           Schedule  `json:"schedule" db:"schedule"`
	audit.Stamp
}

// ValidSchedule reports whether raw is well-formed structured JSON whose
// top level is an object or array. Anything deeper is deliberately not
// inspected.
func ValidSchedule(raw Schedule) bool {
	if len(raw) == 0 {
		return false
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return false
	}
	return json.Valid(raw)
}
