package contract

import "encoding/json"

// CreateContractRequest carries a new cost-sharing agreement. Dates arrive
// as YYYY-MM-DD strings; the schedule document is passed through untouched.
type CreateContractRequest struct {
	VehicleID          int64           `json:"vehicle_id" binding:"required"`
	CompanionProfileID int64           `json:"companion_profile_id" binding:"required"`
	EffectiveStartDate string          `json:"effective_start_date" binding:"required"`
	ExpiryDate         string          `json:"expiry_date" binding:"required"`
	FuelShare          int             `json:"fuel_share"`
	MaintenanceShare   int             `json:"maintenance_share"`
	Schedule           json.RawMessage `json:"schedule"`
}

// ContractListFilters narrows List results.
type ContractListFilters struct {
	VehicleID          int64 `form:"vehicle_id"`
	CompanionProfileID int64 `form:"companion_profile_id"`
	Active             *bool `form:"active"`
}
