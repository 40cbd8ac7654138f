package vehicle

// RegisterVehicleRequest carries a new vehicle registration. Color and
// status are optional; the service defaults and validates them.
type RegisterVehicleRequest struct {
	RegistrationNumber string `json:"registration_number"`
	Color              string `json:"color"`
	ModelID            int64  `json:"model_id" binding:"required"`
	OwnerID            string `json:"owner_id"`
	Status             string `json:"status"`
}

// UpdateStatusRequest moves a vehicle to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// VehicleListFilters narrows List results. Statuses accepts several enum
// values at once.
type VehicleListFilters struct {
	OwnerID  string   `form:"owner_id"`
	ModelID  int64    `form:"model_id"`
	Statuses []string `form:"status"`
}
