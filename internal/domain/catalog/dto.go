package catalog

// CreateModelRequest carries a new catalog entry. Model and capacity are
// optional and defaulted by the service.
type CreateModelRequest struct {
	Vendor   string `json:"vendor"`
	Model    string `json:"model"`
	Type     string `json:"type" binding:"required"`
	Capacity *int   `json:"capacity"`
}

// UpdateModelRequest patches a catalog entry.
type UpdateModelRequest struct {
	Vendor   *string `json:"vendor"`
	Model    *string `json:"model"`
	Type     *string `json:"type"`
	Capacity *int    `json:"capacity"`
}
