// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"net/http"
	"strconv"

	"humsafar-service/internal/domain/vehicle"
	"humsafar-service/internal/middleware"
	"humsafar-service/internal/pkg/response"
	service "humsafar-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
}

func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// RegisterVehicle registers a new vehicle
func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	var req vehicle.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.vehicleService.RegisterVehicle(c.Request.Context(), actorID, &req)
	if err != nil {
		response.FromError(c, "failed to register vehicle", err)
		return
	}

	response.Success(c, http.StatusCreated, "vehicle registered successfully", result)
}

// GetVehicle retrieves a vehicle by ID
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}

	result, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to retrieve vehicle", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle retrieved", result)
}

// GetVehicleByRegistration retrieves a vehicle by registration number
func (h *VehicleHandler) GetVehicleByRegistration(c *gin.Context) {
	result, err := h.vehicleService.GetVehicleByRegistration(c.Request.Context(), c.Param("registration"))
	if err != nil {
		response.FromError(c, "failed to retrieve vehicle", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle retrieved", result)
}

// ListVehicles retrieves vehicles with filters
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var filters vehicle.VehicleListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.vehicleService.ListVehicles(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list vehicles", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicles retrieved", result)
}

// UpdateStatus moves a vehicle to a new status
func (h *VehicleHandler) UpdateStatus(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}

	var req vehicle.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.vehicleService.UpdateStatus(c.Request.Context(), actorID, id, &req)
	if err != nil {
		response.FromError(c, "failed to update vehicle status", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle status updated", result)
}

// DeleteVehicle removes a vehicle
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle ID", err)
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), actorID, id); err != nil {
		response.FromError(c, "failed to delete vehicle", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle deleted", nil)
}
