// internal/handlers/catalog/catalog_handler.go
package catalog

import (
	"net/http"
	"strconv"

	"humsafar-service/internal/domain/catalog"
	"humsafar-service/internal/middleware"
	"humsafar-service/internal/pkg/response"
	service "humsafar-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// CreateModel creates a catalog entry
func (h *CatalogHandler) CreateModel(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	var req catalog.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.catalogService.CreateModel(c.Request.Context(), actorID, &req)
	if err != nil {
		response.FromError(c, "failed to create vehicle model", err)
		return
	}

	response.Success(c, http.StatusCreated, "vehicle model created successfully", result)
}

// GetModel retrieves a catalog entry by ID
func (h *CatalogHandler) GetModel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid model ID", err)
		return
	}

	result, err := h.catalogService.GetModel(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to retrieve vehicle model", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle model retrieved", result)
}

// ListModels retrieves the full catalog
func (h *CatalogHandler) ListModels(c *gin.Context) {
	result, err := h.catalogService.ListModels(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list vehicle models", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle models retrieved", result)
}

// UpdateModel patches a catalog entry
func (h *CatalogHandler) UpdateModel(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid model ID", err)
		return
	}

	var req catalog.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.catalogService.UpdateModel(c.Request.Context(), actorID, id, &req)
	if err != nil {
		response.FromError(c, "failed to update vehicle model", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle model updated successfully", result)
}

// DeleteModel removes a catalog entry
func (h *CatalogHandler) DeleteModel(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid model ID", err)
		return
	}

	if err := h.catalogService.DeleteModel(c.Request.Context(), actorID, id); err != nil {
		response.FromError(c, "failed to delete vehicle model", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle model deleted", nil)
}
