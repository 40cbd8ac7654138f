// internal/handlers/contract/contract_handler.go
package contract

import (
	"net/http"
	"strconv"

	"humsafar-service/internal/domain/contract"
	"humsafar-service/internal/middleware"
	"humsafar-service/internal/pkg/response"
	service "humsafar-service/internal/service/contract"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	contractService *service.ContractService
}

func NewContractHandler(contractService *service.ContractService) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// CreateContract creates a new cost-sharing contract
func (h *ContractHandler) CreateContract(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	var req contract.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.contractService.CreateContract(c.Request.Context(), actorID, &req)
	if err != nil {
		response.FromError(c, "failed to create contract", err)
		return
	}

	response.Success(c, http.StatusCreated, "contract created successfully", result)
}

// GetContract retrieves a contract by ID
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contract ID", err)
		return
	}

	result, err := h.contractService.GetContract(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to retrieve contract", err)
		return
	}

	response.Success(c, http.StatusOK, "contract retrieved", result)
}

// ListContracts retrieves contracts with filters
func (h *ContractHandler) ListContracts(c *gin.Context) {
	var filters contract.ContractListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.contractService.ListContracts(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list contracts", err)
		return
	}

	response.Success(c, http.StatusOK, "contracts retrieved", result)
}

// TerminateContract flips a contract inactive
func (h *ContractHandler) TerminateContract(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contract ID", err)
		return
	}

	result, err := h.contractService.TerminateContract(c.Request.Context(), actorID, id)
	if err != nil {
		response.FromError(c, "failed to terminate contract", err)
		return
	}

	response.Success(c, http.StatusOK, "contract terminated", result)
}

// DeleteContract hard-deletes a contract
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid contract ID", err)
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), actorID, id); err != nil {
		response.FromError(c, "failed to delete contract", err)
		return
	}

	response.Success(c, http.StatusOK, "contract deleted", nil)
}
