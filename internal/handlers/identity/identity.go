// internal/handlers/identity/identity_handler.go
package identity

import (
	"net/http"

	"humsafar-service/internal/middleware"
	"humsafar-service/internal/pkg/response"
	service "humsafar-service/internal/service/identitymirror"

	"github.com/gin-gonic/gin"
)

type IdentityHandler struct {
	identityService *service.IdentityService
}

func NewIdentityHandler(identityService *service.IdentityService) *IdentityHandler {
	return &IdentityHandler{
		identityService: identityService,
	}
}

// GetIdentity retrieves a mirrored identity by ID
func (h *IdentityHandler) GetIdentity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "identity ID is required", nil)
		return
	}

	result, err := h.identityService.GetIdentity(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to retrieve identity", err)
		return
	}

	response.Success(c, http.StatusOK, "identity retrieved", result)
}

// DeleteIdentity removes an identity and everything hanging off it
func (h *IdentityHandler) DeleteIdentity(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "identity ID is required", nil)
		return
	}

	if err := h.identityService.DeleteIdentity(c.Request.Context(), actorID, id); err != nil {
		response.FromError(c, "failed to delete identity", err)
		return
	}

	response.Success(c, http.StatusOK, "identity deleted", nil)
}
