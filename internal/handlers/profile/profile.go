// internal/handlers/profile/profile_handler.go
package profile

import (
	"net/http"
	"strconv"

	"humsafar-service/internal/domain/profile"
	"humsafar-service/internal/middleware"
	"humsafar-service/internal/pkg/response"
	service "humsafar-service/internal/service/profile"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// CreateProfile creates a profile for an identity
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.profileService.CreateProfile(c.Request.Context(), actorID, &req)
	if err != nil {
		response.FromError(c, "failed to create profile", err)
		return
	}

	response.Success(c, http.StatusCreated, "profile created successfully", result)
}

// GetProfile retrieves a profile by ID
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid profile ID", err)
		return
	}

	result, err := h.profileService.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to retrieve profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", result)
}

// GetOwnProfile retrieves the acting identity's profile
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	result, err := h.profileService.GetProfileByIdentity(c.Request.Context(), actorID)
	if err != nil {
		response.FromError(c, "failed to retrieve profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", result)
}

// ListProfiles retrieves profiles with filters
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	var filters profile.ProfileListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.profileService.ListProfiles(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list profiles", err)
		return
	}

	response.Success(c, http.StatusOK, "profiles retrieved", result)
}

// UpdateProfile patches a profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid profile ID", err)
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.profileService.UpdateProfile(c.Request.Context(), actorID, id, &req)
	if err != nil {
		response.FromError(c, "failed to update profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated successfully", result)
}

// DeactivateProfile marks a profile inactive
func (h *ProfileHandler) DeactivateProfile(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid profile ID", err)
		return
	}

	result, err := h.profileService.DeactivateProfile(c.Request.Context(), actorID, id)
	if err != nil {
		response.FromError(c, "failed to deactivate profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile deactivated", result)
}

// DeleteProfile hard-deletes a profile
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	actorID := middleware.MustGetIdentityID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid profile ID", err)
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), actorID, id); err != nil {
		response.FromError(c, "failed to delete profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile deleted", nil)
}
