package handlers

import (
	"net/http"

	"letify_backend/internal/services"
	"letify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes mounts /profiles and /profiles/me as aliases.
func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/profiles", h.requireAuth)
	{
		profiles.POST("", h.SaveProfile)
		profiles.GET("", h.GetMyProfile)
		profiles.POST("/me", h.SaveProfile)
		profiles.GET("/me", h.GetMyProfile)
	}
}

// SaveProfile godoc
// @Summary Create or replace the caller's profile
// @Description age must be at least 18. A rejected request leaves the stored profile untouched.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.ProfileRequest true "Profile"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	caller, ok := h.CurrentIdentity(c)
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.Save(c.Request.Context(), caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// GetMyProfile returns {profile: null} when nothing has been saved yet.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	caller, ok := h.CurrentIdentity(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), caller.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
