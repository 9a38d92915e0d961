package handlers

import (
	"net/http"

	"letify_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService *services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/notifications", h.requireAuth, h.GetMyNotifications)
	r.GET("/admin/notifications", h.requireAdmin, h.GetAdminNotifications)
}

// GetMyNotifications godoc
// @Summary Caller's in-app notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	caller, ok := h.CurrentIdentity(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListForUser(c.Request.Context(), caller.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) GetAdminNotifications(c *gin.Context) {
	notifications, err := h.notificationService.ListAdmin(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
