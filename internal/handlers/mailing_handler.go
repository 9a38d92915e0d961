package handlers

import (
	"net/http"

	"letify_backend/internal/services"
	"letify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MailingHandler struct {
	*BaseHandler
	mailingService *services.MailingService
}

func NewMailingHandler(base *BaseHandler, mailingService *services.MailingService) *MailingHandler {
	return &MailingHandler{
		BaseHandler:    base,
		mailingService: mailingService,
	}
}

func (h *MailingHandler) RegisterRoutes(r *gin.RouterGroup) {
	lists := r.Group("/admin/mailing-lists", h.requireAdmin)
	{
		lists.POST("", h.CreateList)
		lists.GET("", h.GetLists)
		lists.POST("/:id/send", h.SendToList)
	}
}

func (h *MailingHandler) CreateList(c *gin.Context) {
	var req dto.CreateMailingListRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	list, err := h.mailingService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "list": list})
}

func (h *MailingHandler) GetLists(c *gin.Context) {
	lists, err := h.mailingService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lists": lists})
}

// SendToList godoc
// @Summary Broadcast to every profile matching the list's interests
// @Tags mailing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mailing list id"
// @Param message body dto.SendMailingRequest true "Subject and body"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse "No matching recipients found"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/mailing-lists/{id}/send [post]
func (h *MailingHandler) SendToList(c *gin.Context) {
	var req dto.SendMailingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sent, err := h.mailingService.Send(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sent": sent})
}
