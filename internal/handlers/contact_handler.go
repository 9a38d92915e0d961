package handlers

import (
	"net/http"

	"letify_backend/internal/services"
	"letify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService *services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Submit)
	r.GET("/contact/all", h.requireAdmin, h.ListAll)
}

// Submit godoc
// @Summary Submit the public contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param inquiry body dto.ContactRequest true "Contact form"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	inquiry, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "inquiryId": inquiry.ID})
}

func (h *ContactHandler) ListAll(c *gin.Context) {
	inquiries, err := h.contactService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}
