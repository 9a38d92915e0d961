package handlers

import (
	"net/http"

	"letify_backend/internal/services"
	"letify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	*BaseHandler
	requestService *services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	{
		requests.POST("", h.requireAuth, h.CreateRequest)
		requests.GET("/me", h.requireAuth, h.ListMine)
		requests.GET("/all", h.requireAdmin, h.ListAll)
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	caller, ok := h.CurrentIdentity(c)
	if !ok {
		return
	}

	var req dto.ServiceRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	created, err := h.requestService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requestId": created.ID})
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	caller, ok := h.CurrentIdentity(c)
	if !ok {
		return
	}

	requests, err := h.requestService.ListMine(c.Request.Context(), caller.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *RequestHandler) ListAll(c *gin.Context) {
	requests, err := h.requestService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
