package handlers

import (
	"net/http"

	"letify_backend/internal/services"
	"letify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves both sides of the user/office thread.
type MessageHandler struct {
	*BaseHandler
	messageService *services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("/messages", h.requireAuth)
	{
		user.POST("", h.SendMessage)
		user.GET("", h.GetThread)
	}

	admin := r.Group("/admin/messages", h.requireAdmin)
	{
		admin.POST("", h.AdminSendMessage)
		admin.GET("", h.AdminListMessages)
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	caller, ok := h.CurrentIdentity(c)
	if !ok {
		return
	}

	var req dto.UserMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.messageService.SendFromUser(c.Request.Context(), caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messageId": msg.ID})
}

func (h *MessageHandler) GetThread(c *gin.Context) {
	caller, ok := h.CurrentIdentity(c)
	if !ok {
		return
	}

	messages, err := h.messageService.ListThread(c.Request.Context(), caller.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *MessageHandler) AdminSendMessage(c *gin.Context) {
	var req dto.AdminMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.messageService.SendFromAdmin(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messageId": msg.ID})
}

func (h *MessageHandler) AdminListMessages(c *gin.Context) {
	messages, err := h.messageService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
