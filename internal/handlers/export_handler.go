package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"letify_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	*BaseHandler
	exportService *services.ExportService
}

func NewExportHandler(base *BaseHandler, exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   base,
		exportService: exportService,
	}
}

func (h *ExportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/admin/export/clients.csv", h.requireAdmin, h.ExportClients)
}

// ExportClients godoc
// @Summary Download every client contact as CSV
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/export/clients.csv [get]
func (h *ExportHandler) ExportClients(c *gin.Context) {
	// buffered so a store failure can still become a JSON error
	var buf bytes.Buffer
	if err := h.exportService.WriteClientsCSV(c.Request.Context(), &buf); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("letify-clients-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
