package handlers

import (
	"net/http"

	"letify_backend/internal/services"
	"letify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// BookingHandler covers reservations, inspections and consultations.
type BookingHandler struct {
	*BaseHandler
	bookingService *services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	reservations := r.Group("/reservations")
	{
		reservations.POST("", h.CreateReservation)
		reservations.GET("/all", h.requireAdmin, h.ListReservations)
	}

	inspections := r.Group("/inspections")
	{
		inspections.POST("", h.CreateInspection)
		inspections.GET("/all", h.requireAdmin, h.ListInspections)
		inspections.PUT("/:id", h.requireAdmin, h.UpdateInspection)
	}

	consultations := r.Group("/consultations")
	{
		consultations.POST("", h.CreateConsultation)
		consultations.GET("/all", h.requireAdmin, h.ListConsultations)
		consultations.PUT("/:id", h.requireAdmin, h.UpdateConsultation)
	}
}

// CreateReservation godoc
// @Summary Reserve a property
// @Description Stay and lease dates are stored as sent.
// @Tags bookings
// @Accept json
// @Produce json
// @Param reservation body dto.ReservationRequest true "Reservation"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /reservations [post]
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reservation, err := h.bookingService.CreateReservation(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservationId": reservation.ID})
}

func (h *BookingHandler) ListReservations(c *gin.Context) {
	reservations, err := h.bookingService.ListReservations(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func (h *BookingHandler) CreateInspection(c *gin.Context) {
	var req dto.InspectionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	inspection, err := h.bookingService.CreateInspection(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inspectionId": inspection.ID})
}

func (h *BookingHandler) ListInspections(c *gin.Context) {
	inspections, err := h.bookingService.ListInspections(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inspections": inspections})
}

// UpdateInspection godoc
// @Summary Confirm, approve or decline an inspection
// @Description Omitted fields keep their stored value. The requester gets one email.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inspection id"
// @Param update body dto.BookingUpdateRequest true "Status and confirmed slot"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /inspections/{id} [put]
func (h *BookingHandler) UpdateInspection(c *gin.Context) {
	var req dto.BookingUpdateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	inspection, err := h.bookingService.UpdateInspection(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inspection": inspection})
}

func (h *BookingHandler) CreateConsultation(c *gin.Context) {
	var req dto.ConsultationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	consultation, err := h.bookingService.CreateConsultation(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "consultationId": consultation.ID})
}

func (h *BookingHandler) ListConsultations(c *gin.Context) {
	consultations, err := h.bookingService.ListConsultations(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultations": consultations})
}

func (h *BookingHandler) UpdateConsultation(c *gin.Context) {
	var req dto.BookingUpdateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	consultation, err := h.bookingService.UpdateConsultation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "consultation": consultation})
}
