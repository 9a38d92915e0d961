package handlers

import (
	"net/http"

	"letify_backend/internal/services"
	"letify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// PropertyHandler serves listings and the inquiries made about them.
type PropertyHandler struct {
	*BaseHandler
	propertyService *services.PropertyService
	inquiryService  *services.InquiryService
}

func NewPropertyHandler(base *BaseHandler, propertyService *services.PropertyService, inquiryService *services.InquiryService) *PropertyHandler {
	return &PropertyHandler{
		BaseHandler:     base,
		propertyService: propertyService,
		inquiryService:  inquiryService,
	}
}

func (h *PropertyHandler) RegisterRoutes(r *gin.RouterGroup) {
	properties := r.Group("/properties")
	{
		properties.GET("", h.ListProperties)
		properties.GET("/:id", h.GetProperty)
		properties.POST("", h.requireAdmin, h.CreateProperty)
		properties.PUT("/:id", h.requireAdmin, h.UpdateProperty)
		properties.DELETE("/:id", h.requireAdmin, h.DeleteProperty)
	}

	inquiries := r.Group("/property-inquiries")
	{
		inquiries.POST("", h.SubmitInquiry)
		inquiries.GET("/all", h.requireAdmin, h.ListInquiries)
	}
}

// CreateProperty godoc
// @Summary Create a listing
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param property body dto.CreatePropertyRequest true "Listing"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "property": property})
}

// ListProperties godoc
// @Summary List listings
// @Description Filters run in memory. type=all or empty matches every type.
// @Tags properties
// @Produce json
// @Param type query string false "Sale, Rent, Airbnb, Commercial or all"
// @Param search query string false "Substring of title or location"
// @Param minPrice query number false "Lower bound on the digits of the display price"
// @Param maxPrice query number false "Upper bound on the digits of the display price"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	minPrice, err := ParseQueryFloat(c, "minPrice")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	maxPrice, err := ParseQueryFloat(c, "maxPrice")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	properties, err := h.propertyService.List(c.Request.Context(), dto.PropertyFilter{
		Type:     c.Query("type"),
		Search:   c.Query("search"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// GetProperty godoc
// @Summary Get one listing
// @Tags properties
// @Produce json
// @Param id path string true "Property id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "property": property})
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.propertyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PropertyHandler) SubmitInquiry(c *gin.Context) {
	var req dto.PropertyInquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	inquiry, err := h.inquiryService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inquiryId": inquiry.ID})
}

func (h *PropertyHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.inquiryService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}
