package handlers

import (
	"errors"
	"strconv"

	"letify_backend/internal/auth"
	"letify_backend/internal/logger"
	"letify_backend/internal/middleware"
	"letify_backend/internal/validator"
	"letify_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries what every handler needs: validation and the two route guards.
type BaseHandler struct {
	validator    *validator.Validator
	requireAuth  gin.HandlerFunc
	requireAdmin gin.HandlerFunc
}

func NewBaseHandler(v *validator.Validator, provider auth.Provider, admins *auth.AdminList) *BaseHandler {
	return &BaseHandler{
		validator:    v,
		requireAuth:  middleware.RequireAuth(provider),
		requireAdmin: middleware.RequireAdmin(provider, admins),
	}
}

// BindAndValidate_JSON decodes the body into obj and runs the validation tags.
// On failure it has already written the 400 and the handler must return.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(ctx, "Failed to bind JSON body", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Summary(), vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode < 500 {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"code", appErr.Code,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// CurrentIdentity returns the caller resolved by the auth guard.
func (h *BaseHandler) CurrentIdentity(c *gin.Context) (*auth.Identity, bool) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: identity not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.ErrMissingToken)
		return nil, false
	}
	return id, true
}

// ParseQueryFloat returns nil when key is absent and a 400 when it is not a number.
func ParseQueryFloat(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid " + key + ": must be a number")
	}
	return &v, nil
}
