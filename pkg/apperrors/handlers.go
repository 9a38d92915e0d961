package apperrors

import (
	"letify_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request. Error is always a plain string.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError renders err and aborts the gin chain.
// Errors that are not *AppError are treated as internal.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		cause := appErr.Err
		if cause == nil {
			cause = appErr
		}
		logger.CtxWithError(c.Request.Context(), "request failed", cause,
			"domain", appErr.Domain,
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}
