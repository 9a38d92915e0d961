package middleware

import (
	"errors"
	"strings"

	"letify_backend/internal/auth"
	"letify_backend/internal/logger"
	"letify_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireAuth resolves the bearer token and stores the caller in the gin context.
func RequireAuth(provider auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, provider); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequireAuth plus the admin allow-list check.
func RequireAdmin(provider auth.Provider, admins *auth.AdminList) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := authenticate(c, provider)
		if !ok {
			return
		}
		if !admins.IsAdmin(id.Email) {
			logger.CtxWarn(c.Request.Context(), "admin access denied", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrAdminAccessDenied)
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, provider auth.Provider) (*auth.Identity, bool) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		apperrors.HandleError(c, apperrors.ErrMissingToken)
		return nil, false
	}

	id, err := provider.Authenticate(c.Request.Context(), token)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidToken):
		apperrors.HandleError(c, apperrors.ErrInvalidToken)
		return nil, false
	default:
		apperrors.HandleError(c, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "auth",
			apperrors.ErrIdentityUnavailable.Message, apperrors.ErrIdentityUnavailable.HTTPCode))
		return nil, false
	}

	ctx := logger.WithUser(c.Request.Context(), id.ID, id.Email)
	c.Request = c.Request.WithContext(ctx)
	c.Set(identityKey, id)
	return id, true
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// GetIdentity returns the caller stored by RequireAuth or RequireAdmin.
func GetIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*auth.Identity)
	return id, ok && id != nil
}
