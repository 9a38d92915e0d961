package routes

import (
	"letify_backend/internal/handlers"
	"letify_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler under prefix.
func RegisterRoutes(ginRouter *gin.Engine, prefix string, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group(prefix)
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.PropertyHandler.RegisterRoutes(api)
		appHandlers.BookingHandler.RegisterRoutes(api)
		appHandlers.RequestHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.MailingHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ExportHandler.RegisterRoutes(api)
	}
	logger.Info("HTTP routes registered", "prefix", prefix, "count", len(ginRouter.Routes()))
}
