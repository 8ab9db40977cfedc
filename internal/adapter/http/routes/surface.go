package routes

import (
	"kanalsepet/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSurface       = "/surface"
	PathNotifications = "/notifications"
)

func addSurfaceRoutes(rg *gin.RouterGroup, surfaceHandler *handlers.SurfaceHandler, notificationHandler *handlers.NotificationHandler) {
	surface := rg.Group(PathSurface)
	{
		surface.GET("/events", surfaceHandler.Events)
		surface.POST("/messages", surfaceHandler.PostMessage)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.List)
		notifications.DELETE("/:id", notificationHandler.Dismiss)
	}

	rg.GET("/events", notificationHandler.Events)
}
