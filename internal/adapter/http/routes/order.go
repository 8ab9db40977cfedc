package routes

import (
	"kanalsepet/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrder = "/order"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	order := rg.Group(PathOrder)
	{
		order.GET("", orderHandler.GetOrder)
		order.GET("/summary", orderHandler.GetSummary)
		order.GET("/share", orderHandler.GetShareText)
		order.GET("/storage", orderHandler.GetStorageUsage)
		order.POST("/items", orderHandler.AddItem)
		order.DELETE("/items/:id", orderHandler.RemoveItem)
		order.DELETE("/items", orderHandler.ClearItems)
		order.PUT("/project-name", orderHandler.SetProjectName)
		order.PUT("/zone-name", orderHandler.SetZoneName)
	}
}
