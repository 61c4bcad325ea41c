package orders

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/techworld/server/internal/auth"
	orderscore "codeberg.org/techworld/server/internal/orders"
)

func RegisterRoutes(router *gin.RouterGroup, authManager *auth.Manager, client *orderscore.Client) {
	// no commerce backend configured, endpoints stay off
	if client == nil {
		return
	}

	ordersGroup := router.Group("/orders")
	ordersGroup.Use(authManager.RequireSession())
	{
		ordersGroup.POST("", CreateOrderHandler(client))
		ordersGroup.GET("/products/:slug", ProductBySlugHandler(client))
		ordersGroup.GET("/variations/:id", VariationsHandler(client))
	}
}
