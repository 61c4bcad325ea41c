package products

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/techworld/server/internal/auth"
	"codeberg.org/techworld/server/internal/retriever"
)

func RegisterRoutes(router *gin.RouterGroup, authManager *auth.Manager, ret *retriever.Client) {
	productsGroup := router.Group("/products")
	productsGroup.Use(authManager.RequireServiceToken())
	{
		productsGroup.POST("/semantic", SemanticHandler(ret))
		productsGroup.POST("/structured", StructuredHandler(ret))
	}
}
