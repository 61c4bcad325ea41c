package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"codeberg.org/techworld/server/api/rest/chat"
	"codeberg.org/techworld/server/api/rest/health"
	"codeberg.org/techworld/server/api/rest/orders"
	"codeberg.org/techworld/server/api/rest/products"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	health.RegisterRoutes(router, server.db, server.history)

	v1 := router.Group("/api/v1")
	{
		products.RegisterRoutes(v1, server.auth, server.services.Retriever)
		chat.RegisterRoutes(v1, server.auth, server.services.Agent, server.history, server.redis)
		orders.RegisterRoutes(v1, server.auth, server.services.Orders)
	}
}
