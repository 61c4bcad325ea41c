package health

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/techworld/server/internal/history"
)

func RegisterRoutes(router *gin.Engine, pool *pgxpool.Pool, store *history.Store) {
	router.GET("/health", HealthHandler(pool, store))
}
