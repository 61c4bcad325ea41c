package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/techworld/server/internal/history"
)

// HealthHandler godoc
// @Summary Health check
// @Description Reports service health including database and redis connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func HealthHandler(pool *pgxpool.Pool, store *history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		resp := HealthResponse{Status: "ok", Time: time.Now().UTC().Format(time.RFC3339)}
		status := http.StatusOK

		if err := pool.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			resp.Database = "ok"
		}

		if err := store.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Redis = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			resp.Redis = "ok"
		}

		c.JSON(status, resp)
	}
}
