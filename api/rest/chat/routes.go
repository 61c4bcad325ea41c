package chat

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	agentcore "codeberg.org/techworld/server/internal/agent"
	"codeberg.org/techworld/server/internal/auth"
	"codeberg.org/techworld/server/internal/history"
	"codeberg.org/techworld/server/internal/logger"
)

// chat turns allowed per client IP per minute
const chatRateLimit = "30-M"

func RegisterRoutes(router *gin.RouterGroup, authManager *auth.Manager, agent *agentcore.Agent, store *history.Store, redisClient *redis.Client) {
	chatGroup := router.Group("/chat")
	chatGroup.Use(rateLimitMiddleware(redisClient))

	chatGroup.POST("/session", SessionHandler(authManager))

	authed := chatGroup.Group("")
	authed.Use(authManager.RequireSession())
	{
		authed.POST("", ChatHandler(agent, store))
		authed.GET("/:session_id/history", HistoryHandler(store))
	}
}

func rateLimitMiddleware(redisClient *redis.Client) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(chatRateLimit)
	if err != nil {
		logger.Fatal("invalid rate limit format", "rate", chatRateLimit)
	}

	store, err := sredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{
		Prefix: "chat:ratelimit",
	})

	if err != nil {
		logger.FatalErr(err, "failed to create rate limit store")
	}

	return mgin.NewMiddleware(limiter.New(store, rate))
}
