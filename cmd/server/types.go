package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"codeberg.org/techworld/server/internal/agent"
	"codeberg.org/techworld/server/internal/auth"
	"codeberg.org/techworld/server/internal/config"
	"codeberg.org/techworld/server/internal/history"
	"codeberg.org/techworld/server/internal/llm"
	"codeberg.org/techworld/server/internal/orders"
	"codeberg.org/techworld/server/internal/retriever"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	config   *config.Config
	auth     *auth.Manager
	history  *history.Store
	services *Services
	router   *gin.Engine
}

// holds all external service clients
type Services struct {
	Agent     *agent.Agent
	LLM       llm.LLM
	Retriever *retriever.Client
	Orders    *orders.Client
}
