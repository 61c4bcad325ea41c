package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/techworld/server/internal/agent"
	"codeberg.org/techworld/server/internal/config"
	"codeberg.org/techworld/server/internal/llm"
	"codeberg.org/techworld/server/internal/orders"
	"codeberg.org/techworld/server/internal/retriever"
)

// creates and configures all service clients
func InitializeServices(ctx context.Context, cfg *config.Config, db *pgxpool.Pool) (*Services, error) {
	llmConfig, err := llm.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load llm config: %w", err)
	}

	llmClient, err := llm.NewLLMWithConfig(ctx, llmConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	sqlGenerator, err := llm.NewSQLGenerator(llmConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL generator: %w", err)
	}

	reranker, err := llm.NewReranker(llmConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create reranker: %w", err)
	}

	retrieverConfig, err := retriever.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load retriever config: %w", err)
	}

	retrieverClient := retriever.NewWithPool(db, llmClient, reranker, sqlGenerator, retrieverConfig)
	agentClient := agent.New(retrieverClient, llmClient)

	// the commerce backend is optional, orders endpoints stay off without it
	var ordersClient *orders.Client
	if cfg.WooBaseURL != "" {
		ordersClient = orders.NewClient(orders.Config{
			BaseURL:        cfg.WooBaseURL,
			ConsumerKey:    cfg.WooConsumerKey,
			ConsumerSecret: cfg.WooConsumerSecret,
		})
	}

	return &Services{
		Agent:     agentClient,
		LLM:       llmClient,
		Retriever: retrieverClient,
		Orders:    ordersClient,
	}, nil
}
