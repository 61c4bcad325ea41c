package main

import (
	"context"
	"fmt"

	"codeberg.org/techworld/server/internal/config"
	"codeberg.org/techworld/server/internal/ingest"
	"codeberg.org/techworld/server/internal/llm"
	"codeberg.org/techworld/server/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// loads a catalog export, embeds the product copy and writes
// everything into the products table
func IngestProducts(cfg *config.Config, db *pgxpool.Pool, flags config.IngestFlags) error {
	ctx := context.Background()
	logger.Info("starting product ingestion", "path", flags.Path, "clear", flags.Clear)

	store := ingest.NewStore(db)

	// clear existing products if requested
	if flags.Clear {
		logger.Info("clearing existing products")

		if err := store.ClearProducts(ctx); err != nil {
			return fmt.Errorf("failed to clear existing products: %w", err)
		}

		logger.Info("cleared existing products")
	}

	products, err := ingest.LoadProducts(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	if len(products) == 0 {
		return fmt.Errorf("no products found in export")
	}

	logger.Info("loaded products", "count", len(products))

	// create OpenAI embedder
	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  "text-embedding-3-small",
	})

	// generate embeddings for all products
	logger.Info("generating embeddings for products")
	texts := make([]string, len(products))

	for i, product := range products {
		texts[i] = product.Content()
	}

	embeddings, err := embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	logger.Info("generated embeddings", "count", len(embeddings))

	// insert products with embeddings into database
	logger.Info("inserting products into database")
	if err := store.InsertProductsBatch(ctx, products, embeddings); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}

	// verify insertion
	count, err := store.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify product count: %w", err)
	}

	logger.Info("successfully ingested products",
		"products_inserted", len(products),
		"total_products", count,
	)

	return nil
}
