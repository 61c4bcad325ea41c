package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/techworld/server/internal/config"
	"codeberg.org/techworld/server/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ingester <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  products  - ingest a product catalog export")
		fmt.Println("\nOptions:")
		fmt.Println("  --path <path>  - Custom path to the export file")
		fmt.Println("  --clear        - Clear existing data before ingesting")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// connect to database
	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.SupabaseConnString)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	switch command {
	case "products":
		flags := config.ParseProductFlags()
		if err := IngestProducts(cfg, db, flags); err != nil {
			logger.Fatal("failed to ingest products", "error", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
