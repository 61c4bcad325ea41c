package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"codeberg.org/techworld/server/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

const (
	deleteAllProductsQuery = `DELETE FROM products`

	countProductsQuery = `SELECT COUNT(*) FROM products`

	insertProductQuery = `
		INSERT INTO products (
			content, metadata, embedding,
			product_id, name, type, color, image,
			price, stock, ram, storage, description, evaluate
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
)

// deletes all existing products from the database
func (s *Store) ClearProducts(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, deleteAllProductsQuery)
	if err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	return nil
}

// returns the number of products currently stored
func (s *Store) CountProducts(ctx context.Context) (int, error) {
	var count int

	err := s.pool.QueryRow(ctx, countProductsQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

// inserts products with their embeddings in a single transaction
func (s *Store) InsertProductsBatch(ctx context.Context, products []Product, embeddings [][]float32) error {
	if len(products) != len(embeddings) {
		return fmt.Errorf("products and embeddings length mismatch")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// defer rollback - will be no-op if commit succeeds
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	batch := &pgx.Batch{}

	for i, product := range products {
		metadata, err := json.Marshal(product.Metadata())
		if err != nil {
			return fmt.Errorf("failed to marshal metadata for %q: %w", product.Name, err)
		}

		batch.Queue(insertProductQuery,
			product.Content(),
			metadata,
			pgvector.NewVector(embeddings[i]),
			product.ProductID,
			product.Name,
			product.Type,
			product.Color,
			product.Image,
			product.Price,
			product.Stock,
			product.RAM,
			product.Storage,
			product.Description,
			product.Evaluate,
		)
	}

	br := tx.SendBatch(ctx, batch)

	for i := range len(products) {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck,gosec // G104: error path cleanup
			return fmt.Errorf("failed to insert product %d: %w", i, err)
		}
	}

	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
