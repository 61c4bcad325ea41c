package retriever

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"codeberg.org/techworld/server/internal/llm"
	"codeberg.org/techworld/server/internal/logger"
)

// New creates a retriever client with auto-configuration from environment
func New(ctx context.Context) (*Client, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load retriever config: %w", err)
	}

	if config.DBConnString == "" {
		return nil, fmt.Errorf("SUPABASE_CONNECTION_STRING environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(config.DBConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	// Supabase pooler works in transaction mode, keep the pool small and
	// skip prepared statements
	poolConfig.MaxConns = 5
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	llmConfig, err := llm.LoadConfig()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to load llm config: %w", err)
	}

	composite, err := llm.NewLLMWithConfig(ctx, llmConfig)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	sqlgen, err := llm.NewSQLGenerator(llmConfig)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create sql generator: %w", err)
	}

	reranker, err := llm.NewReranker(llmConfig)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create reranker: %w", err)
	}

	return NewWithPool(pool, composite, reranker, sqlgen, config), nil
}

// NewWithPool creates a retriever client with injected dependencies,
// sharing an existing connection pool
func NewWithPool(pool *pgxpool.Pool, embedder llm.Embedder, reranker llm.Reranker, sqlgen llm.TextGenerator, config *Config) *Client {
	return &Client{
		pool:     pool,
		embedder: embedder,
		reranker: reranker,
		sqlgen:   sqlgen,
		exec:     &poolExecutor{pool: pool},
		config:   config,
	}
}

// Close closes the retriever client
func (c *Client) Close() {
	c.pool.Close()
}

// VectorSearch embeds the query and runs a similarity search over the
// products table. Candidates under the score threshold are excluded.
func (c *Client) VectorSearch(ctx context.Context, queryText string, k int) ([]Candidate, error) {
	embedding, err := c.embedder.GenerateEmbedding(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	rows, err := c.pool.Query(ctx, matchProductsQuery, pgvector.NewVector(embedding), k)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}

	defer rows.Close()

	var results []Candidate

	for rows.Next() {
		var candidate Candidate
		var rawMetadata []byte

		if err := rows.Scan(&candidate.Content, &rawMetadata, &candidate.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if err := json.Unmarshal(rawMetadata, &candidate.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}

		results = append(results, candidate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return filterByThreshold(results, c.config.ScoreThreshold), nil
}

// SemanticLookup answers a product question by embedding, similarity
// search and cross-encoder reranking. It never fails upward: any error
// becomes a result with an empty product list and an error summary.
func (c *Client) SemanticLookup(ctx context.Context, query string) (result *LookupResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("semantic lookup panicked", "panic", fmt.Sprint(r))
			result = errorResult(fmt.Errorf("%v", r))
		}
	}()

	candidates, err := c.VectorSearch(ctx, query, c.config.SearchK)
	if err != nil {
		logger.ErrorErr(err, "semantic lookup failed", "query", truncate(query, 120))
		return errorResult(err)
	}

	reranked, err := rerankCandidates(ctx, c.reranker, query, candidates, c.config.TopK)
	if err != nil {
		logger.ErrorErr(err, "reranking failed", "query", truncate(query, 120))
		return errorResult(err)
	}

	products := make([]map[string]any, 0, len(reranked))
	for _, cand := range reranked {
		products = append(products, cand.Metadata)
	}

	products = deduplicateByName(products)

	return &LookupResult{
		Products: products,
		Summary:  foundSummary(len(products)),
	}
}

// StructuredLookup turns the question into SQL with the small model, runs
// each statement and merges the rows. When the whole plan comes back empty
// it falls back to SemanticLookup, once, in that direction only. Like the
// semantic path it always returns a result.
func (c *Client) StructuredLookup(ctx context.Context, query string) (result *LookupResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("structured lookup panicked", "panic", fmt.Sprint(r))
			result = errorResult(fmt.Errorf("%v", r))
		}
	}()

	raw, err := c.generateSQLPlan(ctx, query)
	if err != nil {
		logger.ErrorErr(err, "sql plan generation failed", "query", truncate(query, 120))
		return errorResult(err)
	}

	logger.Debug("generated sql plan", "plan", truncate(raw, 500))

	statements := splitStatements(raw)
	if len(statements) == 0 {
		// no usable plan is not an error, it hands the query to the
		// semantic path
		logger.Info("no sql plan generated, falling back to semantic", "query", truncate(query, 120))
		return c.SemanticLookup(ctx, query)
	}

	merged := c.executeStatements(ctx, statements)
	if len(merged) == 0 {
		logger.Info("structured lookup empty, falling back to semantic", "query", truncate(query, 120))
		return c.SemanticLookup(ctx, query)
	}

	merged = deduplicateByName(merged)

	return &LookupResult{
		Products: merged,
		Summary:  foundSummary(len(merged)),
	}
}
