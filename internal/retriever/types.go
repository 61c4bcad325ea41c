package retriever

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/techworld/server/internal/llm"
)

type Client struct {
	pool     *pgxpool.Pool
	embedder llm.Embedder
	reranker llm.Reranker
	sqlgen   llm.TextGenerator
	exec     Executor
	config   *Config
}

// Candidate is one row returned by vector search, before reranking.
type Candidate struct {
	Content    string
	Metadata   map[string]any
	Similarity float64
}

type RerankedCandidate struct {
	Candidate
	RerankScore float64
}

// LookupResult is the envelope both lookup tools return. Products keeps
// the raw column map of each row so callers see exactly what the query
// selected.
type LookupResult struct {
	Products []map[string]any `json:"products"`
	Summary  string           `json:"summary"`
}

// Executor runs a single SQL statement and returns its rows as column maps.
// Abstracted so the fallback pipeline is testable without a database.
type Executor interface {
	QueryRows(ctx context.Context, sql string) ([]map[string]any, error)
}

// statementResult records the outcome of one generated statement.
// failures count as zero rows instead of aborting the batch.
type statementResult struct {
	index int
	sql   string
	rows  []map[string]any
	err   error
}
