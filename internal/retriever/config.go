package retriever

import (
	"os"
	"strconv"
)

const (
	defaultSearchK        = 5
	defaultScoreThreshold = 0.7
	defaultTopK           = 3
	defaultRowCap         = 3
)

type Config struct {
	DBConnString string

	// SearchK is how many candidates vector search fetches before reranking
	SearchK int
	// ScoreThreshold excludes candidates whose similarity falls below it
	ScoreThreshold float64
	// TopK is how many products survive reranking
	TopK int
	// RowCap is the LIMIT injected into generated statements without one
	RowCap int
}

// LoadConfig loads configuration from environment variables. The
// connection string may be empty when the caller injects its own pool.
func LoadConfig() (*Config, error) {
	config := &Config{
		DBConnString:   os.Getenv("SUPABASE_CONNECTION_STRING"),
		SearchK:        defaultSearchK,
		ScoreThreshold: defaultScoreThreshold,
		TopK:           defaultTopK,
		RowCap:         defaultRowCap,
	}

	if v := os.Getenv("RETRIEVAL_SEARCH_K"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			config.SearchK = val
		}
	}

	if v := os.Getenv("RETRIEVAL_SCORE_THRESHOLD"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			config.ScoreThreshold = val
		}
	}

	if v := os.Getenv("RETRIEVAL_TOP_K"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			config.TopK = val
		}
	}

	if v := os.Getenv("RETRIEVAL_ROW_CAP"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			config.RowCap = val
		}
	}

	return config, nil
}
