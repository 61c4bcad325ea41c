package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// shared HTTP client for TEI rerank calls
// the reranker is a self-hosted service so it gets a shorter timeout
var teiHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type rerankRequest struct {
	Query string   `json:"query"`
	Texts []string `json:"texts"`
}

type rerankResult struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

type TEIConfig struct {
	BaseURL string // e.g., "http://localhost:8080"
	Model   string // informational, the server decides which model it serves
}

// TEIReranker scores query/document pairs against a text-embeddings-inference
// /rerank endpoint running a cross-encoder model.
type TEIReranker struct {
	config     TEIConfig
	httpClient *http.Client
}

func NewTEIReranker(config TEIConfig) *TEIReranker {
	return &TEIReranker{
		config:     config,
		httpClient: teiHTTPClient,
	}
}

func (r *TEIReranker) ModelName() string {
	return r.config.Model
}

// ScorePairs returns one relevance score per document, in document order.
func (r *TEIReranker) ScorePairs(ctx context.Context, query string, documents []string) ([]float64, error) {
	if len(documents) == 0 {
		return nil, nil
	}

	reqBody := rerankRequest{
		Query: query,
		Texts: documents,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(r.config.BaseURL, "/") + "/rerank"

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("rerank request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var results []rerankResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// the endpoint returns results sorted by score, map back to input order
	scores := make([]float64, len(documents))
	for _, res := range results {
		if res.Index < 0 || res.Index >= len(documents) {
			return nil, fmt.Errorf("rerank result index %d out of range", res.Index)
		}
		scores[res.Index] = res.Score
	}

	return scores, nil
}
