package agent

import (
	"context"

	"codeberg.org/techworld/server/internal/llm"
	"codeberg.org/techworld/server/internal/retriever"
)

// Lookup is the product retrieval surface the agent consults. Both paths
// are exception-free and always return a result envelope.
type Lookup interface {
	SemanticLookup(ctx context.Context, query string) *retriever.LookupResult
	StructuredLookup(ctx context.Context, query string) *retriever.LookupResult
}

// orchestrates retrieval-grounded sales conversations
type Agent struct {
	lookup    Lookup
	generator llm.TextGenerator
}

type ChatRequest struct {
	UserQuery string
	History   []llm.Message
}

type ChatResponse struct {
	Output       string                  `json:"output"`
	Lookup       *retriever.LookupResult `json:"lookup,omitempty"`
	Model        string                  `json:"model"`
	InputTokens  int                     `json:"input_tokens"`
	OutputTokens int                     `json:"output_tokens"`
}
