package llm

import "context"

// combines text generation, embedding generation and reranking
type LLM interface {
	TextGenerator
	Embedder
}

// represents different LLM providers
type Provider string

// generates chat completions (agent replies, NL-to-SQL plans)
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// generates embeddings from text
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// scores (query, document) pairs with a cross-encoder model.
// Scores are unbounded; higher means more relevant. Implementations call an
// external scoring service and must not reorder the input documents.
type Reranker interface {
	ScorePairs(ctx context.Context, query string, documents []string) ([]float64, error)
	ModelName() string
}

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// holds configuration for LLM initialization
type Config struct {
	// generator configuration (agent replies)
	GeneratorProvider    Provider
	GeneratorAPIKey      string
	GeneratorModel       string // e.g., "gpt-4.1-mini"
	GeneratorMaxTokens   int
	GeneratorTemperature float32

	// SQL generator configuration (small, cheap model)
	SQLGenProvider    Provider
	SQLGenAPIKey      string
	SQLGenModel       string // e.g., "gpt-4.1-nano"
	SQLGenMaxTokens   int
	SQLGenTemperature float32

	// embedder configuration
	EmbedderAPIKey string
	EmbedderModel  string // e.g., "text-embedding-3-small"

	// reranker configuration (optional; empty URL disables reranking)
	RerankerURL   string
	RerankerModel string
}

// conversation message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// inputs for a chat completion
type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
}

// token accounting reported by the provider
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// a chat completion with usage metadata
type TextGenerationResponse struct {
	Text  string
	Usage Usage
}
