package llm

import (
	"context"
	"fmt"
)

// combines a TextGenerator and Embedder into a single LLM
type CompositeLLM struct {
	TextGenerator
	Embedder
}

// creates a new LLM with auto-configuration from environment variables
func NewLLM(ctx context.Context) (LLM, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewLLMWithConfig(ctx, config)
}

// creates a new LLM with explicit configuration
func NewLLMWithConfig(_ context.Context, config *Config) (LLM, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	generator, err := newGenerator(config.GeneratorProvider, GeneratorConfig{
		APIKey:      config.GeneratorAPIKey,
		Model:       config.GeneratorModel,
		MaxTokens:   config.GeneratorMaxTokens,
		Temperature: config.GeneratorTemperature,
	})
	if err != nil {
		return nil, err
	}

	embedder := NewOpenAIEmbedder(OpenAIConfig{
		APIKey: config.EmbedderAPIKey,
		Model:  config.EmbedderModel,
	})

	return &CompositeLLM{
		TextGenerator: generator,
		Embedder:      embedder,
	}, nil
}

// creates the small-model text generator used for NL-to-SQL planning
func NewSQLGenerator(config *Config) (TextGenerator, error) {
	if config == nil {
		loaded, err := loadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load LLM config: %w", err)
		}

		config = loaded
	}

	return newGenerator(config.SQLGenProvider, GeneratorConfig{
		APIKey:      config.SQLGenAPIKey,
		Model:       config.SQLGenModel,
		MaxTokens:   config.SQLGenMaxTokens,
		Temperature: config.SQLGenTemperature,
	})
}

// creates the cross-encoder reranker; returns nil when no endpoint is
// configured, which disables the reranking stage entirely
func NewReranker(config *Config) (Reranker, error) {
	if config == nil {
		loaded, err := loadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load LLM config: %w", err)
		}

		config = loaded
	}

	if config.RerankerURL == "" {
		return nil, nil
	}

	return NewTEIReranker(TEIConfig{
		BaseURL: config.RerankerURL,
		Model:   config.RerankerModel,
	}), nil
}

// returns the loaded configuration for callers that construct
// generators/rerankers themselves
func LoadConfig() (*Config, error) {
	return loadConfig()
}

// shared provider dispatch for chat-completion clients
type GeneratorConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
}

func newGenerator(provider Provider, cfg GeneratorConfig) (TextGenerator, error) {
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig(cfg)), nil
	case ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIGeneratorConfig(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", provider)
	}
}
