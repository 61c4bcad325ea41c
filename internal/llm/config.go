package llm

import (
	"fmt"
	"os"
	"strconv"
)

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	// generator configuration (agent replies)
	generatorProvider := Provider(os.Getenv("GENERATOR_PROVIDER"))
	if generatorProvider == "" {
		generatorProvider = ProviderOpenAI // default
	}

	generatorAPIKey, err := apiKeyForProvider(generatorProvider)
	if err != nil {
		return nil, err
	}

	generatorModel := os.Getenv("GENERATOR_MODEL")
	if generatorModel == "" {
		if generatorProvider == ProviderAnthropic {
			generatorModel = "claude-3-5-haiku-20241022"
		} else {
			generatorModel = "gpt-4.1-mini"
		}
	}

	// SQL generator configuration (small model, SQL only)
	sqlGenProvider := Provider(os.Getenv("SQLGEN_PROVIDER"))
	if sqlGenProvider == "" {
		sqlGenProvider = ProviderOpenAI // default
	}

	sqlGenAPIKey, err := apiKeyForProvider(sqlGenProvider)
	if err != nil {
		return nil, err
	}

	sqlGenModel := os.Getenv("SQLGEN_MODEL")
	if sqlGenModel == "" {
		sqlGenModel = "gpt-4.1-nano"
	}

	// embedder configuration (OpenAI only)
	embedderAPIKey := os.Getenv("OPENAI_API_KEY")
	if embedderAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	embedderModel := os.Getenv("EMBEDDER_MODEL")
	if embedderModel == "" {
		embedderModel = "text-embedding-3-small"
	}

	// generator optional parameters
	generatorMaxTokens := 4096
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			generatorMaxTokens = val
		}
	}

	generatorTemperature := float32(0.7)
	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			generatorTemperature = float32(val)
		}
	}

	// SQL generator optional parameters (low temperature, short output)
	sqlGenMaxTokens := 400
	if maxTokensStr := os.Getenv("SQLGEN_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			sqlGenMaxTokens = val
		}
	}

	sqlGenTemperature := float32(0.0)
	if tempStr := os.Getenv("SQLGEN_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			sqlGenTemperature = float32(val)
		}
	}

	rerankerModel := os.Getenv("RERANKER_MODEL")
	if rerankerModel == "" {
		rerankerModel = "Alibaba-NLP/gte-multilingual-reranker-base"
	}

	return &Config{
		GeneratorProvider:    generatorProvider,
		GeneratorAPIKey:      generatorAPIKey,
		GeneratorModel:       generatorModel,
		GeneratorMaxTokens:   generatorMaxTokens,
		GeneratorTemperature: generatorTemperature,
		SQLGenProvider:       sqlGenProvider,
		SQLGenAPIKey:         sqlGenAPIKey,
		SQLGenModel:          sqlGenModel,
		SQLGenMaxTokens:      sqlGenMaxTokens,
		SQLGenTemperature:    sqlGenTemperature,
		EmbedderAPIKey:       embedderAPIKey,
		EmbedderModel:        embedderModel,
		RerankerURL:          os.Getenv("RERANKER_URL"),
		RerankerModel:        rerankerModel,
	}, nil
}

// returns the API key for the given provider, validating it is set
func apiKeyForProvider(provider Provider) (string, error) {
	switch provider {
	case ProviderAnthropic:
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return "", fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}

		return key, nil
	case ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return "", fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}

		return key, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", provider)
	}
}
