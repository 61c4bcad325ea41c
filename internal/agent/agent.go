package agent

import (
	"context"
	"fmt"

	"codeberg.org/techworld/server/internal/llm"
	"codeberg.org/techworld/server/internal/logger"
	"codeberg.org/techworld/server/internal/retriever"
)

func New(lookup Lookup, generator llm.TextGenerator) *Agent {
	return &Agent{
		lookup:    lookup,
		generator: generator,
	}
}

// Chat answers one turn of a sales conversation. Product data is
// retrieved first, then the generator writes the reply grounded in it.
func (a *Agent) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	result := a.retrieve(ctx, req.UserQuery)

	messages := make([]llm.Message, 0, len(req.History)+1)
	messages = append(messages, req.History...)
	messages = append(messages, llm.Message{Role: "user", Content: req.UserQuery})

	response, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: buildSystemPrompt(result),
		Messages:     messages,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	return &ChatResponse{
		Output:       response.Text,
		Lookup:       result,
		Model:        a.generator.Model(),
		InputTokens:  response.Usage.InputTokens,
		OutputTokens: response.Usage.OutputTokens,
	}, nil
}

func (a *Agent) retrieve(ctx context.Context, query string) *retriever.LookupResult {
	if isStructuredQuery(query) {
		logger.Debug("routing query to structured lookup")
		return a.lookup.StructuredLookup(ctx, query)
	}

	logger.Debug("routing query to semantic lookup")
	return a.lookup.SemanticLookup(ctx, query)
}
