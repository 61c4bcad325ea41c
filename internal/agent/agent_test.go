package agent

import (
	"context"
	"strings"
	"testing"

	"codeberg.org/techworld/server/internal/llm"
	"codeberg.org/techworld/server/internal/retriever"
)

// implements Lookup for testing
type mockLookup struct {
	semanticCalls   int
	structuredCalls int
	result          *retriever.LookupResult
}

func (m *mockLookup) SemanticLookup(_ context.Context, _ string) *retriever.LookupResult {
	m.semanticCalls++
	return m.result
}

func (m *mockLookup) StructuredLookup(_ context.Context, _ string) *retriever.LookupResult {
	m.structuredCalls++
	return m.result
}

// implements llm.TextGenerator for testing
type mockGenerator struct {
	lastRequest llm.TextGenerationRequest
	output      string
}

func (m *mockGenerator) GenerateText(_ context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	m.lastRequest = req

	output := m.output
	if output == "" {
		output = "Dạ, em tìm thấy sản phẩm phù hợp ạ."
	}

	return &llm.TextGenerationResponse{
		Text:  output,
		Usage: llm.Usage{InputTokens: 100, OutputTokens: 20},
	}, nil
}

func (m *mockGenerator) Model() string { return "mock-model" }

func foundResult() *retriever.LookupResult {
	return &retriever.LookupResult{
		Products: []map[string]any{
			{"name": "iPhone 15", "price": 9500000.0, "color": "đen"},
		},
		Summary: "Tìm thấy 1 sản phẩm dựa trên truy vấn của bạn.",
	}
}

func TestChatGroundsReplyInLookup(t *testing.T) {
	lookup := &mockLookup{result: foundResult()}
	gen := &mockGenerator{}
	a := New(lookup, gen)

	resp, err := a.Chat(context.Background(), ChatRequest{UserQuery: "Điện thoại nào chụp ảnh đẹp?"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if resp.Output == "" {
		t.Error("Expected non-empty output")
	}

	if resp.Lookup == nil || len(resp.Lookup.Products) != 1 {
		t.Errorf("Expected lookup result attached, got %+v", resp.Lookup)
	}

	// the retrieved products reach the generator via the system prompt
	if !strings.Contains(gen.lastRequest.SystemPrompt, "iPhone 15") {
		t.Error("Expected product data in system prompt")
	}

	if !strings.Contains(gen.lastRequest.SystemPrompt, "TechWorld") {
		t.Error("Expected store identity in system prompt")
	}
}

func TestChatIncludesHistory(t *testing.T) {
	lookup := &mockLookup{result: foundResult()}
	gen := &mockGenerator{}
	a := New(lookup, gen)

	history := []llm.Message{
		{Role: "user", Content: "iPhone còn hàng không?"},
		{Role: "assistant", Content: "Dạ còn ạ."},
	}

	_, err := a.Chat(context.Background(), ChatRequest{UserQuery: "Giá bao nhiêu?", History: history})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if len(gen.lastRequest.Messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(gen.lastRequest.Messages))
	}

	if gen.lastRequest.Messages[2].Role != "user" || gen.lastRequest.Messages[2].Content != "Giá bao nhiêu?" {
		t.Errorf("Expected current query as last message, got %+v", gen.lastRequest.Messages[2])
	}
}

func TestQueryRouting(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		structured bool
	}{
		{"spec filter with price", "iPhone giá dưới 15 triệu", true},
		{"spec filter with ram", "Điện thoại RAM 8GB", true},
		{"stock filter", "Sản phẩm màu đen còn hàng", true},
		{"open-ended need", "Điện thoại nào chụp ảnh đẹp?", false},
		{"comparison question", "Laptop nào chơi game mượt?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isStructuredQuery(tt.query); got != tt.structured {
				t.Errorf("isStructuredQuery(%q) = %v, want %v", tt.query, got, tt.structured)
			}
		})
	}
}

func TestChatRoutesStructuredQueries(t *testing.T) {
	lookup := &mockLookup{result: foundResult()}
	a := New(lookup, &mockGenerator{})

	if _, err := a.Chat(context.Background(), ChatRequest{UserQuery: "iPhone RAM 8GB giá dưới 10 triệu"}); err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if lookup.structuredCalls != 1 || lookup.semanticCalls != 0 {
		t.Errorf("Expected structured path, got structured=%d semantic=%d",
			lookup.structuredCalls, lookup.semanticCalls)
	}
}

func TestBuildSystemPromptEmptyResult(t *testing.T) {
	prompt := buildSystemPrompt(&retriever.LookupResult{
		Products: []map[string]any{},
		Summary:  "Tìm thấy 0 sản phẩm dựa trên truy vấn của bạn.",
	})

	if !strings.Contains(prompt, "không có sản phẩm nào") {
		t.Error("Expected empty-data marker in prompt")
	}

	if !strings.Contains(prompt, "Tìm thấy 0 sản phẩm") {
		t.Error("Expected summary carried into prompt")
	}
}
