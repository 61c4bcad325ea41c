package retriever

import (
	"context"
	"errors"
	"testing"
)

type fakeReranker struct {
	scores []float64
	err    error
	calls  int
}

func (f *fakeReranker) ScorePairs(_ context.Context, _ string, documents []string) ([]float64, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.scores[:len(documents)], nil
}

func (f *fakeReranker) ModelName() string { return "fake-reranker" }

// verifies reranking reorders by cross-encoder score and truncates to topK
func TestRerankCandidates(t *testing.T) {
	candidates := []Candidate{
		{Content: "iPhone 15", Similarity: 0.95},
		{Content: "iPad Air", Similarity: 0.90},
		{Content: "MacBook Air M3", Similarity: 0.85},
		{Content: "iPhone 12", Similarity: 0.80},
	}

	reranker := &fakeReranker{scores: []float64{0.2, 0.9, 0.5, 0.7}}

	reranked, err := rerankCandidates(context.Background(), reranker, "máy tính bảng", candidates, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(reranked) != 3 {
		t.Fatalf("Expected 3 results after topK, got %d", len(reranked))
	}

	// descending by rerank score, not by similarity
	if reranked[0].Content != "iPad Air" || reranked[1].Content != "iPhone 12" || reranked[2].Content != "MacBook Air M3" {
		t.Errorf("Wrong order: %v, %v, %v", reranked[0].Content, reranked[1].Content, reranked[2].Content)
	}

	for i := range len(reranked) - 1 {
		if reranked[i].RerankScore < reranked[i+1].RerankScore {
			t.Errorf("Results not sorted correctly: %f < %f at position %d",
				reranked[i].RerankScore, reranked[i+1].RerankScore, i)
		}
	}
}

// equal scores keep vector-search order
func TestRerankCandidatesStable(t *testing.T) {
	candidates := []Candidate{
		{Content: "a", Similarity: 0.9},
		{Content: "b", Similarity: 0.8},
		{Content: "c", Similarity: 0.7},
	}

	reranker := &fakeReranker{scores: []float64{0.5, 0.5, 0.5}}

	reranked, err := rerankCandidates(context.Background(), reranker, "q", candidates, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if reranked[0].Content != "a" || reranked[1].Content != "b" || reranked[2].Content != "c" {
		t.Errorf("Equal scores broke input order: %v, %v, %v",
			reranked[0].Content, reranked[1].Content, reranked[2].Content)
	}
}

// no candidates means the reranker is never called
func TestRerankCandidatesEmpty(t *testing.T) {
	reranker := &fakeReranker{}

	reranked, err := rerankCandidates(context.Background(), reranker, "q", nil, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(reranked) != 0 {
		t.Errorf("Expected no results, got %d", len(reranked))
	}

	if reranker.calls != 0 {
		t.Errorf("Reranker called %d times for empty input", reranker.calls)
	}
}

// without a reranker the stage degrades to similarity-ordered truncation
func TestRerankCandidatesNilReranker(t *testing.T) {
	candidates := []Candidate{
		{Content: "a", Similarity: 0.9},
		{Content: "b", Similarity: 0.8},
		{Content: "c", Similarity: 0.7},
		{Content: "d", Similarity: 0.6},
	}

	reranked, err := rerankCandidates(context.Background(), nil, "q", candidates, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(reranked) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(reranked))
	}

	if reranked[0].Content != "a" || reranked[1].Content != "b" {
		t.Errorf("Wrong order without reranker: %v, %v", reranked[0].Content, reranked[1].Content)
	}
}

func TestRerankCandidatesError(t *testing.T) {
	candidates := []Candidate{{Content: "a", Similarity: 0.9}}
	reranker := &fakeReranker{err: errors.New("rerank service down")}

	if _, err := rerankCandidates(context.Background(), reranker, "q", candidates, 3); err == nil {
		t.Fatal("Expected an error when reranker fails")
	}
}
