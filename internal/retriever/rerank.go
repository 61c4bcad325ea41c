package retriever

import (
	"context"
	"fmt"
	"sort"

	"codeberg.org/techworld/server/internal/llm"
)

// rerankCandidates scores every candidate against the query with the
// cross-encoder and keeps the topK best. Sorting is stable so candidates
// with equal scores keep their vector-search order. With no reranker
// configured the stage degrades to truncation.
func rerankCandidates(ctx context.Context, reranker llm.Reranker, query string, candidates []Candidate, topK int) ([]RerankedCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	reranked := make([]RerankedCandidate, len(candidates))
	for i, cand := range candidates {
		reranked[i] = RerankedCandidate{Candidate: cand, RerankScore: cand.Similarity}
	}

	if reranker != nil {
		documents := make([]string, len(candidates))
		for i, cand := range candidates {
			documents[i] = cand.Content
		}

		scores, err := reranker.ScorePairs(ctx, query, documents)
		if err != nil {
			return nil, fmt.Errorf("failed to rerank candidates: %w", err)
		}

		if len(scores) != len(candidates) {
			return nil, fmt.Errorf("reranker returned %d scores for %d candidates", len(scores), len(candidates))
		}

		for i, score := range scores {
			reranked[i].RerankScore = score
		}
	}

	sort.SliceStable(reranked, func(i, j int) bool {
		return reranked[i].RerankScore > reranked[j].RerankScore
	})

	if len(reranked) > topK {
		reranked = reranked[:topK]
	}

	return reranked, nil
}
