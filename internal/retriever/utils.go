package retriever

import "fmt"

// foundSummary is the Vietnamese one-liner both lookup tools put in front
// of their product lists
func foundSummary(count int) string {
	return fmt.Sprintf("Tìm thấy %d sản phẩm dựa trên truy vấn của bạn.", count)
}

func errorResult(err error) *LookupResult {
	return &LookupResult{
		Products: []map[string]any{},
		Summary:  fmt.Sprintf("Lỗi hệ thống: %s", err),
	}
}

// filterByThreshold keeps candidates at or above the score threshold,
// preserving input order
func filterByThreshold(candidates []Candidate, threshold float64) []Candidate {
	filtered := candidates[:0:0]

	for _, candidate := range candidates {
		if candidate.Similarity < threshold {
			continue
		}

		filtered = append(filtered, candidate)
	}

	return filtered
}

// truncate shortens a string for log attributes, counting runes so a
// multi-byte Vietnamese character is never cut in half
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
