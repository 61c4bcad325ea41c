package retriever

import (
	"errors"
	"testing"
	"unicode/utf8"
)

var errFake = errors.New("fake failure")

func TestFilterByThreshold(t *testing.T) {
	candidates := []Candidate{
		{Content: "a", Similarity: 0.91},
		{Content: "b", Similarity: 0.70},
		{Content: "c", Similarity: 0.69},
		{Content: "d", Similarity: 0.85},
	}

	filtered := filterByThreshold(candidates, 0.7)

	if len(filtered) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(filtered))
	}

	// order preserved, boundary value kept
	want := []string{"a", "b", "d"}
	for i, content := range want {
		if filtered[i].Content != content {
			t.Errorf("Expected %q at position %d, got %q", content, i, filtered[i].Content)
		}
	}
}

func TestFilterByThresholdMonotonic(t *testing.T) {
	candidates := []Candidate{
		{Similarity: 0.95},
		{Similarity: 0.80},
		{Similarity: 0.65},
		{Similarity: 0.50},
	}

	// raising the threshold never admits more candidates
	prev := len(candidates) + 1
	for _, threshold := range []float64{0.0, 0.5, 0.7, 0.9, 1.0} {
		count := len(filterByThreshold(candidates, threshold))
		if count > prev {
			t.Errorf("Threshold %.2f admitted %d candidates, more than %d at a lower threshold", threshold, count, prev)
		}
		prev = count
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged string, got %q", got)
	}

	if got := truncate("a longer string", 8); got != "a longer..." {
		t.Errorf("Expected truncated string with ellipsis, got %q", got)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	query := "Điện thoại màu đen giá rẻ"

	got := truncate(query, 10)

	if !utf8.ValidString(got) {
		t.Errorf("Expected valid UTF-8, got %q", got)
	}

	if got != string([]rune(query)[:10])+"..." {
		t.Errorf("Expected truncation on rune boundary, got %q", got)
	}
}

func TestFoundSummary(t *testing.T) {
	if got := foundSummary(2); got != "Tìm thấy 2 sản phẩm dựa trên truy vấn của bạn." {
		t.Errorf("Unexpected summary: %q", got)
	}
}

func TestErrorResult(t *testing.T) {
	result := errorResult(errFake)

	if result.Products == nil || len(result.Products) != 0 {
		t.Errorf("Expected empty non-nil products, got %#v", result.Products)
	}

	if result.Summary != "Lỗi hệ thống: fake failure" {
		t.Errorf("Unexpected summary: %q", result.Summary)
	}
}
