package retriever

import "testing"

// verifies repeat names lose description/evaluate but keep their row
func TestDeduplicateByName(t *testing.T) {
	products := []map[string]any{
		{"name": "iPhone 15", "color": "đen", "description": "mô tả", "evaluate": "tốt"},
		{"name": "iPhone 15", "color": "trắng", "description": "mô tả", "evaluate": "tốt"},
		{"name": "MacBook Air M3", "color": "bạc", "description": "mô tả máy"},
	}

	result := deduplicateByName(products)

	if len(result) != 3 {
		t.Fatalf("Expected 3 products, got %d", len(result))
	}

	// first occurrence keeps its long-form fields
	if _, ok := result[0]["description"]; !ok {
		t.Error("First occurrence lost its description")
	}

	if _, ok := result[0]["evaluate"]; !ok {
		t.Error("First occurrence lost its evaluate")
	}

	// repeat occurrence is stripped but still present
	if _, ok := result[1]["description"]; ok {
		t.Error("Repeat occurrence kept its description")
	}

	if _, ok := result[1]["evaluate"]; ok {
		t.Error("Repeat occurrence kept its evaluate")
	}

	if result[1]["color"] != "trắng" {
		t.Errorf("Repeat occurrence lost other fields, got %v", result[1]["color"])
	}

	// different name untouched
	if _, ok := result[2]["description"]; !ok {
		t.Error("Distinct product lost its description")
	}
}

// verifies running dedup twice changes nothing
func TestDeduplicateByNameIdempotent(t *testing.T) {
	products := []map[string]any{
		{"name": "iPad Air", "description": "a"},
		{"name": "iPad Air", "color": "xanh"},
	}

	once := deduplicateByName(products)
	twice := deduplicateByName(once)

	if len(once) != len(twice) {
		t.Fatalf("Length changed on second pass: %d vs %d", len(once), len(twice))
	}

	for i := range once {
		if len(once[i]) != len(twice[i]) {
			t.Errorf("Product %d changed on second pass", i)
		}
	}
}

func TestDeduplicateByNameEmpty(t *testing.T) {
	result := deduplicateByName(nil)

	if result == nil {
		t.Fatal("Expected empty slice, got nil")
	}

	if len(result) != 0 {
		t.Errorf("Expected 0 products, got %d", len(result))
	}
}

// missing name fields group together rather than crash
func TestDeduplicateByNameMissingName(t *testing.T) {
	products := []map[string]any{
		{"color": "đen", "description": "a"},
		{"color": "trắng", "description": "b"},
	}

	result := deduplicateByName(products)

	if len(result) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(result))
	}

	if _, ok := result[1]["description"]; ok {
		t.Error("Second unnamed product should be treated as a repeat")
	}
}
