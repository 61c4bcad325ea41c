package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CapacityStrings(t *testing.T) {
	record := map[string]any{
		"product_id": "12345",
		"name":       "MacBook Pro M4 Pro 16 inch 2025",
		"type":       "MacBook",
		"color":      "Đen",
		"price":      float64(52000000),
		"stock":      "instock",
		"ram":        "16GB",
		"storage":    "1TB",
	}

	product, err := Normalize(record)

	require.NoError(t, err)
	assert.Equal(t, 16, product.RAM)
	assert.Equal(t, 1024, product.Storage)
	assert.Equal(t, "12345", product.ProductID)
	assert.Equal(t, float64(52000000), product.Price)
}

func TestNormalize_NumericCapacity(t *testing.T) {
	record := map[string]any{
		"name":    "iPhone 12",
		"ram":     float64(4),
		"storage": float64(128),
	}

	product, err := Normalize(record)

	require.NoError(t, err)
	assert.Equal(t, 4, product.RAM)
	assert.Equal(t, 128, product.Storage)
}

func TestNormalize_NumericProductID(t *testing.T) {
	// exports sometimes carry numeric ids, they store as text
	record := map[string]any{
		"name":       "iPad Air (M3) 11 inch Wi-Fi",
		"product_id": float64(98765),
	}

	product, err := Normalize(record)

	require.NoError(t, err)
	assert.Equal(t, "98765", product.ProductID)
}

func TestNormalize_MissingName(t *testing.T) {
	_, err := Normalize(map[string]any{"type": "iPhone"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing product name")
}

func TestNormalize_BadCapacity(t *testing.T) {
	record := map[string]any{
		"name":    "iPhone 12",
		"storage": "một trăm",
	}

	_, err := Normalize(record)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage")
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		input any
		want  int
	}{
		{nil, 0},
		{"", 0},
		{"512", 512},
		{"512GB", 512},
		{"512 GB", 512},
		{"1TB", 1024},
		{"2tb", 2048},
		{float64(256), 256},
	}

	for _, tt := range tests {
		got, err := parseCapacity(tt.input)

		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %v", tt.input)
	}
}

func TestContent_FallsBackToName(t *testing.T) {
	withDescription := Product{Name: "iPhone 12", Description: "Điện thoại iPhone 12 chính hãng"}
	assert.Equal(t, "Điện thoại iPhone 12 chính hãng", withDescription.Content())

	bare := Product{Name: "iPhone 12"}
	assert.Equal(t, "iPhone 12", bare.Content())
}

func TestMetadata_MatchesTableColumns(t *testing.T) {
	product := Product{
		ProductID: "12345",
		Name:      "iPhone 12",
		Type:      "iPhone",
		RAM:       4,
		Storage:   128,
	}

	metadata := product.Metadata()

	assert.Equal(t, "12345", metadata["product_id"])
	assert.Equal(t, 4, metadata["ram"])
	assert.Equal(t, 128, metadata["storage"])

	for _, key := range []string{"name", "type", "color", "image", "price", "stock", "description", "evaluate"} {
		_, ok := metadata[key]
		assert.True(t, ok, "metadata missing %q", key)
	}
}

func TestLoadProducts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")

	payload := `[
		{"name": "iPhone 12", "type": "iPhone", "ram": "4GB", "storage": "128GB", "price": 12000000},
		{"name": "MacBook Air M2", "type": "MacBook", "ram": 8, "storage": "1TB", "price": 25000000}
	]`

	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	products, err := LoadProducts(path)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 128, products[0].Storage)
	assert.Equal(t, 1024, products[1].Storage)
	assert.Equal(t, 8, products[1].RAM)
}

func TestLoadProducts_MissingFile(t *testing.T) {
	_, err := LoadProducts(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}
