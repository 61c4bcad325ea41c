package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// reads a catalog export and returns normalized products.
// The export is a JSON array of records, one per product variant.
func LoadProducts(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product export: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse product export: %w", err)
	}

	products := make([]Product, 0, len(records))

	for i, record := range records {
		product, err := Normalize(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		products = append(products, product)
	}

	return products, nil
}

// converts a raw export record into a Product. Capacity fields
// come in as "1TB", "512GB" or plain numbers depending on the
// export tool, both normalize to gigabytes.
func Normalize(record map[string]any) (Product, error) {
	name := stringField(record, "name")
	if name == "" {
		return Product{}, fmt.Errorf("missing product name")
	}

	storage, err := parseCapacity(record["storage"])
	if err != nil {
		return Product{}, fmt.Errorf("invalid storage for %q: %w", name, err)
	}

	ram, err := parseCapacity(record["ram"])
	if err != nil {
		return Product{}, fmt.Errorf("invalid ram for %q: %w", name, err)
	}

	return Product{
		ProductID:   stringField(record, "product_id"),
		Name:        name,
		Type:        stringField(record, "type"),
		Color:       stringField(record, "color"),
		Image:       stringField(record, "image"),
		Price:       numberField(record, "price"),
		Stock:       stringField(record, "stock"),
		RAM:         ram,
		Storage:     storage,
		Description: stringField(record, "description"),
		Evaluate:    stringField(record, "evaluate"),
	}, nil
}

// Content returns the text that gets embedded for a product.
// The description carries the searchable Vietnamese copy, the
// name is the fallback for bare records.
func (p Product) Content() string {
	if p.Description != "" {
		return p.Description
	}

	return p.Name
}

// Metadata returns the jsonb payload stored next to the embedding.
// Keys match the products table columns so structured queries and
// vector hits describe products the same way.
func (p Product) Metadata() map[string]any {
	return map[string]any{
		"product_id":  p.ProductID,
		"name":        p.Name,
		"type":        p.Type,
		"color":       p.Color,
		"image":       p.Image,
		"price":       p.Price,
		"stock":       p.Stock,
		"ram":         p.RAM,
		"storage":     p.Storage,
		"description": p.Description,
		"evaluate":    p.Evaluate,
	}
}

func stringField(record map[string]any, key string) string {
	value, ok := record[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func numberField(record map[string]any, key string) float64 {
	value, ok := record[key]
	if !ok || value == nil {
		return 0
	}

	switch v := value.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}

		return parsed
	default:
		return 0
	}
}

// parses a capacity value into gigabytes: 512, "512", "512GB"
// and "1TB" all resolve. Missing values resolve to zero.
func parseCapacity(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		s := strings.ToUpper(strings.TrimSpace(v))
		if s == "" {
			return 0, nil
		}

		multiplier := 1

		switch {
		case strings.HasSuffix(s, "TB"):
			multiplier = 1024
			s = strings.TrimSpace(strings.TrimSuffix(s, "TB"))
		case strings.HasSuffix(s, "GB"):
			s = strings.TrimSpace(strings.TrimSuffix(s, "GB"))
		}

		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("unrecognized capacity %q", v)
		}

		return int(n * float64(multiplier)), nil
	default:
		return 0, fmt.Errorf("unrecognized capacity type %T", value)
	}
}
