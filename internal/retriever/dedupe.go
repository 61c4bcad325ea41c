package retriever

// deduplicateByName strips description and evaluate from repeat occurrences
// of the same product name. Records are never dropped: the same phone in two
// colors is two rows, but its long-form text only needs to appear once.
func deduplicateByName(products []map[string]any) []map[string]any {
	seen := make(map[string]bool)
	deduplicated := make([]map[string]any, 0, len(products))

	for _, product := range products {
		name, _ := product["name"].(string)

		if seen[name] {
			trimmed := make(map[string]any, len(product))
			for key, value := range product {
				if key == "description" || key == "evaluate" {
					continue
				}
				trimmed[key] = value
			}
			deduplicated = append(deduplicated, trimmed)
			continue
		}

		seen[name] = true
		deduplicated = append(deduplicated, product)
	}

	return deduplicated
}
