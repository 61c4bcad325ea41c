package retriever

const (
	// match_products is the pgvector similarity function on the products
	// table, returning the embedded content alongside the product columns
	// packed into jsonb metadata
	matchProductsQuery = `
		SELECT
			content,
			metadata,
			similarity
		FROM match_products($1, $2)
	`
)
