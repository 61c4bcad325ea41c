package agent

import "strings"

// filter phrases that signal an exact-specification query
var structuredHints = []string{
	"giá", "dưới", "trên", "triệu", "ram", "gb", "tb",
	"bộ nhớ", "còn hàng", "hết hàng", "màu",
}

// isStructuredQuery decides which retrieval path serves the question.
// Spec filters (price bounds, RAM sizes, colors, stock) go to SQL; open
// questions about needs and comparisons go to semantic search. The SQL
// path falls back to semantic on its own when it finds nothing.
func isStructuredQuery(query string) bool {
	lowered := strings.ToLower(query)

	for _, hint := range structuredHints {
		if strings.Contains(lowered, hint) {
			return true
		}
	}

	return strings.ContainsAny(lowered, "0123456789")
}
