package retriever

import (
	"strings"
	"testing"
)

func TestRenderSQLPrompt(t *testing.T) {
	query := "iPhone RAM 8GB giá dưới 10 triệu"

	prompt := renderSQLPrompt(query)

	// the query lands in its quoted slot at the end of the template
	if !strings.HasSuffix(prompt, `"`+query+`"`) {
		t.Errorf("Expected query in the trailing slot, got tail %q", prompt[len(prompt)-80:])
	}

	if strings.Contains(prompt, queryPlaceholder) {
		t.Error("Placeholder left unsubstituted")
	}

	// the few-shot ILIKE patterns keep their literal percent signs
	for _, pattern := range []string{"'%macbook%'", "'%iphone%'", "'%đen%'", "'%instock%'"} {
		if !strings.Contains(prompt, pattern) {
			t.Errorf("Expected pattern %s intact in prompt", pattern)
		}
	}

	// no formatting artifacts anywhere
	if strings.Contains(prompt, "%!") {
		t.Error("Prompt contains format artifacts")
	}
}

func TestRenderSQLPromptQueryWithPercent(t *testing.T) {
	prompt := renderSQLPrompt("giảm giá 50%")

	if !strings.Contains(prompt, `"giảm giá 50%"`) {
		t.Error("Expected percent in query to pass through unchanged")
	}
}
