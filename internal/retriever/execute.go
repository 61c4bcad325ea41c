package retriever

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/techworld/server/internal/logger"
)

// ensureLimit appends a LIMIT clause when the statement has none,
// so a broad filter can never dump the whole table into the context
func ensureLimit(stmt string, rowCap int) string {
	if strings.Contains(strings.ToLower(stmt), "limit") {
		return stmt
	}
	return fmt.Sprintf("%s LIMIT %d", stmt, rowCap)
}

// wrapJSONB wraps a statement so every row comes back as a single jsonb
// column regardless of what the model chose to select
func wrapJSONB(stmt string) string {
	return fmt.Sprintf("SELECT to_jsonb(t) FROM (%s) AS t", stmt)
}

// executeStatements runs each statement in order. A statement that fails
// or returns nothing counts as zero rows; it never aborts the batch.
func (c *Client) executeStatements(ctx context.Context, statements []string) []map[string]any {
	var merged []map[string]any

	for i, stmt := range statements {
		stmt = ensureLimit(stmt, c.config.RowCap)

		result := statementResult{index: i, sql: stmt}
		result.rows, result.err = c.exec.QueryRows(ctx, wrapJSONB(stmt))

		if result.err != nil {
			logger.Warn("generated statement failed",
				"index", result.index,
				"sql", result.sql,
				"error", result.err.Error())
			continue
		}

		logger.Debug("generated statement executed",
			"index", result.index,
			"rows", len(result.rows))

		merged = append(merged, result.rows...)
	}

	return merged
}

// poolExecutor runs wrapped statements against the connection pool.
type poolExecutor struct {
	pool *pgxpool.Pool
}

func (e *poolExecutor) QueryRows(ctx context.Context, sql string) ([]map[string]any, error) {
	rows, err := e.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	defer rows.Close()

	var results []map[string]any

	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("failed to decode row: %w", err)
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}
