package executor

import (
	"fmt"
	"strings"

	"flatdb/eval"
	"flatdb/parser"
	"flatdb/storage"
)

// Result is the outcome of executing one statement.
type Result struct {
	Type parser.StatementType

	// Rows holds the projected output rows of a SELECT.
	Rows []storage.Record

	// Inserted is the record appended by an INSERT.
	Inserted storage.Record

	// Updated is the number of records an UPDATE touched.
	Updated int

	// Table is the complete table contents after the statement ran.
	// The caller persists it when Mutated is set.
	Table []storage.Record

	// Mutated reports whether Table differs from the input rows.
	Mutated bool
}

// String renders the result for display.
func (r *Result) String() string {
	switch r.Type {
	case parser.StatementSelect:
		if len(r.Rows) == 0 {
			return "No rows returned"
		}
		var b strings.Builder
		for _, row := range r.Rows {
			parts := make([]string, 0, row.Len())
			for _, k := range row.Keys() {
				v, _ := row.Get(k)
				parts = append(parts, fmt.Sprintf("%s=%s", k, eval.FormatValue(v)))
			}
			b.WriteString(strings.Join(parts, ", "))
			b.WriteByte('\n')
		}
		return strings.TrimSpace(b.String())
	case parser.StatementInsert:
		return "Inserted 1 row"
	case parser.StatementUpdate:
		return fmt.Sprintf("Updated %d row(s)", r.Updated)
	case parser.StatementDelete:
		return "OK"
	}
	return ""
}
