package executor

import (
	"fmt"
	"sort"

	"flatdb/eval"
	"flatdb/parser"
	"flatdb/storage"
)

// Executor executes statements against an in-memory table. It holds no
// state between calls; the caller owns the rows and their persistence.
type Executor struct {
	parser *parser.Parser
}

// New creates a new executor
func New() *Executor {
	return &Executor{parser: parser.New()}
}

// Execute parses a statement and runs it against the given rows. The
// input slice is never modified; mutating statements return the new
// table contents on the result.
func (e *Executor) Execute(sql string, rows []storage.Record) (*Result, error) {
	stmt, err := e.parser.Parse(sql)
	if err != nil {
		return nil, err
	}
	return e.Run(stmt, rows)
}

// Run executes an already-parsed statement.
func (e *Executor) Run(stmt *parser.Statement, rows []storage.Record) (*Result, error) {
	switch stmt.Type {
	case parser.StatementSelect:
		return e.runSelect(stmt, rows)
	case parser.StatementInsert:
		return e.runInsert(stmt, rows)
	case parser.StatementUpdate:
		return e.runUpdate(stmt, rows)
	case parser.StatementDelete:
		return e.runDelete(stmt, rows)
	default:
		return nil, fmt.Errorf("unknown statement type: %s", stmt.Type)
	}
}

func (e *Executor) runSelect(stmt *parser.Statement, rows []storage.Record) (*Result, error) {
	out := make([]storage.Record, 0, len(rows))
	for _, r := range rows {
		if stmt.Where == "" || eval.Matches(stmt.Where, r) {
			out = append(out, r)
		}
	}

	if stmt.OrderBy != "" {
		sortRows(out, stmt.OrderBy, stmt.Descending)
	}
	if stmt.Limit >= 0 && stmt.Limit < len(out) {
		out = out[:stmt.Limit]
	}
	if !stmt.AllColumns {
		projected := make([]storage.Record, len(out))
		for i, r := range out {
			projected[i] = r.Project(stmt.Columns)
		}
		out = projected
	}

	return &Result{Type: stmt.Type, Rows: out, Table: rows}, nil
}

func (e *Executor) runInsert(stmt *parser.Statement, rows []storage.Record) (*Result, error) {
	rec := storage.NewRecord()
	for i, col := range stmt.InsertColumns {
		// Columns beyond the value list stay absent; values beyond the
		// column list are dropped. Values are stored as raw strings.
		if i < len(stmt.InsertValues) {
			rec.Set(col, parser.StripQuotes(stmt.InsertValues[i]))
		}
	}

	table := make([]storage.Record, 0, len(rows)+1)
	table = append(table, rows...)
	table = append(table, rec)

	return &Result{Type: stmt.Type, Inserted: rec, Table: table, Mutated: true}, nil
}

func (e *Executor) runUpdate(stmt *parser.Statement, rows []storage.Record) (*Result, error) {
	count := 0
	table := make([]storage.Record, len(rows))
	for i, r := range rows {
		if stmt.Where != "" && !eval.Matches(stmt.Where, r) {
			table[i] = r
			continue
		}
		updated := r.Clone()
		for _, a := range stmt.Assignments {
			updated.Set(a.Field, parser.StripQuotes(a.RawValue))
		}
		table[i] = updated
		count++
	}

	return &Result{Type: stmt.Type, Updated: count, Table: table, Mutated: count > 0}, nil
}

func (e *Executor) runDelete(stmt *parser.Statement, rows []storage.Record) (*Result, error) {
	kept := make([]storage.Record, 0, len(rows))
	for _, r := range rows {
		if stmt.Where != "" && !eval.Matches(stmt.Where, r) {
			kept = append(kept, r)
		}
	}

	return &Result{Type: stmt.Type, Table: kept, Mutated: len(kept) != len(rows)}, nil
}

// sortRows orders rows by one field, numerically when both keys parse
// as numbers and lexicographically otherwise. The sort is stable, so
// equal keys keep their relative input order.
func sortRows(rows []storage.Record, field string, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, _ := rows[i].Get(field)
		b, _ := rows[j].Get(field)
		if descending {
			return lessValue(b, a)
		}
		return lessValue(a, b)
	})
}

func lessValue(a, b interface{}) bool {
	if fa, ok := eval.ToNumber(a); ok {
		if fb, ok := eval.ToNumber(b); ok {
			return fa < fb
		}
	}
	return eval.FormatValue(a) < eval.FormatValue(b)
}
