package parser

import "strings"

// parseUpdate extracts the clauses of
//
//	UPDATE <table> SET <field=val,...> [WHERE <expr>]
//
// The SET list is split quote-aware on commas, then each pair at its
// first = character, so commas and = inside quoted values survive.
func (p *Parser) parseUpdate(sql string) (*Statement, error) {
	malformed := &MalformedStatementError{Statement: sql}

	setStart, setEnd := findKeyword(sql, "SET")
	if setStart < 0 {
		return nil, malformed
	}

	table := strings.TrimSpace(sql[len("UPDATE"):setStart])
	if table == "" || strings.ContainsAny(table, " \t") {
		return nil, malformed
	}

	rest := sql[setEnd:]
	assigns := rest
	where := ""
	if whereStart, whereEnd := findKeyword(rest, "WHERE"); whereStart >= 0 {
		assigns = rest[:whereStart]
		where = strings.TrimSpace(rest[whereEnd:])
		if where == "" {
			return nil, malformed
		}
	}

	stmt := &Statement{Type: StatementUpdate, Table: table, Where: where}
	for _, pair := range SplitQuoted(assigns, ',') {
		eq := strings.IndexByte(pair, '=')
		if eq < 0 {
			return nil, malformed
		}
		field := strings.TrimSpace(pair[:eq])
		if field == "" {
			return nil, malformed
		}
		stmt.Assignments = append(stmt.Assignments, Assignment{
			Field:    field,
			RawValue: strings.TrimSpace(pair[eq+1:]),
		})
	}
	if len(stmt.Assignments) == 0 {
		return nil, malformed
	}

	return stmt, nil
}
