package parser

import "strings"

// parseDelete extracts the clauses of
//
//	DELETE FROM <table> [WHERE <expr>]
func (p *Parser) parseDelete(sql string) (*Statement, error) {
	malformed := &MalformedStatementError{Statement: sql}

	fromStart, fromEnd := findKeyword(sql, "DELETE", "FROM")
	if fromStart != 0 {
		return nil, malformed
	}

	table, next := word(sql, fromEnd)
	if table == "" {
		return nil, malformed
	}

	stmt := &Statement{Type: StatementDelete, Table: table}

	rest := strings.TrimSpace(sql[next:])
	if rest == "" {
		return stmt, nil
	}

	whereStart, whereEnd := findKeyword(rest, "WHERE")
	if whereStart != 0 {
		return nil, malformed
	}
	stmt.Where = strings.TrimSpace(rest[whereEnd:])
	if stmt.Where == "" {
		return nil, malformed
	}

	return stmt, nil
}
