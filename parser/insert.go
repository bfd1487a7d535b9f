package parser

import "strings"

// parseInsert extracts the clauses of
//
//	INSERT INTO <table> (<col,...>) VALUES (<val,...>)
//
// Values stay raw here; quotes come off when the record is built.
func (p *Parser) parseInsert(sql string) (*Statement, error) {
	malformed := &MalformedStatementError{Statement: sql}

	intoStart, intoEnd := findKeyword(sql, "INSERT", "INTO")
	if intoStart != 0 {
		return nil, malformed
	}

	table, next := word(sql, intoEnd)
	if table == "" {
		return nil, malformed
	}

	rest := sql[next:]
	valuesStart, valuesEnd := findKeyword(rest, "VALUES")
	if valuesStart < 0 {
		return nil, malformed
	}

	colsInner, ok := stripParens(strings.TrimSpace(rest[:valuesStart]))
	if !ok {
		return nil, malformed
	}
	valsInner, ok := stripParens(strings.TrimSpace(rest[valuesEnd:]))
	if !ok {
		return nil, malformed
	}

	cols := SplitQuoted(colsInner, ',')
	if len(cols) == 0 {
		return nil, malformed
	}

	return &Statement{
		Type:          StatementInsert,
		Table:         table,
		InsertColumns: cols,
		InsertValues:  SplitQuoted(valsInner, ','),
	}, nil
}

// stripParens removes a required outer pair of parentheses.
func stripParens(s string) (string, bool) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return "", false
	}
	return s[1 : len(s)-1], true
}
