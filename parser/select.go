package parser

import (
	"strconv"
	"strings"
)

// parseSelect extracts the clauses of
//
//	SELECT <cols|*> FROM <table> [WHERE <expr>] [ORDER BY <field> [ASC|DESC]] [LIMIT <n>]
func (p *Parser) parseSelect(sql string) (*Statement, error) {
	malformed := &MalformedStatementError{Statement: sql}

	fromStart, fromEnd := findKeyword(sql, "FROM")
	if fromStart < 0 {
		return nil, malformed
	}

	stmt := &Statement{Type: StatementSelect, Limit: -1}

	cols := strings.TrimSpace(sql[len("SELECT"):fromStart])
	if cols == "" {
		return nil, malformed
	}
	if cols == "*" {
		stmt.AllColumns = true
	} else {
		// Column names are unquoted identifiers, a plain comma split
		// is enough here.
		for _, c := range strings.Split(cols, ",") {
			c = strings.TrimSpace(c)
			if c == "" {
				return nil, malformed
			}
			stmt.Columns = append(stmt.Columns, c)
		}
	}

	table, next := word(sql, fromEnd)
	if table == "" {
		return nil, malformed
	}
	stmt.Table = table

	tail := sql[next:]
	whereStart, whereEnd := findKeyword(tail, "WHERE")
	orderStart, orderEnd := findKeyword(tail, "ORDER", "BY")
	limitStart, limitEnd := findKeyword(tail, "LIMIT")

	// Nothing may sit between the table name and the first clause.
	first := len(tail)
	for _, s := range []int{whereStart, orderStart, limitStart} {
		if s >= 0 && s < first {
			first = s
		}
	}
	if strings.TrimSpace(tail[:first]) != "" {
		return nil, malformed
	}

	if whereStart >= 0 {
		if orderStart >= 0 && orderStart < whereStart ||
			limitStart >= 0 && limitStart < whereStart {
			return nil, malformed
		}
		end := len(tail)
		if orderStart >= 0 {
			end = orderStart
		} else if limitStart >= 0 {
			end = limitStart
		}
		stmt.Where = strings.TrimSpace(tail[whereEnd:end])
		if stmt.Where == "" {
			return nil, malformed
		}
	}

	if orderStart >= 0 {
		if limitStart >= 0 && limitStart < orderStart {
			return nil, malformed
		}
		end := len(tail)
		if limitStart >= 0 {
			end = limitStart
		}
		parts := strings.Fields(tail[orderEnd:end])
		switch len(parts) {
		case 1:
			stmt.OrderBy = parts[0]
		case 2:
			stmt.OrderBy = parts[0]
			switch strings.ToUpper(parts[1]) {
			case "ASC":
			case "DESC":
				stmt.Descending = true
			default:
				return nil, malformed
			}
		default:
			return nil, malformed
		}
	}

	if limitStart >= 0 {
		n, err := strconv.Atoi(strings.TrimSpace(tail[limitEnd:]))
		if err != nil || n < 0 {
			return nil, malformed
		}
		stmt.Limit = n
	}

	return stmt, nil
}
