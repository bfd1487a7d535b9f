package parser

import (
	"fmt"
	"strings"
)

// StatementType identifies which command a statement carries.
type StatementType string

const (
	StatementSelect StatementType = "SELECT"
	StatementInsert StatementType = "INSERT"
	StatementUpdate StatementType = "UPDATE"
	StatementDelete StatementType = "DELETE"
)

// Assignment is one field=value pair from an UPDATE SET clause. The
// value is kept as the raw token; quote stripping happens at execution.
type Assignment struct {
	Field    string
	RawValue string
}

// Statement is a parsed SQL statement. Each statement type fills only
// the fields relevant to it.
type Statement struct {
	Type  StatementType
	Table string

	// SELECT
	AllColumns bool
	Columns    []string
	OrderBy    string
	Descending bool
	Limit      int // -1 when no LIMIT clause is present

	// SELECT, UPDATE, DELETE: unparsed filter expression, "" when absent
	Where string

	// INSERT
	InsertColumns []string
	InsertValues  []string

	// UPDATE
	Assignments []Assignment
}

// UnsupportedStatementError reports a statement whose leading command
// word is not one of SELECT, INSERT, UPDATE, DELETE.
type UnsupportedStatementError struct {
	Keyword string
}

func (e *UnsupportedStatementError) Error() string {
	return fmt.Sprintf("Unsupported Statement: %s", e.Keyword)
}

// MalformedStatementError reports a statement whose command keyword
// matched but whose clauses did not fit the expected shape.
type MalformedStatementError struct {
	Statement string
}

func (e *MalformedStatementError) Error() string {
	return fmt.Sprintf("Malformed Statement: %s", e.Statement)
}

// Parser handles SQL parsing
type Parser struct{}

// New creates a new parser
func New() *Parser {
	return &Parser{}
}

// Parse parses a single SQL statement. The leading command word picks
// the statement parser; any other word is an UnsupportedStatementError.
func (p *Parser) Parse(sql string) (*Statement, error) {
	sql = strings.TrimSpace(sql)
	first := firstWord(sql)

	switch strings.ToUpper(first) {
	case "SELECT":
		return p.parseSelect(sql)
	case "INSERT":
		return p.parseInsert(sql)
	case "UPDATE":
		return p.parseUpdate(sql)
	case "DELETE":
		return p.parseDelete(sql)
	}

	return nil, &UnsupportedStatementError{Keyword: first}
}
