// Package parser turns raw SQL text into structured Statement values.
//
// The parser supports a restricted subset of SQL consisting of four
// statements:
//
//	SELECT <cols|*> FROM <table> [WHERE <expr>] [ORDER BY <field> [ASC|DESC]] [LIMIT <n>]
//	INSERT INTO <table> (<col,...>) VALUES (<val,...>)
//	UPDATE <table> SET <field=val,...> [WHERE <expr>]
//	DELETE FROM <table> [WHERE <expr>]
//
// There is no grammar compiler. Each statement parser anchors on its
// command keyword and locates the clause keywords (FROM, WHERE, SET,
// VALUES, ORDER BY, LIMIT) in their fixed grammatical order with a
// quote-aware scan, then slices the text between them. Comma-separated
// lists that may contain quoted values (INSERT columns and values, SET
// assignments, IN lists) go through SplitQuoted, which treats quoted
// spans as atomic.
//
// WHERE clauses are not parsed here. The filter expression is carried
// as an unparsed substring on Statement.Where and evaluated per record
// by the eval package.
//
// Error model:
//   - UnsupportedStatementError: the leading command word is not one
//     of SELECT, INSERT, UPDATE, DELETE.
//   - MalformedStatementError: the command matched but the clauses did
//     not fit the expected shape (for example a non-numeric LIMIT).
//
// Usage Example:
//
//	p := parser.New()
//
//	stmt, err := p.Parse(`SELECT name FROM users WHERE age > 30 LIMIT 10`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// stmt.Type == parser.StatementSelect
//	// stmt.Columns == []string{"name"}
//	// stmt.Where == "age > 30"
//	// stmt.Limit == 10
package parser
