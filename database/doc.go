// Package database is the top-level entry point: it orchestrates the
// parser, executor and row store into a persistent query engine.
//
// Execute runs one statement end to end: parse, load the statement's
// table from disk, execute against the loaded rows, and save the table
// back if the statement changed it. Parsing happens strictly before
// any storage access, so a malformed INSERT can never touch the row
// sequence. Every call is synchronous and runs to completion; a
// process-local mutex serializes callers within the process, and the
// design assumes at most one process operates on a given table.
//
// Usage Example:
//
//	db, err := database.Open("./data")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	db.Execute(`INSERT INTO users (id, name) VALUES (1, "Alice")`)
//	res, _ := db.Execute(`SELECT * FROM users WHERE id = 1`)
//	// res.Rows holds the matching records
package database
