// Package executor runs parsed statements against an in-memory table.
//
// Execute is a pure function from (statement text, current rows) to a
// Result: it never retains state between calls and never modifies the
// input slice. SELECT applies WHERE filtering, ORDER BY with
// numeric-else-lexicographic coercion, LIMIT truncation, and column
// projection, in that order. INSERT appends one record built by
// positionally zipping the column and value lists. UPDATE shallow-
// merges the SET assignments into every matching record and counts
// them. DELETE produces the complementary kept-set.
//
// Mutating statements hand the new table contents back on
// Result.Table with Mutated set; persisting them is the caller's job
// (see the database package).
package executor
