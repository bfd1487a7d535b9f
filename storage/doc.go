// Package storage holds the row representation and the on-disk row
// store.
//
// Record is an insertion-ordered mapping from field name to value.
// Field order matters: SELECT projection and the JSON files on disk
// both preserve it, so Record is not a plain map. Values are the JSON
// scalar types (string, float64, bool, nil); there is no schema and
// any record may carry any fields.
//
// Store persists one JSON file per table under a data directory and
// always moves whole tables: Load returns every record (an empty table
// for a file that does not exist yet) and Save atomically replaces the
// table file via a temp file and rename. The engine above treats this
// load/save pair as its only storage contract.
package storage
