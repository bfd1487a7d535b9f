// Package web is a minimal HTTP front end for the database.
//
// It exposes a single endpoint, POST /query, that accepts a JSON body
// of the form {"sql": "SELECT * FROM users"} and returns the result as
// JSON. SELECT responds with the projected rows in field order, INSERT
// with the inserted row, UPDATE with the touched count, and DELETE
// with a bare acknowledgment. Parse errors map to 400, storage
// failures to 500.
package web
