package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelect(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		expectErr bool
		expected  *Statement
	}{
		{
			name: "select all",
			sql:  "SELECT * FROM users",
			expected: &Statement{
				Type:       StatementSelect,
				Table:      "users",
				AllColumns: true,
				Limit:      -1,
			},
		},
		{
			name: "column list",
			sql:  "SELECT id, name FROM users",
			expected: &Statement{
				Type:    StatementSelect,
				Table:   "users",
				Columns: []string{"id", "name"},
				Limit:   -1,
			},
		},
		{
			name: "where clause",
			sql:  "SELECT * FROM users WHERE age > 30 AND city = 'Berlin'",
			expected: &Statement{
				Type:       StatementSelect,
				Table:      "users",
				AllColumns: true,
				Where:      "age > 30 AND city = 'Berlin'",
				Limit:      -1,
			},
		},
		{
			name: "order by default ascending",
			sql:  "SELECT * FROM users ORDER BY name",
			expected: &Statement{
				Type:       StatementSelect,
				Table:      "users",
				AllColumns: true,
				OrderBy:    "name",
				Limit:      -1,
			},
		},
		{
			name: "order by descending with limit",
			sql:  "SELECT * FROM users ORDER BY age DESC LIMIT 5",
			expected: &Statement{
				Type:       StatementSelect,
				Table:      "users",
				AllColumns: true,
				OrderBy:    "age",
				Descending: true,
				Limit:      5,
			},
		},
		{
			name: "all clauses",
			sql:  "SELECT name FROM users WHERE age >= 18 ORDER BY name ASC LIMIT 10",
			expected: &Statement{
				Type:    StatementSelect,
				Table:   "users",
				Columns: []string{"name"},
				Where:   "age >= 18",
				OrderBy: "name",
				Limit:   10,
			},
		},
		{
			name: "case insensitive keywords",
			sql:  "select * from products where price < 10 limit 3",
			expected: &Statement{
				Type:       StatementSelect,
				Table:      "products",
				AllColumns: true,
				Where:      "price < 10",
				Limit:      3,
			},
		},
		{
			name: "quoted literal containing clause keyword",
			sql:  `SELECT * FROM notes WHERE text = 'no LIMIT here'`,
			expected: &Statement{
				Type:       StatementSelect,
				Table:      "notes",
				AllColumns: true,
				Where:      "text = 'no LIMIT here'",
				Limit:      -1,
			},
		},
		{name: "missing FROM", sql: "SELECT *", expectErr: true},
		{name: "missing columns", sql: "SELECT FROM users", expectErr: true},
		{name: "missing table", sql: "SELECT * FROM", expectErr: true},
		{name: "empty where", sql: "SELECT * FROM users WHERE", expectErr: true},
		{name: "non-numeric limit", sql: "SELECT * FROM users LIMIT abc", expectErr: true},
		{name: "negative limit", sql: "SELECT * FROM users LIMIT -1", expectErr: true},
		{name: "junk after table", sql: "SELECT * FROM users garbage", expectErr: true},
		{name: "clauses out of order", sql: "SELECT * FROM users LIMIT 1 WHERE a = 1", expectErr: true},
		{name: "bad order direction", sql: "SELECT * FROM users ORDER BY name SIDEWAYS", expectErr: true},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := p.Parse(tt.sql)
			if tt.expectErr {
				require.Error(t, err)
				var malformed *MalformedStatementError
				assert.True(t, errors.As(err, &malformed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stmt)
		})
	}
}

func TestParseInsert(t *testing.T) {
	p := New()

	stmt, err := p.Parse(`INSERT INTO users (id, name) VALUES (1, "Smith, John")`)
	require.NoError(t, err)
	assert.Equal(t, StatementInsert, stmt.Type)
	assert.Equal(t, "users", stmt.Table)
	assert.Equal(t, []string{"id", "name"}, stmt.InsertColumns)
	// Values stay raw; the executor strips quotes.
	assert.Equal(t, []string{"1", `"Smith, John"`}, stmt.InsertValues)

	stmt, err = p.Parse(`INSERT INTO t (a, b, c) VALUES ('x')`)
	require.NoError(t, err)
	assert.Len(t, stmt.InsertColumns, 3)
	assert.Len(t, stmt.InsertValues, 1, "extra columns zip to absent at execution")

	for _, sql := range []string{
		"INSERT INTO users VALUES (1)",    // missing column list
		"INSERT INTO users (id) VALUES 1", // missing value parens
		"INSERT INTO (id) VALUES (1)",     // missing table
		"INSERT users (id) VALUES (1)",    // missing INTO
		"INSERT INTO users (id)",          // missing VALUES
	} {
		_, err := p.Parse(sql)
		var malformed *MalformedStatementError
		require.Error(t, err, sql)
		assert.True(t, errors.As(err, &malformed), sql)
	}
}

func TestParseUpdate(t *testing.T) {
	p := New()

	stmt, err := p.Parse(`UPDATE users SET name = "Doe, Jane", age = 40 WHERE id = 1`)
	require.NoError(t, err)
	assert.Equal(t, StatementUpdate, stmt.Type)
	assert.Equal(t, "users", stmt.Table)
	assert.Equal(t, "id = 1", stmt.Where)
	assert.Equal(t, []Assignment{
		{Field: "name", RawValue: `"Doe, Jane"`},
		{Field: "age", RawValue: "40"},
	}, stmt.Assignments)

	// Only the first = splits; later ones belong to the value.
	stmt, err = p.Parse(`UPDATE cfg SET expr = "a=b"`)
	require.NoError(t, err)
	assert.Equal(t, []Assignment{{Field: "expr", RawValue: `"a=b"`}}, stmt.Assignments)
	assert.Empty(t, stmt.Where)

	for _, sql := range []string{
		"UPDATE users",                 // missing SET
		"UPDATE SET a = 1",             // missing table
		"UPDATE users SET",             // empty assignments
		"UPDATE users SET name",        // assignment without =
		"UPDATE users SET a = 1 WHERE", // empty where
		"UPDATE big table SET a = 1",   // table is not one word
	} {
		_, err := p.Parse(sql)
		var malformed *MalformedStatementError
		require.Error(t, err, sql)
		assert.True(t, errors.As(err, &malformed), sql)
	}
}

func TestParseDelete(t *testing.T) {
	p := New()

	stmt, err := p.Parse("DELETE FROM users")
	require.NoError(t, err)
	assert.Equal(t, StatementDelete, stmt.Type)
	assert.Equal(t, "users", stmt.Table)
	assert.Empty(t, stmt.Where)

	stmt, err = p.Parse("DELETE FROM users WHERE age < 18 OR banned = 'true'")
	require.NoError(t, err)
	assert.Equal(t, "age < 18 OR banned = 'true'", stmt.Where)

	for _, sql := range []string{
		"DELETE users",            // missing FROM
		"DELETE FROM",             // missing table
		"DELETE FROM users WHERE", // empty where
		"DELETE FROM users junk",  // trailing junk
	} {
		_, err := p.Parse(sql)
		var malformed *MalformedStatementError
		require.Error(t, err, sql)
		assert.True(t, errors.As(err, &malformed), sql)
	}
}

func TestParseUnsupported(t *testing.T) {
	p := New()

	for _, tt := range []struct{ sql, keyword string }{
		{"DROP TABLE users", "DROP"},
		{"CREATE TABLE users (id INT)", "CREATE"},
		{"TRUNCATE users", "TRUNCATE"},
		{"", ""},
	} {
		_, err := p.Parse(tt.sql)
		require.Error(t, err, tt.sql)

		var unsupported *UnsupportedStatementError
		require.True(t, errors.As(err, &unsupported), tt.sql)
		assert.Equal(t, tt.keyword, unsupported.Keyword)
	}
}
