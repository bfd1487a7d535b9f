package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQuoted(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "plain fields",
			text:     "a, b, c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "quoted comma is literal",
			text:     `1, "Smith, John"`,
			expected: []string{"1", `"Smith, John"`},
		},
		{
			name:     "single quotes",
			text:     `'a,b', 'c'`,
			expected: []string{`'a,b'`, `'c'`},
		},
		{
			name:     "single quote inside double quotes is literal",
			text:     `"it's fine", x`,
			expected: []string{`"it's fine"`, "x"},
		},
		{
			name:     "double quote inside single quotes is literal",
			text:     `'say "hi", bye', x`,
			expected: []string{`'say "hi", bye'`, "x"},
		},
		{
			name:     "intermediate empty segment kept",
			text:     "a,,b",
			expected: []string{"a", "", "b"},
		},
		{
			name:     "trailing empty segment dropped",
			text:     "a, b,",
			expected: []string{"a", "b"},
		},
		{
			name:     "unterminated quote keeps accumulated text",
			text:     `a, "b, c`,
			expected: []string{"a", `"b, c`},
		},
		{
			name:     "whitespace trimmed",
			text:     "  a  ,\tb ",
			expected: []string{"a", "b"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitQuoted(tt.text, ','))
		})
	}
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "Alice", StripQuotes(`"Alice"`))
	assert.Equal(t, "Alice", StripQuotes(`'Alice'`))
	assert.Equal(t, "Alice", StripQuotes("Alice"))
	assert.Equal(t, `"Alice'`, StripQuotes(`"Alice'`), "mismatched quotes stay")
	assert.Equal(t, `"a"`, StripQuotes(`""a""`), "only one layer comes off")
	assert.Equal(t, `"`, StripQuotes(`"`), "lone quote is too short to strip")
	assert.Equal(t, "", StripQuotes(`""`))
}
