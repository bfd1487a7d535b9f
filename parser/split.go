package parser

import "strings"

// SplitQuoted splits text on a delimiter character, treating quoted
// spans as atomic: a delimiter inside single or double quotes is
// literal, and a quote character inside the other quote type is
// literal too. Segments are trimmed of surrounding whitespace; a
// trailing segment is kept only when non-empty after trimming. An
// unterminated quote is not an error, the scan just ends inside it.
func SplitQuoted(text string, delim byte) []string {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	var quote byte

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\'' || c == '"':
			if !inQuotes {
				inQuotes = true
				quote = c
			} else if c == quote {
				inQuotes = false
			}
			cur.WriteByte(c)
		case c == delim && !inQuotes:
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}

	if last := strings.TrimSpace(cur.String()); last != "" {
		parts = append(parts, last)
	}
	return parts
}

// StripQuotes removes one layer of surrounding quotes when the string
// both starts and ends with the same quote character.
func StripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') ||
			(s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
