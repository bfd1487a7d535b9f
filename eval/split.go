package eval

import "strings"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// escapedAt reports whether the character at i is preceded by a
// backslash.
func escapedAt(s string, i int) bool {
	return i > 0 && s[i-1] == '\\'
}

// SplitLogical splits a boolean expression into its top-level terms on
// a logical operator word, "AND" or "OR". The operator splits only
// when it sits at parenthesis depth zero, outside quoted spans, and is
// surrounded by whitespace. Backslash-escaped quote characters do not
// toggle the quote state, and unbalanced parentheses are tolerated
// rather than rejected. An expression with no operator occurrence
// yields a single-element result holding the trimmed expression.
func SplitLogical(expr, operator string) []string {
	var terms []string
	var cur strings.Builder
	inQuotes := false
	var quote byte
	depth := 0

	for i := 0; i < len(expr); {
		c := expr[i]

		if inQuotes {
			if c == quote && !escapedAt(expr, i) {
				inQuotes = false
			}
			cur.WriteByte(c)
			i++
			continue
		}

		switch c {
		case '\'', '"':
			if !escapedAt(expr, i) {
				inQuotes = true
				quote = c
			}
		case '(':
			depth++
		case ')':
			depth--
		}

		if depth == 0 && operatorAt(expr, i, operator) {
			terms = append(terms, strings.TrimSpace(cur.String()))
			cur.Reset()
			i += len(operator)
			for i < len(expr) && isSpace(expr[i]) {
				i++
			}
			continue
		}

		cur.WriteByte(c)
		i++
	}

	terms = append(terms, strings.TrimSpace(cur.String()))
	return terms
}

// operatorAt reports whether the operator word occurs at offset i with
// whitespace on both sides.
func operatorAt(s string, i int, op string) bool {
	if i == 0 || !isSpace(s[i-1]) {
		return false
	}
	end := i + len(op)
	if end >= len(s) || !isSpace(s[end]) {
		return false
	}
	return strings.EqualFold(s[i:end], op)
}
