package eval

import (
	"regexp"
	"strconv"
	"strings"

	"flatdb/parser"
	"flatdb/storage"
)

// Condition evaluates one leaf comparison of the form
//
//	<field> <op> <value>
//
// against a record, where op is =, >, <, >=, <=, LIKE or IN. Text that
// does not fit this shape evaluates to false, never to an error.
func Condition(cond string, rec storage.Record) bool {
	field, op, value, ok := splitCondition(strings.TrimSpace(cond))
	if !ok {
		return false
	}

	fv, _ := rec.Get(field)

	switch op {
	case "=":
		return looseEqual(fv, parser.StripQuotes(value))
	case ">", "<", ">=", "<=":
		return compareNumeric(fv, value, op)
	case "LIKE":
		return likeMatch(parser.StripQuotes(value), FormatValue(fv))
	case "IN":
		return inList(value, FormatValue(fv))
	}
	return false
}

// splitCondition locates the comparison operator outside quoted spans
// and slices the condition into field, operator and raw value token.
func splitCondition(s string) (field, op, value string, ok bool) {
	inQuotes := false
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuotes {
			if c == quote {
				inQuotes = false
			}
			continue
		}
		switch c {
		case '\'', '"':
			inQuotes = true
			quote = c
			continue
		case '>', '<':
			end := i + 1
			op = string(c)
			if end < len(s) && s[end] == '=' {
				op += "="
				end++
			}
			return sliceCondition(s, i, end, op)
		case '=':
			return sliceCondition(s, i, i+1, "=")
		}
		if end, w := wordOperatorAt(s, i); w != "" {
			return sliceCondition(s, i, end, w)
		}
	}
	return "", "", "", false
}

// wordOperatorAt matches LIKE or IN at offset i, case-insensitively
// and on word boundaries.
func wordOperatorAt(s string, i int) (int, string) {
	if i > 0 && isWordByte(s[i-1]) {
		return 0, ""
	}
	for _, w := range []string{"LIKE", "IN"} {
		end := i + len(w)
		if end > len(s) || !strings.EqualFold(s[i:end], w) {
			continue
		}
		if end < len(s) && isWordByte(s[end]) {
			continue
		}
		return end, w
	}
	return 0, ""
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}

// sliceCondition validates the field before the operator and extracts
// the value token after it.
func sliceCondition(s string, opStart, opEnd int, op string) (string, string, string, bool) {
	field := strings.TrimSpace(s[:opStart])
	if field == "" {
		return "", "", "", false
	}
	for i := 0; i < len(field); i++ {
		if !isWordByte(field[i]) && field[i] != '.' {
			return "", "", "", false
		}
	}

	value, ok := valueToken(strings.TrimSpace(s[opEnd:]))
	if !ok {
		return "", "", "", false
	}
	return field, op, value, true
}

// valueToken takes the value from the remainder of a condition: a
// parenthesized list through its last closing paren, a quoted literal
// through its closing quote, or a bare token up to the first
// whitespace. A list or quoted literal must span the whole remainder;
// text after it means the condition does not fit the leaf shape.
func valueToken(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	switch s[0] {
	case '(':
		end := strings.LastIndexByte(s, ')')
		if end < 0 || strings.TrimSpace(s[end+1:]) != "" {
			return "", false
		}
		return s[:end+1], true
	case '\'', '"':
		end := strings.IndexByte(s[1:], s[0])
		if end < 0 || strings.TrimSpace(s[end+2:]) != "" {
			return "", false
		}
		return s[:end+2], true
	}
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			return s[:i], true
		}
	}
	return s, true
}

// compareNumeric parses both sides as floats; either side failing to
// parse makes the comparison false.
func compareNumeric(v interface{}, literal, op string) bool {
	fv, ok := ToNumber(v)
	if !ok {
		return false
	}
	fl, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return false
	}
	switch op {
	case ">":
		return fv > fl
	case "<":
		return fv < fl
	case ">=":
		return fv >= fl
	case "<=":
		return fv <= fl
	}
	return false
}

// likeMatch compiles a SQL LIKE pattern into an anchored,
// case-insensitive regular expression: % becomes "zero or more of any
// character", _ becomes "exactly one", and every other character is
// taken literally.
func likeMatch(pattern, value string) bool {
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

// inList matches the value against a parenthesized, comma-separated
// list by exact string comparison after quote stripping.
func inList(list, value string) bool {
	if len(list) < 2 || list[0] != '(' || list[len(list)-1] != ')' {
		return false
	}
	for _, item := range parser.SplitQuoted(list[1:len(list)-1], ',') {
		if parser.StripQuotes(item) == value {
			return true
		}
	}
	return false
}
