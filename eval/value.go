package eval

import (
	"fmt"
	"strconv"
)

// FormatValue stringifies a record value for comparison. Absent fields
// (nil) stringify to the empty string; numbers drop trailing zeros so
// float64(1) prints as "1".
func FormatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// ToNumber coerces a record value to a float64: numbers pass through
// and numeric-looking strings parse. Anything else reports false.
func ToNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// looseEqual compares a record value against a literal with type
// coercion: when both sides parse as numbers they compare numerically,
// otherwise as strings.
func looseEqual(v interface{}, literal string) bool {
	if fv, ok := ToNumber(v); ok {
		if fl, err := strconv.ParseFloat(literal, 64); err == nil {
			return fv == fl
		}
	}
	return FormatValue(v) == literal
}
