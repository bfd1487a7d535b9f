// Package eval decides whether records match WHERE filter expressions.
//
// A filter expression is logically a disjunction of conjunctions of
// leaf conditions, with parenthesized sub-expressions. Evaluation
// composes three layers:
//
//   - SplitLogical splits an expression into top-level terms on AND or
//     OR, respecting quoting (including backslash-escaped quotes) and
//     parenthesis depth, so operators inside quoted values or nested
//     groups never split.
//   - Condition evaluates one leaf comparison (field = value, numeric
//     <, >, <=, >=, LIKE patterns, IN lists) against a record with
//     loose string/number coercion.
//   - Matches splits on OR, then on AND within each branch, stripping
//     redundant wrapping parentheses between the levels.
//
// The evaluator is deliberately lenient: malformed leaf conditions,
// unknown operators, and expressions it cannot reduce evaluate to
// false instead of raising errors. Parenthesis unwrapping is a plain
// starts-with/ends-with check rather than a balanced-pair check, and
// there is no precedence climbing beyond the two-level OR-of-ANDs
// shape, so filters needing three or more nesting levels of mixed
// AND/OR are outside the contract and simply fail to match. Both
// behaviors are documented compatibility constraints, not bugs to fix.
//
// Usage Example:
//
//	rec := storage.NewRecord()
//	rec.Set("city", "Berlin")
//	rec.Set("age", float64(35))
//
//	eval.Matches(`(city = "Berlin" AND age > 30) OR city = "Paris"`, rec) // true
//	eval.Matches(`name LIKE 'Al%'`, rec)                                 // false
package eval
