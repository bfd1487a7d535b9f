package eval

import (
	"strings"

	"flatdb/storage"
)

// Matches reports whether a record satisfies a filter expression. The
// expression is a disjunction of conjunctions: it is split on OR, each
// branch is split on AND, and each remaining term is evaluated as one
// leaf condition. OR binds looser than AND. A branch or term that
// cannot be reduced to a leaf condition evaluates to false rather than
// raising an error; callers depend on non-matching, not erroring.
func Matches(expr string, rec storage.Record) bool {
	for _, branch := range SplitLogical(expr, "OR") {
		if branchMatches(branch, rec) {
			return true
		}
	}
	return false
}

// branchMatches evaluates one OR branch: every AND term must hold.
func branchMatches(branch string, rec storage.Record) bool {
	// Unwrapping is a plain starts-with/ends-with check, not a
	// balanced-parenthesis check. A branch like `(a=1) AND (b=2)`
	// therefore mis-strips and fails closed; see the package docs.
	for strings.HasPrefix(branch, "(") && strings.HasSuffix(branch, ")") {
		branch = strings.TrimSpace(branch[1 : len(branch)-1])
	}

	for _, term := range SplitLogical(branch, "AND") {
		if strings.HasPrefix(term, "(") && strings.HasSuffix(term, ")") {
			term = strings.TrimSpace(term[1 : len(term)-1])
		}
		if !Condition(term, rec) {
			return false
		}
	}
	return true
}
