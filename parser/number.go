package parser

import (
	"github.com/rivet-scheme/rivet/numeric"
	"github.com/rivet-scheme/rivet/value"
)

// numericParseLiteral folds a raw INTEGER-token literal (which, despite
// the token name, covers decimal and exponent syntax too, per the
// grammar) into the numeric tower and wraps it as a Value.
func numericParseLiteral(text string) (value.Value, bool) {
	n, ok := numeric.ParseLiteral(text)
	if !ok {
		return value.Value{}, false
	}
	return value.Number(n), true
}
