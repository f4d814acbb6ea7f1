package builtin

import (
	"github.com/rivet-scheme/rivet/numeric"
	"github.com/rivet-scheme/rivet/value"
)

// mustIndex converts an exact integer argument to a Go int, used by the
// procedures the original expresses with a native int parameter (vector
// and string indices, sizes, list-tail/list-ref counts).
func mustIndex(v value.Value) (int, error) {
	i, err := v.Num().IntegerValueExact()
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, errorf("index out of range: %s", i.String())
	}
	return int(i.Int64()), nil
}

func fromInt(n int) value.Value {
	return value.Number(numeric.FromInt64(int64(n)))
}
