// Package builtin registers the native procedures every top-level
// environment starts with, then bootstraps the handful of library
// procedures that are more naturally written in Scheme itself. Grounded
// on Builtins.java, whose @Procedure-annotated methods this package
// mirrors one-for-one, plus the LIBRARY string it evaluates at init.
package builtin

import (
	"fmt"

	"github.com/rivet-scheme/rivet/value"
)

func errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// requireArgs enforces exact arity for procedures with no optional
// trailing arguments, matching the fixed-parameter @Procedure methods.
func requireArgs(name string, args []value.Value, n int) error {
	if len(args) != n {
		return errorf("%s: expected %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// requireAtLeast enforces a minimum arity, used for the varargs
// @Procedure methods whose first parameter is mandatory.
func requireAtLeast(name string, args []value.Value, n int) error {
	if len(args) < n {
		return errorf("%s: expected at least %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// requireRange enforces a min/max arity, used for the maxVaradicArgs=1
// @Procedure methods that accept exactly one optional trailing argument.
func requireRange(name string, args []value.Value, min, max int) error {
	if len(args) < min || len(args) > max {
		return errorf("%s: expected %d to %d argument(s), got %d", name, min, max, len(args))
	}
	return nil
}
