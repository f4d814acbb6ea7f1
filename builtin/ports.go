package builtin

import (
	"fmt"
	"io"

	"github.com/rivet-scheme/rivet/value"
)

// outputPort resolves the optional trailing port argument display,
// write, write-char, and newline all accept, defaulting to stdout the
// way R5RS's current-output-port default does.
func outputPort(args []value.Value, portArgIndex int, stdout value.Value) (io.Writer, error) {
	if len(args) <= portArgIndex {
		return stdout.PortValue().Writer, nil
	}
	p := args[portArgIndex]
	if !p.IsPort() || !p.PortValue().IsOutputPort() {
		return nil, errorf("expected an output port")
	}
	return p.PortValue().Writer, nil
}

func makeDisplay(stdout value.Value) value.BuiltinFunc {
	return func(_ interface{}, args []value.Value) (value.Value, error) {
		if err := requireRange("display", args, 1, 2); err != nil {
			return value.Value{}, err
		}
		w, err := outputPort(args, 1, stdout)
		if err != nil {
			return value.Value{}, err
		}
		fmt.Fprint(w, value.Stringify(args[0], false))
		return value.Void(), nil
	}
}

func makeWrite(stdout value.Value) value.BuiltinFunc {
	return func(_ interface{}, args []value.Value) (value.Value, error) {
		if err := requireRange("write", args, 1, 2); err != nil {
			return value.Value{}, err
		}
		w, err := outputPort(args, 1, stdout)
		if err != nil {
			return value.Value{}, err
		}
		fmt.Fprint(w, value.Stringify(args[0], true))
		return value.Void(), nil
	}
}

func makeWriteChar(stdout value.Value) value.BuiltinFunc {
	return func(_ interface{}, args []value.Value) (value.Value, error) {
		if err := requireRange("write-char", args, 1, 2); err != nil {
			return value.Value{}, err
		}
		w, err := outputPort(args, 1, stdout)
		if err != nil {
			return value.Value{}, err
		}
		fmt.Fprint(w, string(args[0].Char()))
		return value.Void(), nil
	}
}

func makeNewline(stdout value.Value) value.BuiltinFunc {
	return func(_ interface{}, args []value.Value) (value.Value, error) {
		if err := requireRange("newline", args, 0, 1); err != nil {
			return value.Value{}, err
		}
		w, err := outputPort(args, 0, stdout)
		if err != nil {
			return value.Value{}, err
		}
		fmt.Fprintln(w)
		return value.Void(), nil
	}
}

func makeCurrentPort(port value.Value) value.BuiltinFunc {
	return func(_ interface{}, args []value.Value) (value.Value, error) {
		return port, nil
	}
}
