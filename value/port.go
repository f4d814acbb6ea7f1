package value

import "io"

// Port wraps either a reader or a writer end of an I/O stream. The
// interpreter only needs char-in/byte-out granularity, so bufio-style
// buffering is left to the caller that constructs a Port.
type Port struct {
	Name   string
	Reader io.RuneScanner
	Writer io.Writer
}

func NewInputPort(name string, r io.RuneScanner) Value {
	return Value{Kind: KindPort, port: &Port{Name: name, Reader: r}}
}

func NewOutputPort(name string, w io.Writer) Value {
	return Value{Kind: KindPort, port: &Port{Name: name, Writer: w}}
}

func (p *Port) IsInputPort() bool  { return p.Reader != nil }
func (p *Port) IsOutputPort() bool { return p.Writer != nil }
