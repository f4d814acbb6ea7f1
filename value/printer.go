package value

import (
	"fmt"
	"strings"
	"unicode"
)

// Stringify renders v the way `write` (quote=true, strings wrapped in
// double quotes without re-escaping, chars in #\ notation) or `display`
// (quote=false, raw contents) would.
func Stringify(v Value, quote bool) string {
	switch v.Kind {
	case KindNull:
		return "()"
	case KindBoolean:
		if v.boolVal {
			return "#t"
		}
		return "#f"
	case KindCharacter:
		if !quote {
			return string(v.charVal)
		}
		switch v.charVal {
		case ' ':
			return "#\\space"
		case '\n':
			return "#\\newline"
		default:
			if unicode.IsLetter(v.charVal) || unicode.IsDigit(v.charVal) {
				return "#\\" + string(v.charVal)
			}
			return fmt.Sprintf("#\\U+%02x", v.charVal)
		}
	case KindNumber:
		return v.numVal.DisplayValue()
	case KindString:
		if !quote {
			return v.str.String()
		}
		// Not re-escaped: the printed form wraps the raw content in
		// quotes as-is, matching the grounding source's own toScheme().
		return fmt.Sprintf("\"%s\"", v.str.String())
	case KindSymbol:
		return v.sym.String()
	case KindPair:
		return pairToScheme(v, quote, -1)
	case KindVector:
		return vectorToScheme(v, quote)
	case KindProcedure:
		return procToScheme(v.proc)
	case KindPort:
		if v.port.IsInputPort() {
			return "#[input-port]"
		}
		return "#[output-port]"
	case KindPromise:
		return "#[promise]"
	case KindEof:
		return "#<EOF>"
	case KindVoid:
		return "#<void>"
	default:
		return "#[unknown]"
	}
}

func procToScheme(p *Procedure) string {
	switch p.Kind {
	case ProcBuiltin:
		return "#[bound procedure: " + p.Name + "]"
	case ProcClosure:
		return "#[closure]"
	default:
		return "#[continuation]"
	}
}

func vectorToScheme(v Value, quote bool) string {
	var sb strings.Builder
	sb.WriteString("#(")
	for i, item := range v.vec.Items {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(Stringify(item, quote))
	}
	sb.WriteString(")")
	return sb.String()
}

// pairToScheme mirrors the bounded-depth printer used by the original
// cons-cell type: count < 0 means unbounded (used by `write`/`display`
// at the top level), count == 0 immediately elides with "...".
func pairToScheme(v Value, quote bool, count int) string {
	if v.IsNull() {
		return "()"
	}

	var sb strings.Builder
	sb.WriteString("(")

	next := v
	i := count
	for {
		sb.WriteString(Stringify(next.Car(), quote))

		cdr := next.Cdr()
		if cdr.IsPair() {
			if i == 0 {
				break
			}
			if i > 0 {
				i--
			}
			sb.WriteString(" ")
			next = cdr
			continue
		}

		if cdr.IsNull() {
			break
		}

		sb.WriteString(" . ")
		sb.WriteString(Stringify(cdr, quote))
		break
	}

	if count == 0 {
		sb.WriteString(" ...")
	}

	sb.WriteString(")")
	return sb.String()
}

// String implements fmt.Stringer with `write` semantics, matching the
// unbounded, quoted printed form used for error messages.
func (v Value) String() string { return Stringify(v, true) }

const boundedPrintDepth = 20

// BoundedString renders a possibly-cyclic pair with a fixed print-depth
// cutoff, matching the printer's defense against runaway recursion on
// self-referential lists.
func BoundedString(v Value) string {
	if v.IsPair() {
		return pairToScheme(v, true, boundedPrintDepth)
	}
	return Stringify(v, true)
}
