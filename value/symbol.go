package value

import (
	"fmt"
	"strings"
	"sync"
)

// Symbol is interned by lowercased name for ordinary symbols; uninterned
// symbols (produced by gensym) carry a unique identity that is never
// folded into the table and only ever equal to themselves.
type Symbol struct {
	Name       string
	Uninterned bool
}

var (
	symbolTable   sync.Map // string -> *Symbol
	uninternedSeq int
	uninternedMu  sync.Mutex
)

// Intern returns the process-wide Symbol for name, case-folding to
// lowercase the way source-level identifiers are folded by the reader.
func Intern(name string) *Symbol {
	key := strings.ToLower(name)
	if s, ok := symbolTable.Load(key); ok {
		return s.(*Symbol)
	}
	s := &Symbol{Name: key}
	actual, _ := symbolTable.LoadOrStore(key, s)
	return actual.(*Symbol)
}

// Unique creates a fresh, never-interned symbol with the given prefix,
// backing gensym.
func Unique(prefix string) *Symbol {
	uninternedMu.Lock()
	uninternedSeq++
	n := uninternedSeq
	uninternedMu.Unlock()
	return &Symbol{Name: fmt.Sprintf("%s%d", prefix, n), Uninterned: true}
}

func Sym(s *Symbol) Value { return Value{Kind: KindSymbol, sym: s, immutable: true} }

// SymbolOf interns name and wraps it as a Value.
func SymbolOf(name string) Value { return Sym(Intern(name)) }

func (s *Symbol) String() string {
	if s.Uninterned {
		return fmt.Sprintf("#<uninterned-symbol %s>", s.Name)
	}
	return s.Name
}

// Equal compares by identity for uninterned symbols and by name otherwise,
// mirroring SSymbol's equals(): identity first, then interned symbols
// compare by name (which for interned symbols coincides with identity
// since the table is process-wide).
func (s *Symbol) Equal(other *Symbol) bool {
	if s == other {
		return true
	}
	if s.Uninterned || other.Uninterned {
		return false
	}
	return s.Name == other.Name
}

var (
	QuoteSym           = Intern("quote")
	QuasiquoteSym      = Intern("quasiquote")
	UnquoteSym         = Intern("unquote")
	UnquoteSplicingSym = Intern("unquote-splicing")
	ElseSym            = Intern("else")
	ArrowSym           = Intern("=>")
)
