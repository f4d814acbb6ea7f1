package value

// SString is a mutable Scheme string, backed by a rune slice so
// string-set!/string-fill! can mutate a character in place.
type SString struct {
	Runes []rune
}

func NewString(s string) Value {
	return Value{Kind: KindString, str: &SString{Runes: []rune(s)}}
}

func NewMutableString(runes []rune) Value {
	return Value{Kind: KindString, str: &SString{Runes: runes}}
}

func (s *SString) String() string { return string(s.Runes) }
func (s *SString) Len() int       { return len(s.Runes) }
