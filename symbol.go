package charstats

import (
	"fmt"
)

// Symbol represents one character of the normalized alphabet.  Values 0
// through 25 are the letters 'A' through 'Z', and Placeholder stands in for
// any run of non-letters.
type Symbol uint8

// Placeholder is the Symbol substituted for any run of non-letter characters.
const Placeholder = Symbol(26)

// NumSymbols is the size of the normalized alphabet.
const NumSymbols = 27

// PlaceholderByte is the character used to print Placeholder.
const PlaceholderByte = '$'

// SymbolOf maps a normalized character back to its Symbol.  Only 'A'..'Z' and
// PlaceholderByte are accepted.
func SymbolOf(ch byte) (Symbol, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return Symbol(ch - 'A'), true
	case ch == PlaceholderByte:
		return Placeholder, true
	default:
		return 0, false
	}
}

// Byte returns the printable character for this Symbol.
func (sym Symbol) Byte() byte {
	if sym == Placeholder {
		return PlaceholderByte
	}
	return 'A' + byte(sym)
}

// IsValid returns true iff sym is a member of the alphabet.
func (sym Symbol) IsValid() bool {
	return sym < NumSymbols
}

// String returns the string representation of this Symbol.
func (sym Symbol) String() string {
	if !sym.IsValid() {
		return fmt.Sprintf("Symbol(%d)", uint8(sym))
	}
	return string([]byte{sym.Byte()})
}

var _ fmt.Stringer = Symbol(0)

// ParseSymbols converts already-normalized text into Symbols.  It fails on the
// first character outside the alphabet.
func ParseSymbols(text string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(text))
	for i := 0; i < len(text); i++ {
		sym, ok := SymbolOf(text[i])
		if !ok {
			return nil, fmt.Errorf("invalid character %q at offset %d: not in normalized alphabet", text[i], i)
		}
		out = append(out, sym)
	}
	return out, nil
}

// FormatSymbols is the inverse of ParseSymbols.
func FormatSymbols(symbols []Symbol) string {
	buf := make([]byte, len(symbols))
	for i, sym := range symbols {
		buf[i] = sym.Byte()
	}
	return string(buf)
}
