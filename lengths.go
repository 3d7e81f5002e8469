package charstats

import (
	"math"
)

// CodeLengths maps each Symbol of a Huffman tree to its depth, i.e. the bit
// length of its code.
type CodeLengths struct {
	depths  [NumSymbols]byte
	present [NumSymbols]bool
}

// Depth returns the code length of sym, or false if sym is not a leaf of the
// tree.
func (cl CodeLengths) Depth(sym Symbol) (int, bool) {
	if !sym.IsValid() || !cl.present[sym] {
		return 0, false
	}
	return int(cl.depths[sym]), true
}

// Kraft returns the sum of 2^-depth over every symbol in the table.  It is at
// most 1 for any prefix code.
func (cl CodeLengths) Kraft() float64 {
	var sum float64
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		if cl.present[sym] {
			sum += math.Ldexp(1, -int(cl.depths[sym]))
		}
	}
	return sum
}

// AverageLength returns the expected code length, in bits per symbol, of d
// encoded with this table: the sum of count times depth, divided by the total
// count of d.
//
// Every symbol with a non-zero count in d must have an entry in the table;
// otherwise a *MissingSymbolError naming the first such symbol is returned.
// An empty d yields a *DegenerateError.
//
func (cl CodeLengths) AverageLength(d Distribution) (float64, error) {
	var weighted, total uint64
	var missing *MissingSymbolError
	d.Each(func(sym Symbol, count uint64) {
		if missing != nil {
			return
		}
		depth, ok := cl.Depth(sym)
		if !ok {
			missing = &MissingSymbolError{Symbol: sym, Count: count}
			return
		}
		weighted += count * uint64(depth)
		total += count
	})
	if missing != nil {
		return 0, missing
	}
	if total == 0 {
		return 0, &DegenerateError{Op: "average length"}
	}
	return float64(weighted) / float64(total), nil
}

// AverageLength returns the expected code length of d under the code described
// by t.  Passing the distribution t was built from gives the tree's own
// average length; passing a different one cross-evaluates it.
func AverageLength(t *Tree, d Distribution) (float64, error) {
	return t.Lengths().AverageLength(d)
}
