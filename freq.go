package charstats

import (
	"github.com/chronos-tachyon/assert"
)

// Distribution counts occurrences of each Symbol.  The zero value is an empty
// distribution.
type Distribution struct {
	counts [NumSymbols]uint64
}

// Add adds n occurrences of sym.
func (d *Distribution) Add(sym Symbol, n uint64) {
	assert.Assertf(sym.IsValid(), "invalid symbol %d", uint8(sym))
	d.counts[sym] += n
}

// Count returns the number of occurrences of sym.
func (d Distribution) Count(sym Symbol) uint64 {
	if !sym.IsValid() {
		return 0
	}
	return d.counts[sym]
}

// Total returns the sum of all counts.
func (d Distribution) Total() uint64 {
	var sum uint64
	for _, count := range d.counts {
		sum += count
	}
	return sum
}

// Len returns the number of distinct symbols with a non-zero count.
func (d Distribution) Len() int {
	var n int
	for _, count := range d.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Each calls fn for every symbol with a non-zero count, in alphabet order.
func (d Distribution) Each(fn func(sym Symbol, count uint64)) {
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		if count := d.counts[sym]; count != 0 {
			fn(sym, count)
		}
	}
}

// Pair is an ordered pair of adjacent symbols.
type Pair struct {
	X Symbol
	Y Symbol
}

// String returns the two-character representation of this Pair.
func (p Pair) String() string {
	return p.X.String() + p.Y.String()
}

// PairDistribution counts occurrences of each ordered Pair.  The zero value is
// an empty distribution.
type PairDistribution struct {
	counts [NumSymbols][NumSymbols]uint64
}

// Add adds n occurrences of p.
func (d *PairDistribution) Add(p Pair, n uint64) {
	assert.Assertf(p.X.IsValid() && p.Y.IsValid(), "invalid pair %d,%d", uint8(p.X), uint8(p.Y))
	d.counts[p.X][p.Y] += n
}

// Count returns the number of occurrences of p.
func (d *PairDistribution) Count(p Pair) uint64 {
	if !p.X.IsValid() || !p.Y.IsValid() {
		return 0
	}
	return d.counts[p.X][p.Y]
}

// Total returns the sum of all pair counts.
func (d *PairDistribution) Total() uint64 {
	var sum uint64
	for x := range d.counts {
		for _, count := range d.counts[x] {
			sum += count
		}
	}
	return sum
}

// Each calls fn for every pair with a non-zero count, ordered by first symbol
// and then by second symbol.
func (d *PairDistribution) Each(fn func(p Pair, count uint64)) {
	for x := Symbol(0); x < NumSymbols; x++ {
		for y := Symbol(0); y < NumSymbols; y++ {
			if count := d.counts[x][y]; count != 0 {
				fn(Pair{x, y}, count)
			}
		}
	}
}

// Marginal returns the distribution of the second symbol of each pair.
func (d *PairDistribution) Marginal() Distribution {
	var out Distribution
	d.Each(func(p Pair, count uint64) {
		out.counts[p.Y] += count
	})
	return out
}

// Tabulate counts each symbol in symbols.
func Tabulate(symbols []Symbol) Distribution {
	var d Distribution
	for _, sym := range symbols {
		d.Add(sym, 1)
	}
	return d
}

// TabulatePairs counts the len(symbols)-1 overlapping adjacent pairs in
// symbols.
func TabulatePairs(symbols []Symbol) *PairDistribution {
	d := new(PairDistribution)
	for i := 1; i < len(symbols); i++ {
		d.Add(Pair{symbols[i-1], symbols[i]}, 1)
	}
	return d
}
