package charstats

import (
	"math"
)

// Epsilon is added to every probability before taking its logarithm, and to
// the marginal before dividing by it.  It is applied to non-zero
// probabilities too, so results carry a small consistent downward bias.
const Epsilon = 1e-10

// Entropy returns the Shannon entropy, in bits, of d with each probability
// estimated as count/total.
func Entropy(d Distribution, total uint64) (float64, error) {
	if total == 0 {
		return 0, &DegenerateError{Op: "entropy"}
	}

	denom := float64(total)
	var h float64
	d.Each(func(_ Symbol, count uint64) {
		p := float64(count) / denom
		h -= p * math.Log2(p+Epsilon)
	})
	return h, nil
}

// ConditionalEntropy returns H(Y|X) in bits for the pair distribution pxy,
// where X is the first symbol of each pair.  The joint probability is
// count/totalPairs and the marginal of X is px.Count(X)/(totalPairs+1).
//
// The marginal denominator is one larger than the joint denominator.  For a
// single pass over a text, totalPairs+1 is the number of characters.
//
func ConditionalEntropy(pxy *PairDistribution, px Distribution, totalPairs uint64) (float64, error) {
	if totalPairs == 0 {
		return 0, &DegenerateError{Op: "conditional entropy"}
	}

	jointDenom := float64(totalPairs)
	marginalDenom := float64(totalPairs + 1)
	var h float64
	pxy.Each(func(p Pair, count uint64) {
		pXY := float64(count) / jointDenom
		pX := float64(px.Count(p.X)) / marginalDenom
		h -= pXY * math.Log2(pXY/(pX+Epsilon)+Epsilon)
	})
	return h, nil
}

// MutualInformation returns I(X;Y) = H(Y) - H(Y|X).
func MutualInformation(hY, hYGivenX float64) float64 {
	return hY - hYGivenX
}
