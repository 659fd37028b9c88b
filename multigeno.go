package bestgeno

import (
	"gonum.org/v1/gonum/floats"
)

// MultiGeno is a multiallelic genotype: the number of copies of each allele,
// and the product of the per-allele probabilities of those copy numbers.
type MultiGeno struct {
	Copies []int
	Prob   float64
}

// Resolved reports whether some composition had a positive probability. When
// none did, Copies is left at all zeros and does not sum to the number of
// copies that were requested.
func (g MultiGeno) Resolved() bool {
	return g.Prob > 0
}

// Sum is the total number of allele copies in the genotype.
func (g MultiGeno) Sum() int {
	n := 0
	for _, c := range g.Copies {
		n += c
	}

	return n
}

// BestMultiGeno finds the most probable way of splitting choose allele copies
// among nalleles alleles for one taxon at one locus. probs is the 2D
// (copy number, allele) table for that taxon, ploidy+1 copy numbers per allele
// with copy number varying fastest, where probs[c, a] is the probability that
// allele a is present in c copies. Alleles are treated as independent, so a
// genotype's probability is the product over alleles.
//
// Call it with choose == ploidy. The search recurses on the first allele's
// copy number and is exhaustive; ties go to the smaller copy number of the
// earlier allele. There is no memoization, which is fine for the ploidies
// (roughly 8 or less) and allele counts seen in practice.
func BestMultiGeno(probs []float64, ploidy, nalleles, choose int) MultiGeno {
	if nalleles < 1 {
		return MultiGeno{}
	}

	ngen := ploidy + 1
	out := MultiGeno{Copies: make([]int, nalleles)}

	switch {
	case nalleles == 1:
		// The last allele takes whatever is left.
		out.Copies[0] = choose
		out.Prob = probs[locusIndex(ngen, choose, 0)]

	case choose == 0:
		zeros := make([]float64, nalleles)
		for a := range zeros {
			zeros[a] = probs[locusIndex(ngen, 0, a)]
		}
		out.Prob = floats.Prod(zeros)

	default:
		rest := probs[locusIndex(ngen, 0, 1):]
		for i := 0; i <= choose; i++ {
			sub := BestMultiGeno(rest, ploidy, nalleles-1, choose-i)
			p := probs[locusIndex(ngen, i, 0)] * sub.Prob
			if p > out.Prob {
				out.Prob = p
				out.Copies[0] = i
				copy(out.Copies[1:], sub.Copies)
			}
		}
	}

	return out
}
