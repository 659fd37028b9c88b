package bestgeno

import (
	"gonum.org/v1/gonum/mat"
)

// PloidyPick is the best ploidy hypothesis for one allele. Index is the
// 1-based row of the winning hypothesis. Missing is set when every statistic
// for the allele was missing.
type PloidyPick struct {
	Index   int
	Missing bool
}

// Code returns Index, or 0 when the pick is missing.
func (p PloidyPick) Code() int {
	if p.Missing {
		return 0
	}

	return p.Index
}

// BestPloidies picks, for each allele (column) of chisq, the ploidy hypothesis
// (row) with the smallest statistic. Missing statistics never win, but the
// first non-missing statistic displaces a missing one from the first row. Ties
// go to the earlier row.
func BestPloidies(chisq mat.Matrix) []PloidyPick {
	npld, nalleles := chisq.Dims()
	out := make([]PloidyPick, nalleles)

	for a := 0; a < nalleles; a++ {
		bestPld := 0
		best := chisq.At(0, a)
		for pld := 1; pld < npld; pld++ {
			x := chisq.At(pld, a)
			if x < best || (IsMissing(best) && !IsMissing(x)) {
				bestPld = pld
				best = x
			}
		}

		if IsMissing(best) {
			out[a] = PloidyPick{Missing: true}
			continue
		}
		out[a] = PloidyPick{Index: bestPld + 1}
	}

	return out
}

// PloidyCodes flattens picks with PloidyPick.Code.
func PloidyCodes(picks []PloidyPick) []int {
	out := make([]int, len(picks))
	for i, p := range picks {
		out[i] = p.Code()
	}

	return out
}
