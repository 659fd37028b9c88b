package bestgeno

// BestGenos calls the most probable copy number for every taxon and allele of
// a 3D array of genotype probabilities or likelihoods. probs holds ploidy+1
// copy numbers per taxon per allele with copy number varying fastest, then
// taxon, then allele; the caller is responsible for its length.
//
// The first copy number of each group always starts a new running best. A
// later value exactly equal to the running best makes the call missing, and a
// later value strictly greater replaces it. A missing value makes the call
// missing and drops the running best to zero so that any later positive value
// can still win. Equality is exact.
func BestGenos(probs []float64, ploidy, ntaxa, nalleles int) *GenoMatrix {
	out := NewGenoMatrix(ntaxa, nalleles)
	ngen := ploidy + 1
	nprobs := ngen * ntaxa * nalleles

	best := missingCall()
	var bestProb float64

	for i := 0; i < nprobs; i++ {
		copyNum, taxon, allele := splitGenoIndex(i, ngen, ntaxa)
		p := probs[i]

		// The tie is checked against the old best before p can replace it.
		if copyNum > 0 && p == bestProb {
			best = missingCall()
		}
		if copyNum == 0 || p > bestProb {
			best = Call{CopyNumber: copyNum}
			bestProb = p
		}
		if IsMissing(p) {
			best = missingCall()
			bestProb = 0
		}

		if copyNum == ploidy {
			out.Set(taxon, allele, best)
		}
	}

	return out
}
