package bestgeno

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/hashicorp/go-multierror"
)

// ProbArray is a 3D array of genotype probabilities (or likelihoods) over
// copy number, taxon and allele whose dimensions have been checked. Probs is
// laid out as BestGenos expects.
type ProbArray struct {
	Ploidy   int
	NTaxa    int
	NAlleles int
	Probs    []float64
}

// NewProbArray checks that probs has exactly (ploidy+1)*ntaxa*nalleles
// entries. It does not copy probs.
func NewProbArray(probs []float64, ploidy, ntaxa, nalleles int) (*ProbArray, error) {
	if err := checkDims(len(probs), ploidy, ntaxa, nalleles); err != nil {
		return nil, pfx.Err(err)
	}

	return &ProbArray{
		Ploidy:   ploidy,
		NTaxa:    ntaxa,
		NAlleles: nalleles,
		Probs:    probs,
	}, nil
}

func checkDims(nprobs, ploidy, ntaxa, nalleles int) error {
	var result *multierror.Error

	if ploidy < 0 {
		result = multierror.Append(result, fmt.Errorf("ploidy is %d; must not be negative", ploidy))
	}
	if ntaxa < 1 {
		result = multierror.Append(result, fmt.Errorf("ntaxa is %d; need at least 1", ntaxa))
	}
	if nalleles < 1 {
		result = multierror.Append(result, fmt.Errorf("nalleles is %d; need at least 1", nalleles))
	}
	if result == nil {
		if want := (ploidy + 1) * ntaxa * nalleles; nprobs != want {
			result = multierror.Append(result, fmt.Errorf("got %d probabilities; expected (%d+1)*%d*%d = %d", nprobs, ploidy, ntaxa, nalleles, want))
		}
	}

	return result.ErrorOrNil()
}

// At returns the probability that allele is present in copyNum copies in
// taxon.
func (p *ProbArray) At(copyNum, taxon, allele int) float64 {
	return p.Probs[genoIndex(p.Ploidy+1, p.NTaxa, copyNum, taxon, allele)]
}

// Locus copies out the 2D (copy number, allele) table of one taxon, in the
// layout BestMultiGeno expects.
func (p *ProbArray) Locus(taxon int) []float64 {
	ngen := p.Ploidy + 1
	out := make([]float64, ngen*p.NAlleles)
	for a := 0; a < p.NAlleles; a++ {
		for c := 0; c < ngen; c++ {
			out[locusIndex(ngen, c, a)] = p.At(c, taxon, a)
		}
	}

	return out
}

// BestGenos calls the best copy number of every taxon and allele.
func (p *ProbArray) BestGenos() *GenoMatrix {
	return BestGenos(p.Probs, p.Ploidy, p.NTaxa, p.NAlleles)
}

// BestMultiGenos resolves the best multiallelic genotype of each taxon, with
// copy numbers summing to the ploidy. The result is indexed by taxon.
func (p *ProbArray) BestMultiGenos() []MultiGeno {
	out := make([]MultiGeno, p.NTaxa)
	for t := range out {
		out[t] = BestMultiGeno(p.Locus(t), p.Ploidy, p.NAlleles, p.Ploidy)
	}

	return out
}

// Probability holds the genotype probabilities of every sample at one
// variant.
type Probability struct {
	NSamples            uint32
	NAlleles            uint16
	MaximumPloidy       uint8
	Phased              bool
	SampleProbabilities []*SampleProbability
}

// SampleProbability represents the variant data for one specific individual at
// one specific locus, including information on whether this data is missing,
// what that individual's ploidy is, and the probabilities of each unphased
// genotype. For a biallelic variant, Probabilities[k] is the probability of
// carrying k copies of the second allele.
type SampleProbability struct {
	Missing       bool
	Ploidy        uint8
	Probabilities []float64
}

// FromProbability lays out the genotype probabilities of a biallelic, unphased
// variant as a ProbArray with one taxon per sample. Allele 0 is present in c
// copies when the second allele is present in ploidy-c copies. Missing samples
// get missing probabilities throughout.
func FromProbability(prob *Probability) (*ProbArray, error) {
	if prob.Phased {
		return nil, pfx.Err(fmt.Errorf("phased probabilities are not supported"))
	}
	if prob.NAlleles != 2 {
		return nil, pfx.Err(fmt.Errorf("variant has %d alleles; only biallelic variants can be laid out per allele", prob.NAlleles))
	}
	if int(prob.NSamples) != len(prob.SampleProbabilities) {
		return nil, pfx.Err(fmt.Errorf("variant claims %d samples but has %d", prob.NSamples, len(prob.SampleProbabilities)))
	}

	ploidy := int(prob.MaximumPloidy)
	ntaxa := len(prob.SampleProbabilities)
	ngen := ploidy + 1
	out := make([]float64, ngen*ntaxa*2)

	for t, sp := range prob.SampleProbabilities {
		if sp == nil || sp.Missing {
			for c := 0; c < ngen; c++ {
				out[genoIndex(ngen, ntaxa, c, t, 0)] = Missing()
				out[genoIndex(ngen, ntaxa, c, t, 1)] = Missing()
			}
			continue
		}

		if int(sp.Ploidy) != ploidy {
			return nil, pfx.Err(fmt.Errorf("sample %d has ploidy %d; all samples must have ploidy %d", t, sp.Ploidy, ploidy))
		}
		if len(sp.Probabilities) != ngen {
			return nil, pfx.Err(fmt.Errorf("sample %d has %d genotype probabilities; expected %d", t, len(sp.Probabilities), ngen))
		}

		for c := 0; c < ngen; c++ {
			out[genoIndex(ngen, ntaxa, c, t, 0)] = sp.Probabilities[ploidy-c]
			out[genoIndex(ngen, ntaxa, c, t, 1)] = sp.Probabilities[c]
		}
	}

	return NewProbArray(out, ploidy, ntaxa, 2)
}
