package bestgeno

import (
	"fmt"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

// Site bundles what is known about one locus: its genotype probabilities and,
// optionally, the fit statistic of each ploidy hypothesis (rows) for each
// allele (columns).
type Site struct {
	ID       string
	Position uint32
	Alleles  []string
	Probs    *ProbArray
	ChiSq    mat.Matrix
}

// SiteCalls is everything inferred for a Site.
type SiteCalls struct {
	ID         string
	Genos      *GenoMatrix
	MultiGenos []MultiGeno
	Ploidies   []PloidyPick // nil if the site had no ChiSq
}

// Call runs the genotype caller and the multiallelic resolver over every taxon
// and, when statistics are present, picks the best ploidy per allele.
func (s *Site) Call() (*SiteCalls, error) {
	if s.Probs == nil {
		return nil, pfx.Err(fmt.Errorf("site %q has no probabilities", s.ID))
	}
	if len(s.Alleles) > 0 && len(s.Alleles) != s.Probs.NAlleles {
		return nil, pfx.Err(fmt.Errorf("site %q names %d alleles but has probabilities for %d", s.ID, len(s.Alleles), s.Probs.NAlleles))
	}

	out := &SiteCalls{
		ID:         s.ID,
		Genos:      s.Probs.BestGenos(),
		MultiGenos: s.Probs.BestMultiGenos(),
	}

	if s.ChiSq != nil {
		if _, ncol := s.ChiSq.Dims(); ncol != s.Probs.NAlleles {
			return nil, pfx.Err(fmt.Errorf("site %q has statistics for %d alleles but probabilities for %d", s.ID, ncol, s.Probs.NAlleles))
		}
		out.Ploidies = BestPloidies(s.ChiSq)
	}

	return out, nil
}
