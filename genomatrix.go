package bestgeno

import (
	"strings"
)

// GenoMatrix holds one Call per taxon and allele.
type GenoMatrix struct {
	NTaxa    int
	NAlleles int
	calls    []Call // taxon varies fastest, like the probability arrays
}

// NewGenoMatrix returns an ntaxa x nalleles matrix with every call missing.
func NewGenoMatrix(ntaxa, nalleles int) *GenoMatrix {
	m := &GenoMatrix{
		NTaxa:    ntaxa,
		NAlleles: nalleles,
		calls:    make([]Call, ntaxa*nalleles),
	}
	for i := range m.calls {
		m.calls[i] = missingCall()
	}

	return m
}

func (m *GenoMatrix) At(taxon, allele int) Call {
	return m.calls[allele*m.NTaxa+taxon]
}

func (m *GenoMatrix) Set(taxon, allele int, c Call) {
	m.calls[allele*m.NTaxa+taxon] = c
}

// Taxon returns the calls for every allele of one taxon.
func (m *GenoMatrix) Taxon(taxon int) []Call {
	out := make([]Call, m.NAlleles)
	for a := range out {
		out[a] = m.At(taxon, a)
	}

	return out
}

// Codes flattens the matrix to [taxon][allele] ints, with MissingCode for
// missing calls.
func (m *GenoMatrix) Codes() [][]int {
	out := make([][]int, m.NTaxa)
	for t := range out {
		out[t] = make([]int, m.NAlleles)
		for a := range out[t] {
			out[t][a] = m.At(t, a).Code()
		}
	}

	return out
}

// NMissing counts the missing calls in the matrix.
func (m *GenoMatrix) NMissing() int {
	n := 0
	for _, c := range m.calls {
		if c.Missing {
			n++
		}
	}

	return n
}

// String renders one line per taxon with alleles separated by " | ".
func (m *GenoMatrix) String() string {
	lines := make([]string, 0, m.NTaxa)
	for t := 0; t < m.NTaxa; t++ {
		parts := make([]string, 0, m.NAlleles)
		for a := 0; a < m.NAlleles; a++ {
			parts = append(parts, m.At(t, a).String())
		}
		lines = append(lines, strings.Join(parts, " | "))
	}

	return strings.Join(lines, "\n")
}
