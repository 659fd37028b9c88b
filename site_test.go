package bestgeno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSiteCall(t *testing.T) {
	probs, err := NewProbArray([]float64{
		0.1, 0.1, 0.8, // allele 0
		0.8, 0.1, 0.1, // allele 1
	}, 2, 1, 2)
	require.NoError(t, err)

	s := &Site{
		ID:      "rs1",
		Alleles: []string{"A", "G"},
		Probs:   probs,
		ChiSq: mat.NewDense(2, 2, []float64{
			Missing(), 4,
			2.5, 1,
		}),
	}

	calls, err := s.Call()
	require.NoError(t, err)
	assert.Equal(t, "rs1", calls.ID)
	assert.Equal(t, [][]int{{2, 0}}, calls.Genos.Codes())
	require.Len(t, calls.MultiGenos, 1)
	assert.Equal(t, []int{2, 0}, calls.MultiGenos[0].Copies)
	assert.Equal(t, []int{2, 2}, PloidyCodes(calls.Ploidies))
}

func TestSiteCallWithoutStatistics(t *testing.T) {
	probs, err := NewProbArray([]float64{0.2, 0.8}, 1, 1, 1)
	require.NoError(t, err)

	calls, err := (&Site{ID: "x", Probs: probs}).Call()
	require.NoError(t, err)
	assert.Nil(t, calls.Ploidies)
}

func TestSiteCallRejects(t *testing.T) {
	probs, err := NewProbArray([]float64{0.2, 0.8}, 1, 1, 1)
	require.NoError(t, err)

	_, err = (&Site{ID: "none"}).Call()
	assert.Error(t, err)

	_, err = (&Site{ID: "alleles", Alleles: []string{"A", "T"}, Probs: probs}).Call()
	assert.Error(t, err)

	_, err = (&Site{ID: "chisq", Probs: probs, ChiSq: mat.NewDense(2, 2, nil)}).Call()
	assert.Error(t, err)
}
