package bestgeno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestBestPloidies(t *testing.T) {
	na := Missing()

	tests := []struct {
		name   string
		column []float64
		want   PloidyPick
	}{
		{"first_missing", []float64{na, 3.2, 1.1}, PloidyPick{Index: 3}},
		{"first_smallest", []float64{0.5, 3.2, 1.1}, PloidyPick{Index: 1}},
		{"all_missing", []float64{na, na, na}, PloidyPick{Missing: true}},
		{"only_middle_present", []float64{na, 5, na}, PloidyPick{Index: 2}},
		{"missing_after_best", []float64{2, 1, na}, PloidyPick{Index: 2}},
		{"tie_keeps_earlier", []float64{4, 1.5, 1.5}, PloidyPick{Index: 2}},
		{"single_hypothesis", []float64{7}, PloidyPick{Index: 1}},
		{"single_missing_hypothesis", []float64{na}, PloidyPick{Missing: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chisq := mat.NewDense(len(tt.column), 1, tt.column)
			got := BestPloidies(chisq)
			assert.Equal(t, []PloidyPick{tt.want}, got)
		})
	}
}

func TestBestPloidiesColumns(t *testing.T) {
	na := Missing()
	// Rows are ploidy hypotheses, columns are alleles.
	chisq := mat.NewDense(3, 4, []float64{
		na, 0.2, na, 9,
		3.2, 0.1, na, 8,
		1.1, 0.3, na, 7,
	})

	got := BestPloidies(chisq)
	assert.Equal(t, []int{3, 2, 0, 3}, PloidyCodes(got))
	assert.True(t, got[2].Missing)
}

// Any mat.Matrix works, including transposed views.
func TestBestPloidiesTransposed(t *testing.T) {
	byAllele := mat.NewDense(2, 3, []float64{
		5, 4, 6,
		1, 2, 0.5,
	})

	got := BestPloidies(byAllele.T())
	assert.Equal(t, []int{2, 3}, PloidyCodes(got))
}
