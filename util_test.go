package bestgeno

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{3, 1, 3},
		{5, 1, 5},
		{4, 0, 1},
		{4, 4, 1},
		{4, 2, 6},
		{5, 2, 10},
		{6, 3, 20},
		{10, 4, 210},
		{11, 3, 165},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Choose(tt.n, tt.k), "Choose(%d, %d)", tt.n, tt.k)
	}
}

func TestNumCompositions(t *testing.T) {
	// Unphased diploid biallelic: AA, AB, BB.
	assert.Equal(t, 3, NumCompositions(2, 2))
	// Unphased diploid triallelic.
	assert.Equal(t, 6, NumCompositions(2, 3))
	assert.Equal(t, 1, NumCompositions(6, 1))
	assert.Equal(t, 1, NumCompositions(0, 4))
	assert.Equal(t, 0, NumCompositions(2, 0))
	assert.Equal(t, 0, NumCompositions(-1, 2))
}
