package bestgeno

import (
	"testing"
)

func TestGenoIndexRoundTrip(t *testing.T) {
	ngen, ntaxa, nalleles := 4, 3, 2

	i := 0
	for a := 0; a < nalleles; a++ {
		for tx := 0; tx < ntaxa; tx++ {
			for c := 0; c < ngen; c++ {
				if got := genoIndex(ngen, ntaxa, c, tx, a); got != i {
					t.Errorf("genoIndex(%d, %d, %d) = %d, expected %d", c, tx, a, got, i)
				}

				gc, gt, ga := splitGenoIndex(i, ngen, ntaxa)
				if gc != c || gt != tx || ga != a {
					t.Errorf("splitGenoIndex(%d) = (%d, %d, %d), expected (%d, %d, %d)", i, gc, gt, ga, c, tx, a)
				}
				i++
			}
		}
	}
}

func TestLocusIndex(t *testing.T) {
	if got := locusIndex(3, 2, 1); got != 5 {
		t.Errorf("Got %d, expected %d", got, 5)
	}
	if got := locusIndex(3, 0, 0); got != 0 {
		t.Errorf("Got %d, expected %d", got, 0)
	}
}
