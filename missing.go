package bestgeno

import (
	"math"
	"strconv"
)

// MissingCode is the integer stand-in for a missing Call when calls are
// flattened to plain ints with Call.Code.
const MissingCode = -1

// Missing returns the value used to mark a probability or statistic as
// missing. It is a NaN, so it never compares equal to, greater than, or less
// than anything.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether x is the missing marker.
func IsMissing(x float64) bool {
	return math.IsNaN(x)
}

// Call is the best copy number of one allele in one taxon. Missing is set when
// the probabilities were tied or absent, in which case CopyNumber is
// meaningless.
type Call struct {
	CopyNumber int
	Missing    bool
}

func missingCall() Call {
	return Call{Missing: true}
}

// Code returns the copy number, or MissingCode if the call is missing.
func (c Call) Code() int {
	if c.Missing {
		return MissingCode
	}

	return c.CopyNumber
}

func (c Call) String() string {
	if c.Missing {
		return "NA"
	}

	return strconv.Itoa(c.CopyNumber)
}
