package cpd

import (
	"math"

	"github.com/katalvlaran/tsbngen/dbn"
)

// probabilityTol bounds |Σp − 1| for a categorical distribution.
const probabilityTol = 1e-6

// Categorical is a probability vector over levels 1..len(c).
type Categorical []float64

// Validate checks that c is non-empty, finite, non-negative and sums to 1.
func (c Categorical) Validate() error {
	if len(c) == 0 {
		return cpdErrorf("Categorical.Validate", ErrInvalidDistribution, "empty distribution")
	}
	sum := 0.0
	for i, p := range c {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return cpdErrorf("Categorical.Validate", ErrInvalidDistribution, "p[%d]=%g", i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > probabilityTol {
		return cpdErrorf("Categorical.Validate", ErrInvalidDistribution, "sum=%g", sum)
	}

	return nil
}

// Moments parameterizes an unconditional Normal(Mean, Sigma²) draw.
type Moments struct {
	Mean  float64
	Sigma float64
}

// Validate checks for a finite mean and a finite, non-negative sigma.
func (m Moments) Validate() error {
	if !finite(m.Mean) {
		return cpdErrorf("Moments.Validate", ErrInvalidSigma, "mean=%g", m.Mean)
	}

	return validSigma("Moments.Validate", m.Sigma)
}

// Term selects one regression input: the value of Parent read at Lag.
// Lag is the lag declared in the loopback map (0 for ordinary parents).
type Term struct {
	Parent int
	Lag    int
}

// Regression is the linear-Gaussian model of a continuous node with at least
// one continuous parent. Every slice is indexed by the composite index of the
// node's discrete parent assignment (a single row when there is none).
type Regression struct {
	// Terms maps each continuous input to its per-row coefficient.
	Terms map[Term][]float64
	// InterceptSigma is the standard deviation of the zero-mean intercept.
	InterceptSigma []float64
	// Sigma is the conditional standard deviation around the linear predictor.
	Sigma []float64
}

// Coefficient returns the coefficient of term in row index.
func (r *Regression) Coefficient(term Term, index int) (float64, error) {
	row, ok := r.Terms[term]
	if !ok {
		return 0, cpdErrorf("Regression.Coefficient", ErrMissingEntry, "no term parent=%d lag=%d", term.Parent, term.Lag)
	}
	if index < 0 || index >= len(row) {
		return 0, cpdErrorf("Regression.Coefficient", ErrMissingEntry, "term parent=%d lag=%d has no row %d", term.Parent, term.Lag, index)
	}

	return row[index], nil
}

// Noise returns the intercept and conditional standard deviations of row index.
func (r *Regression) Noise(index int) (interceptSigma, sigma float64, err error) {
	if index < 0 || index >= len(r.InterceptSigma) || index >= len(r.Sigma) {
		return 0, 0, cpdErrorf("Regression.Noise", ErrMissingEntry, "no row %d", index)
	}

	return r.InterceptSigma[index], r.Sigma[index], nil
}

// Entry is the CPD of one node in one phase. Exactly one of Categorical,
// Moments and Regression is used, chosen by node type and parent types.
type Entry struct {
	// Parents is the parent context the entry was authored for. It must equal
	// the phase's parent list for the node.
	Parents []int
	// Categorical rows for a discrete node; row 0 is the unconditional one.
	Categorical []Categorical
	// Moments rows for a continuous node without continuous parents.
	Moments []Moments
	// Regression for a continuous node with continuous parents.
	Regression *Regression
}

// Distribution returns the categorical row at index.
func (e *Entry) Distribution(index int) (Categorical, error) {
	if index < 0 || index >= len(e.Categorical) {
		return nil, cpdErrorf("Entry.Distribution", ErrMissingEntry, "no categorical row %d of %d", index, len(e.Categorical))
	}

	return e.Categorical[index], nil
}

// Moment returns the Gaussian row at index.
func (e *Entry) Moment(index int) (Moments, error) {
	if index < 0 || index >= len(e.Moments) {
		return Moments{}, cpdErrorf("Entry.Moment", ErrMissingEntry, "no gaussian row %d of %d", index, len(e.Moments))
	}

	return e.Moments[index], nil
}

// Key addresses an Entry in a Registry.
type Key struct {
	Phase dbn.Phase
	Node  int
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validSigma(method string, s float64) error {
	if !finite(s) || s < 0 {
		return cpdErrorf(method, ErrInvalidSigma, "sigma=%g", s)
	}

	return nil
}
