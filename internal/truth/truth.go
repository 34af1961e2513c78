package truth

import (
	"fmt"
	"math/rand"

	"github.com/algoteach/teachsim/internal/grid"
)

// #region interface
// GroundTruth is the true labeling over a grid plus its error metric.
// At returns the binary label for one location. PredictionError scores
// a full-grid prediction: mean label mismatch in [0,1], lower is better.
type GroundTruth interface {
	Name() string
	Describe() string
	At(loc grid.Location) int
	PredictionError(prediction []int) float64
}

// #endregion interface

// #region table
// Table is a ground truth backed by a precomputed label grid.
// All concrete ground truths embed it: they compute their labels once
// at construction and serve At/PredictionError from the cache.
type Table struct {
	space  grid.Space
	labels []int
	name   string
	desc   string
}

// NewTable builds a ground truth by evaluating label at every location.
func NewTable(space grid.Space, name, desc string, label func(grid.Location) int) *Table {
	labels := make([]int, space.Size())
	for _, loc := range space.Enumerate() {
		labels[space.Index(loc)] = label(loc)
	}
	return &Table{space: space, labels: labels, name: name, desc: desc}
}

// Name returns the short identifier used in run records and curve labels.
func (t *Table) Name() string { return t.name }

// Describe returns the human-readable description.
func (t *Table) Describe() string { return t.desc }

// Space returns the location space the labels cover.
func (t *Table) Space() grid.Space { return t.space }

// At returns the true label at loc.
func (t *Table) At(loc grid.Location) int {
	return t.labels[t.space.Index(loc)]
}

// Labels returns a copy of the full label grid in raster order.
func (t *Table) Labels() []int {
	out := make([]int, len(t.labels))
	copy(out, t.labels)
	return out
}

// PredictionError returns the fraction of grid cells where the
// prediction disagrees with the true labels. A prediction of the wrong
// length is a programming error in the caller and panics.
func (t *Table) PredictionError(prediction []int) float64 {
	if len(prediction) != len(t.labels) {
		panic(fmt.Sprintf("prediction has %d cells, grid has %d", len(prediction), len(t.labels)))
	}
	mismatches := 0
	for i, p := range prediction {
		if p != t.labels[i] {
			mismatches++
		}
	}
	return float64(mismatches) / float64(len(t.labels))
}

// #endregion table

// #region linear
// NewLinear builds a ground truth labeled 1 on one side of the
// hyperplane coefs·loc + bias >= 0.
func NewLinear(space grid.Space, coefs []float64, bias float64) (*Table, error) {
	if len(coefs) != len(space.Dims()) {
		return nil, fmt.Errorf("linear truth: %d coefficients for %d dimensions", len(coefs), len(space.Dims()))
	}
	c := make([]float64, len(coefs))
	copy(c, coefs)
	desc := fmt.Sprintf("linear boundary coefs=%v bias=%.3f", c, bias)
	return NewTable(space, "linear", desc, func(loc grid.Location) int {
		v := bias
		for i, x := range loc {
			v += c[i] * float64(x)
		}
		if v >= 0 {
			return 1
		}
		return 0
	}), nil
}

// NewRandomLinear draws hyperplane coefficients from rng and anchors
// the boundary at the grid center, so both labels appear on any
// non-degenerate grid.
func NewRandomLinear(space grid.Space, rng *rand.Rand) *Table {
	dims := space.Dims()
	coefs := make([]float64, len(dims))
	bias := 0.0
	for i, d := range dims {
		coefs[i] = rng.Float64()*2 - 1
		bias -= coefs[i] * float64(d-1) / 2
	}
	t, _ := NewLinear(space, coefs, bias)
	return t
}

// #endregion linear

// #region polynomial
// NewPolynomial builds a 2D ground truth labeled 1 where the second
// coordinate lies on or above a polynomial in the first:
// y >= sum_i coefs[i] * x^i.
func NewPolynomial(space grid.Space, coefs []float64) (*Table, error) {
	if len(space.Dims()) != 2 {
		return nil, fmt.Errorf("polynomial truth requires a 2D grid, got %s", space.DimString())
	}
	c := make([]float64, len(coefs))
	copy(c, coefs)
	name := fmt.Sprintf("poly%d", len(c)-1)
	desc := fmt.Sprintf("polynomial boundary degree %d coefs=%v", len(c)-1, c)
	return NewTable(space, name, desc, func(loc grid.Location) int {
		x := float64(loc[0])
		v := 0.0
		pow := 1.0
		for _, ci := range c {
			v += ci * pow
			pow *= x
		}
		if float64(loc[1]) >= v {
			return 1
		}
		return 0
	}), nil
}

// #endregion polynomial

// #region function
// NewFunction builds a 2D ground truth labeled 1 where y >= f(x),
// for a literal scalar function with a display formula ("2 * sin(x)").
func NewFunction(space grid.Space, name, formula string, f func(float64) float64) (*Table, error) {
	if len(space.Dims()) != 2 {
		return nil, fmt.Errorf("function truth requires a 2D grid, got %s", space.DimString())
	}
	return NewTable(space, name, formula, func(loc grid.Location) int {
		if float64(loc[1]) >= f(float64(loc[0])) {
			return 1
		}
		return 0
	}), nil
}

// #endregion function
