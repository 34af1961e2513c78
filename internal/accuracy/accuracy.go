package accuracy

import (
	"fmt"
	"sort"

	"github.com/algoteach/teachsim/internal/session"
	"github.com/algoteach/teachsim/internal/truth"
)

// #region transform

// FromError converts a prediction error in [0,1] to an accuracy.
// Monotonically decreasing: zero error is perfect accuracy.
func FromError(err float64) float64 {
	return 1 - err
}

// #endregion transform

// #region curve

// Curve maps a completed session to its per-round accuracy sequence:
// one value per taught example, scoring the prediction the learner
// produced after that example.
func Curve(history *session.History, gt truth.GroundTruth) ([]float64, error) {
	curve := make([]float64, len(history.Predictions))
	for i, prediction := range history.Predictions {
		if prediction == nil {
			return nil, fmt.Errorf("round %d has no prediction", i)
		}
		curve[i] = FromError(gt.PredictionError(prediction))
	}
	return curve, nil
}

// Curves maps each repetition's history to its accuracy curve.
func Curves(histories []*session.History, gt truth.GroundTruth) ([][]float64, error) {
	curves := make([][]float64, len(histories))
	for i, h := range histories {
		c, err := Curve(h, gt)
		if err != nil {
			return nil, fmt.Errorf("rep %d: %w", i, err)
		}
		curves[i] = c
	}
	return curves, nil
}

// #endregion curve

// #region percentile

// Percentile computes the p-th percentile of values with linear
// interpolation between order statistics, the standard definition
// (rank p/100*(n-1), interpolated). Values need not be sorted.
func Percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// #endregion percentile

// #region aggregate

// Labeled is one named accuracy sequence, ready for the plotting
// consumer.
type Labeled struct {
	Name   string
	Values []float64
}

// Aggregate reduces the repeated-run curves for one strategy. A single
// run reports its raw curve under the strategy name. Repeated runs
// report per-round 5th/50th/95th percentile bands, computed column-wise
// (rounds are never pooled). Curves of differing lengths indicate a
// broken configuration and are rejected outright rather than coerced.
func Aggregate(name string, curves [][]float64) ([]Labeled, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("strategy %s: no curves to aggregate", name)
	}
	rounds := len(curves[0])
	for i, c := range curves {
		if len(c) != rounds {
			return nil, fmt.Errorf("strategy %s: rep %d has %d rounds, rep 0 has %d", name, i, len(c), rounds)
		}
	}

	if len(curves) == 1 {
		return []Labeled{{Name: name, Values: curves[0]}}, nil
	}

	column := make([]float64, len(curves))
	bands := []struct {
		suffix string
		p      float64
	}{
		{"-p05", 5},
		{"-median", 50},
		{"-p95", 95},
	}

	out := make([]Labeled, len(bands))
	for bi, band := range bands {
		values := make([]float64, rounds)
		for round := 0; round < rounds; round++ {
			for rep, c := range curves {
				column[rep] = c[round]
			}
			values[round] = Percentile(column, band.p)
		}
		out[bi] = Labeled{Name: name + band.suffix, Values: values}
	}
	return out, nil
}

// #endregion aggregate
