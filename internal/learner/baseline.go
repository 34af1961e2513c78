package learner

import (
	"context"
	"fmt"

	"github.com/algoteach/teachsim/internal/grid"
)

// #region baseline

// Baseline is the in-process user model: it memorizes taught examples
// exactly and labels every other cell by vote among its nearest taught
// examples (Manhattan distance). Ties fall back to the prior belief.
// Deterministic, stateless between calls, cheap enough for the optimal
// teacher's combination search.
type Baseline struct {
	space grid.Space
	prior []float64
}

// NewBaseline creates a nearest-example learner with a uniform prior p.
func NewBaseline(space grid.Space, p float64) *Baseline {
	prior := make([]float64, space.Size())
	for i := range prior {
		prior[i] = p
	}
	return &Baseline{space: space, prior: prior}
}

// Name returns the model identifier used in run records and labels.
func (b *Baseline) Name() string { return "nearest" }

// Prior returns a copy of the initial belief grid.
func (b *Baseline) Prior() []float64 {
	out := make([]float64, len(b.prior))
	copy(out, b.prior)
	return out
}

// #endregion baseline

// #region predict

// PredictGrid computes the full-grid prediction for the given ordered
// example list. The evaluation grid holds the vote fraction for label 1
// among each cell's nearest examples (exactly 0 or 1 on taught cells).
func (b *Baseline) PredictGrid(_ context.Context, examples []grid.Example) (PredictionResult, error) {
	for _, ex := range examples {
		if !b.space.Contains(ex.Loc) {
			return PredictionResult{}, fmt.Errorf("example %s outside %s grid", ex.Loc, b.space.DimString())
		}
	}

	prediction := make([]int, b.space.Size())
	evaluation := make([]float64, b.space.Size())

	for _, loc := range b.space.Enumerate() {
		idx := b.space.Index(loc)
		if len(examples) == 0 {
			evaluation[idx] = b.prior[idx]
			prediction[idx] = thresholdLabel(b.prior[idx], b.prior[idx])
			continue
		}

		ones, total := nearestVotes(loc, examples)
		p1 := float64(ones) / float64(total)
		evaluation[idx] = p1
		prediction[idx] = thresholdLabel(p1, b.prior[idx])
	}

	return PredictionResult{Prediction: prediction, Evaluation: evaluation}, nil
}

// #endregion predict

// #region helpers

// nearestVotes counts label-1 votes among the examples at minimum
// Manhattan distance from loc. A taught cell votes only for itself
// (distance zero).
func nearestVotes(loc grid.Location, examples []grid.Example) (ones, total int) {
	best := -1
	for _, ex := range examples {
		d := manhattan(loc, ex.Loc)
		if best == -1 || d < best {
			best = d
			ones, total = 0, 0
		}
		if d == best {
			total++
			ones += ex.Label
		}
	}
	return ones, total
}

// thresholdLabel turns a probability into a label, breaking an exact
// 0.5 tie with the prior belief for the cell.
func thresholdLabel(p1, prior float64) int {
	if p1 > 0.5 {
		return 1
	}
	if p1 < 0.5 {
		return 0
	}
	if prior >= 0.5 {
		return 1
	}
	return 0
}

func manhattan(a, b grid.Location) int {
	d := 0
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		d += diff
	}
	return d
}

// #endregion helpers
