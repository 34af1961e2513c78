package teacher

import (
	"context"

	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/learner"
	"github.com/algoteach/teachsim/internal/session"
	"github.com/algoteach/teachsim/internal/truth"
)

// DefaultHorizon is the lookahead window for the optimal teacher.
// C(|remaining|, horizon) model inferences per round is the dominant
// cost of the whole simulation, so this is the main runtime lever.
const DefaultHorizon = 2

// #region optimal

// Optimal has access to the user model it is teaching and picks each
// example by receding-horizon search: enumerate every combination of
// `horizon` untaught locations, score each by simulating the model on
// history plus the combination, take the best window, then commit to
// the single best member of that window. Plan h steps, act one,
// replan next round.
type Optimal struct {
	base
	model   learner.UserModel
	horizon int
}

// NewOptimal creates an optimal teacher with the default horizon.
func NewOptimal(space grid.Space, gt truth.GroundTruth, model learner.UserModel) *Optimal {
	return NewOptimalHorizon(space, gt, model, DefaultHorizon)
}

// NewOptimalHorizon creates an optimal teacher with an explicit
// lookahead horizon. Horizons below 1 are clamped to 1.
func NewOptimalHorizon(space grid.Space, gt truth.GroundTruth, model learner.UserModel, horizon int) *Optimal {
	if horizon < 1 {
		horizon = 1
	}
	return &Optimal{base: newBase(space, gt), model: model, horizon: horizon}
}

// Name returns the strategy identifier.
func (o *Optimal) Name() string { return string(IDOptimal) }

// #endregion optimal

// #region next-example

// NextExample runs the receding-horizon search. When fewer than
// `horizon` locations remain, the window shrinks to the remaining
// count: the search degrades to scoring one all-remaining combination
// rather than failing. Model errors propagate unchanged.
func (o *Optimal) NextExample(ctx context.Context, history *session.History) (grid.Example, error) {
	rem := o.remaining(history)
	if len(rem) == 0 {
		return grid.Example{}, ErrExhausted
	}

	h := o.horizon
	if h > len(rem) {
		h = len(rem)
	}

	window, err := o.bestCombination(ctx, history, rem, h)
	if err != nil {
		return grid.Example{}, err
	}

	// Reduce the window to one commitment: re-score each member as a
	// singleton, restricted to the winning window. A greedy
	// approximation by construction, kept because the comparison
	// results depend on it.
	best, err := o.bestSingleton(ctx, history, window)
	if err != nil {
		return grid.Example{}, err
	}
	return grid.Example{Loc: best, Label: o.truth.At(best)}, nil
}

// #endregion next-example

// #region search

// bestCombination scores every k-combination of rem and returns the
// one with minimum prediction error. Combinations are enumerated in
// lexicographic index order over the raster-ordered remaining set, and
// ties keep the first combination encountered, so the search is fully
// deterministic.
func (o *Optimal) bestCombination(ctx context.Context, history *session.History, rem []grid.Location, k int) ([]grid.Location, error) {
	var (
		best     []grid.Location
		bestErr  float64
		haveBest bool
	)

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	combo := make([]grid.Location, k)

	for {
		for i, j := range idx {
			combo[i] = rem[j]
		}
		score, err := o.score(ctx, history, combo)
		if err != nil {
			return nil, err
		}
		if !haveBest || score < bestErr {
			haveBest = true
			bestErr = score
			best = append(best[:0:0], combo...)
		}

		// advance to the next lexicographic combination
		i := k - 1
		for i >= 0 && idx[i] == len(rem)-k+i {
			i--
		}
		if i < 0 {
			return best, nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// bestSingleton scores each window member alone and returns the
// arg-min, first-encountered on ties.
func (o *Optimal) bestSingleton(ctx context.Context, history *session.History, window []grid.Location) (grid.Location, error) {
	var (
		best     grid.Location
		bestErr  float64
		haveBest bool
	)
	single := make([]grid.Location, 1)
	for _, loc := range window {
		single[0] = loc
		score, err := o.score(ctx, history, single)
		if err != nil {
			return nil, err
		}
		if !haveBest || score < bestErr {
			haveBest = true
			bestErr = score
			best = loc
		}
	}
	return best, nil
}

// score simulates teaching the candidate locations on top of the
// history and returns the resulting prediction error. One model
// inference per call.
func (o *Optimal) score(ctx context.Context, history *session.History, candidates []grid.Location) (float64, error) {
	hypothetical := make([]grid.Example, 0, len(history.Examples)+len(candidates))
	hypothetical = append(hypothetical, history.Examples...)
	for _, loc := range candidates {
		hypothetical = append(hypothetical, grid.Example{Loc: loc, Label: o.truth.At(loc)})
	}

	result, err := o.model.PredictGrid(ctx, hypothetical)
	if err != nil {
		return 0, err
	}
	return o.truth.PredictionError(result.Prediction), nil
}

// #endregion search

// interface check
var _ session.Teacher = (*Optimal)(nil)
