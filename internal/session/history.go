package session

import (
	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/learner"
)

// #region history

// History is the ordered record of one teaching session: the taught
// examples, the learner's full-grid prediction after each example, and
// any confidence grids the learner supplied. Append-only; owned by
// exactly one run and never shared across runs.
type History struct {
	Prior       []float64
	Examples    []grid.Example
	Predictions [][]int
	Evaluations [][]float64
}

// NewHistory starts an empty history seeded with the learner's prior.
func NewHistory(prior []float64) *History {
	return &History{Prior: prior}
}

// #endregion history

// #region append

// AddExample appends a taught example.
func (h *History) AddExample(ex grid.Example) {
	h.Examples = append(h.Examples, ex)
}

// AddPredictionResult appends the learner's prediction for the round.
// A nil evaluation grid is skipped, so Evaluations may be shorter than
// Predictions for models that report no confidence.
func (h *History) AddPredictionResult(result learner.PredictionResult) {
	h.Predictions = append(h.Predictions, result.Prediction)
	if result.Evaluation != nil {
		h.Evaluations = append(h.Evaluations, result.Evaluation)
	}
}

// #endregion append

// #region accessors

// Len returns the number of completed rounds.
func (h *History) Len() int {
	return len(h.Examples)
}

// Taught returns the set of already-taught location keys. History is
// the single source of truth for what has been shown; teachers
// recompute this every call rather than tracking their own used set.
func (h *History) Taught() map[string]bool {
	taught := make(map[string]bool, len(h.Examples))
	for _, ex := range h.Examples {
		taught[ex.Loc.Key()] = true
	}
	return taught
}

// #endregion accessors
