package learner

import (
	"context"

	"github.com/algoteach/teachsim/internal/grid"
)

// #region prediction-result

// PredictionResult is a full-grid prediction plus an optional
// confidence grid. Prediction is in raster order, one label per cell.
// Evaluation is nil when the model produces no confidence estimate.
type PredictionResult struct {
	Prediction []int
	Evaluation []float64
}

// #endregion prediction-result

// #region interface

// UserModel simulates a learner: given the ordered examples taught so
// far, it predicts labels for every grid cell. PredictGrid is invoked
// once per candidate combination per round by the optimal teacher, so
// implementations must be safe for repeated calls on the same input
// and safe for concurrent use across independent runs.
type UserModel interface {
	Name() string
	Prior() []float64
	PredictGrid(ctx context.Context, examples []grid.Example) (PredictionResult, error)
}

// #endregion interface
