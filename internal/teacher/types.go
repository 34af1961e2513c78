package teacher

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/learner"
	"github.com/algoteach/teachsim/internal/session"
	"github.com/algoteach/teachsim/internal/truth"
)

// #region id

// ID identifies a teaching strategy.
type ID string

const (
	IDRandom  ID = "random"
	IDRaster  ID = "grid"
	IDOptimal ID = "optimal"
)

// #endregion id

// #region errors

// ErrExhausted is returned when a teacher is asked for an example but
// every location has already been taught. This is a configuration
// error (rounds > grid size) and is never retried.
var ErrExhausted = errors.New("no remaining locations to teach")

// #endregion errors

// #region config

// Config pairs a strategy with how many repetitions to run. Stochastic
// strategies run many reps for percentile bands; deterministic ones
// run once.
type Config struct {
	Teacher session.Teacher
	Reps    int
}

// #endregion config

// #region registry

// New constructs the strategy for id. The optimal strategy needs the
// user model it is teaching; the random strategy needs its own random
// source (one per run, never shared, so parallel runs stay
// independently deterministic).
func New(id ID, space grid.Space, gt truth.GroundTruth, model learner.UserModel, rng *rand.Rand) (session.Teacher, error) {
	switch id {
	case IDRandom:
		if rng == nil {
			return nil, fmt.Errorf("strategy %q needs a random source", id)
		}
		return NewRandom(space, gt, rng), nil
	case IDRaster:
		return NewRaster(space, gt), nil
	case IDOptimal:
		if model == nil {
			return nil, fmt.Errorf("strategy %q needs a user model", id)
		}
		return NewOptimal(space, gt, model), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", id)
	}
}

// #endregion registry
