package teacher

import (
	"context"
	"math/rand"

	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/session"
	"github.com/algoteach/teachsim/internal/truth"
)

// #region base

// base carries the state every strategy shares: the fixed location set
// in canonical raster order and the ground truth that labels examples.
type base struct {
	space     grid.Space
	locations []grid.Location
	truth     truth.GroundTruth
}

func newBase(space grid.Space, gt truth.GroundTruth) base {
	return base{space: space, locations: space.Enumerate(), truth: gt}
}

// remaining returns the not-yet-taught locations in raster order,
// recomputed from the history each call. The canonical order matters:
// combination enumeration and tie-breaking depend on it.
func (b base) remaining(history *session.History) []grid.Location {
	taught := history.Taught()
	out := make([]grid.Location, 0, len(b.locations)-len(taught))
	for _, loc := range b.locations {
		if !taught[loc.Key()] {
			out = append(out, loc)
		}
	}
	return out
}

// #endregion base

// #region random

// Random teaches a uniformly sampled untaught location each round.
// Learner-unaware; the naive baseline strategy.
type Random struct {
	base
	rng *rand.Rand
}

// NewRandom creates a random teacher owning the given random source.
func NewRandom(space grid.Space, gt truth.GroundTruth, rng *rand.Rand) *Random {
	return &Random{base: newBase(space, gt), rng: rng}
}

// Name returns the strategy identifier.
func (r *Random) Name() string { return string(IDRandom) }

// NextExample samples one remaining location uniformly. Sampling is
// without replacement across the run because the remaining set shrinks
// as history grows.
func (r *Random) NextExample(_ context.Context, history *session.History) (grid.Example, error) {
	rem := r.remaining(history)
	if len(rem) == 0 {
		return grid.Example{}, ErrExhausted
	}
	loc := rem[r.rng.Intn(len(rem))]
	return grid.Example{Loc: loc, Label: r.truth.At(loc)}, nil
}

// #endregion random

// #region raster

// Raster teaches locations in fixed raster order. Learner-unaware and
// seed-independent; the deterministic sweep baseline.
type Raster struct {
	base
}

// NewRaster creates a fixed-order teacher.
func NewRaster(space grid.Space, gt truth.GroundTruth) *Raster {
	return &Raster{base: newBase(space, gt)}
}

// Name returns the strategy identifier.
func (r *Raster) Name() string { return string(IDRaster) }

// NextExample teaches the first remaining location in raster order.
func (r *Raster) NextExample(_ context.Context, history *session.History) (grid.Example, error) {
	rem := r.remaining(history)
	if len(rem) == 0 {
		return grid.Example{}, ErrExhausted
	}
	loc := rem[0]
	return grid.Example{Loc: loc, Label: r.truth.At(loc)}, nil
}

// #endregion raster
