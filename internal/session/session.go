package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/learner"
)

// #region config

// Config holds the per-run simulation parameters.
type Config struct {
	Space  grid.Space
	Rounds int // number of teaching rounds; must not exceed Space.Size()
}

// Validate checks that the configured rounds fit in the location space.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be >= 1, got %d", c.Rounds)
	}
	if c.Rounds > c.Space.Size() {
		return fmt.Errorf("rounds %d exceeds %d locations in %s grid", c.Rounds, c.Space.Size(), c.Space.DimString())
	}
	return nil
}

// #endregion config

// #region teacher-contract

// Teacher selects the next example to show given the history so far.
// NextExample must return a location not already present in the
// history, with its ground-truth label.
type Teacher interface {
	Name() string
	NextExample(ctx context.Context, history *History) (grid.Example, error)
}

// #endregion teacher-contract

// #region run

// Run drives one teaching session for exactly cfg.Rounds rounds. Each
// round asks the teacher for the next example, then asks the model to
// predict the whole grid from the cumulative example list. The first
// teacher or model error aborts the run: a session either completes
// all rounds or fails as a unit, with no retries.
func Run(ctx context.Context, cfg Config, model learner.UserModel, teacher Teacher) (*History, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	history := NewHistory(model.Prior())

	for i := 0; i < cfg.Rounds; i++ {
		example, err := teacher.NextExample(ctx, history)
		if err != nil {
			return nil, fmt.Errorf("round %d: next example: %w", i, err)
		}
		history.AddExample(example)

		result, err := model.PredictGrid(ctx, history.Examples)
		if err != nil {
			return nil, fmt.Errorf("round %d: predict grid: %w", i, err)
		}
		history.AddPredictionResult(result)
	}

	log.Printf("[SIM] run complete: teacher=%s model=%s rounds=%d took=%s",
		teacher.Name(), model.Name(), cfg.Rounds, time.Since(start).Round(time.Millisecond))
	return history, nil
}

// #endregion run

// #region run-reps

// RunReps executes reps independent sessions of the same configuration
// in parallel. Runs share no mutable state: newTeacher is called once
// per repetition so stochastic strategies can own an independently
// seeded random source. The model must be safe for concurrent use
// (both provided models are). The first failed run aborts the batch.
func RunReps(ctx context.Context, cfg Config, model learner.UserModel, newTeacher func(rep int) Teacher, reps int) ([]*History, error) {
	if reps < 1 {
		return nil, fmt.Errorf("reps must be >= 1, got %d", reps)
	}

	histories := make([]*History, reps)
	errs := make([]error, reps)
	var wg sync.WaitGroup

	for rep := 0; rep < reps; rep++ {
		wg.Add(1)
		go func(rep int) {
			defer wg.Done()
			h, err := Run(ctx, cfg, model, newTeacher(rep))
			if err != nil {
				errs[rep] = fmt.Errorf("rep %d: %w", rep, err)
				return
			}
			histories[rep] = h
		}(rep)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return histories, nil
}

// #endregion run-reps
