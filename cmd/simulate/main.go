package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/algoteach/teachsim/internal/accuracy"
	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/learner"
	"github.com/algoteach/teachsim/internal/results"
	"github.com/algoteach/teachsim/internal/session"
	"github.com/algoteach/teachsim/internal/teacher"
	"github.com/algoteach/teachsim/internal/truth"
)

// #region main

func main() {
	dims := flag.String("dims", "13x6", "grid shape, e.g. 13x6 or 5x5x5")
	rounds := flag.Int("rounds", 16, "teaching rounds per run")
	reps := flag.Int("reps", 20, "repetitions for stochastic strategies")
	seed := flag.Int64("seed", 1234, "base random seed")
	horizon := flag.Int("horizon", teacher.DefaultHorizon, "optimal teacher lookahead")
	dbPath := flag.String("db", envOr("TEACHSIM_DB", ""), "results database path (empty = no persistence)")
	learnerAddr := flag.String("learner", envOr("LEARNER_ADDR", ""), "remote learner service address (empty = in-process nearest model)")
	desc := flag.String("desc", "", "experiment description")
	flag.Parse()

	space, err := parseDims(*dims)
	if err != nil {
		log.Fatalf("bad -dims: %v", err)
	}
	if *rounds > space.Size() {
		log.Fatalf("-rounds %d exceeds %d locations in %s grid", *rounds, space.Size(), space.DimString())
	}

	var store *results.Store
	if *dbPath != "" {
		store, err = results.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("open results store: %v", err)
		}
		defer store.Close()
	}

	gt := truth.NewRandomLinear(space, rand.New(rand.NewSource(*seed)))

	var model learner.UserModel
	if *learnerAddr != "" {
		remote, err := learner.NewRemote(*learnerAddr, space)
		if err != nil {
			log.Fatalf("connect learner service at %s: %v", *learnerAddr, err)
		}
		defer remote.Close()
		model = remote
	} else {
		model = learner.NewBaseline(space, 0.5)
	}

	batch := batchConfig{
		space:   space,
		rounds:  *rounds,
		reps:    *reps,
		seed:    *seed,
		horizon: *horizon,
		desc:    *desc,
	}
	if err := runBatch(context.Background(), batch, gt, model, store); err != nil {
		log.Fatalf("experiment batch failed: %v", err)
	}
}

// #endregion main

// #region batch

type batchConfig struct {
	space   grid.Space
	rounds  int
	reps    int
	seed    int64
	horizon int
	desc    string
}

// runBatch compares the three strategies on one ground truth and user
// model: stochastic strategies run `reps` times for percentile bands,
// the optimal teacher once. Any failed run aborts the whole batch so
// the comparison never silently drops a strategy.
func runBatch(ctx context.Context, batch batchConfig, gt truth.GroundTruth, model learner.UserModel, store *results.Store) error {
	log.Printf("[SIM] batch: truth=%s model=%s grid=%s rounds=%d reps=%d",
		gt.Name(), model.Name(), batch.space.DimString(), batch.rounds, batch.reps)

	var experimentID string
	if store != nil {
		exp, err := store.CreateExperiment(batch.desc, batch.space.DimString(), batch.rounds, batch.seed)
		if err != nil {
			return err
		}
		experimentID = exp.ID
		log.Printf("[SIM] experiment %s", experimentID)
	}

	strategies := []struct {
		id   teacher.ID
		reps int
	}{
		{teacher.IDRandom, batch.reps},
		{teacher.IDRaster, batch.reps},
		{teacher.IDOptimal, 1},
	}

	cfg := session.Config{Space: batch.space, Rounds: batch.rounds}
	var labeled []accuracy.Labeled

	truthLabels := make([]int, batch.space.Size())
	for _, loc := range batch.space.Enumerate() {
		truthLabels[batch.space.Index(loc)] = gt.At(loc)
	}

	for _, strat := range strategies {
		newTeacher := func(rep int) session.Teacher {
			switch strat.id {
			case teacher.IDRandom:
				// per-rep sub-stream so parallel runs stay deterministic
				return teacher.NewRandom(batch.space, gt, rand.New(rand.NewSource(batch.seed+int64(rep)+1)))
			case teacher.IDRaster:
				return teacher.NewRaster(batch.space, gt)
			default:
				return teacher.NewOptimalHorizon(batch.space, gt, model, batch.horizon)
			}
		}

		histories, err := session.RunReps(ctx, cfg, model, newTeacher, strat.reps)
		if err != nil {
			return fmt.Errorf("strategy %s: %w", strat.id, err)
		}
		curves, err := accuracy.Curves(histories, gt)
		if err != nil {
			return fmt.Errorf("strategy %s: %w", strat.id, err)
		}
		bands, err := accuracy.Aggregate(string(strat.id), curves)
		if err != nil {
			return fmt.Errorf("strategy %s: %w", strat.id, err)
		}
		labeled = append(labeled, bands...)

		if store != nil {
			if err := recordRuns(store, experimentID, gt, model, string(strat.id), truthLabels, histories, curves); err != nil {
				return fmt.Errorf("strategy %s: %w", strat.id, err)
			}
		}
	}

	printCurves(labeled, batch.rounds)
	return nil
}

func recordRuns(store *results.Store, experimentID string, gt truth.GroundTruth, model learner.UserModel, teacherName string, truthLabels []int, histories []*session.History, curves [][]float64) error {
	for rep, history := range histories {
		rec := results.RunRecord{
			ExperimentID: experimentID,
			TruthName:    gt.Name(),
			ModelName:    model.Name(),
			TeacherName:  teacherName,
			Rep:          rep,
			Examples:     history.Examples,
			Predictions:  history.Predictions,
			TruthLabels:  truthLabels,
			Curve:        curves[rep],
		}
		saved, err := store.SaveRun(rec)
		if err != nil {
			return err
		}
		if err := store.LogRun(saved.ID, "completed", fmt.Sprintf("%d rounds", history.Len())); err != nil {
			return err
		}
	}
	return nil
}

// #endregion batch

// #region output

func printCurves(labeled []accuracy.Labeled, rounds int) {
	fmt.Printf("%-18s", "strategy")
	for i := 0; i < rounds; i++ {
		fmt.Printf("  r%-4d", i+1)
	}
	fmt.Println()
	for _, l := range labeled {
		fmt.Printf("%-18s", l.Name)
		for _, v := range l.Values {
			fmt.Printf("  %.3f", v)
		}
		fmt.Println()
	}
}

// #endregion output

// #region helpers

func parseDims(s string) (grid.Space, error) {
	parts := strings.Split(s, "x")
	dims := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(p)
		if err != nil {
			return grid.Space{}, fmt.Errorf("parse %q: %w", s, err)
		}
		dims[i] = d
	}
	return grid.NewSpace(dims...)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
