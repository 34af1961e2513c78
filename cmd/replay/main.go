package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/algoteach/teachsim/internal/accuracy"
	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/results"
	"github.com/algoteach/teachsim/internal/session"
	"github.com/algoteach/teachsim/internal/truth"
)

// Stored curves are float64 round-tripped through a binary codec, so
// recomputation must agree almost exactly.
const curveTolerance = 1e-9

// #region main

func main() {
	dbPath := flag.String("db", "", "path to results database (DB mode)")
	runID := flag.String("run", "", "run to replay (DB mode, empty = most recent)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/results.db [--run id]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *runID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := session.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	space, err := grid.NewSpace(f.Dims...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixture dims: %v\n", err)
		return 2
	}

	return replayRun(space, f.TruthName, f.TruthLabels, f.History(), f.Accuracy)
}

// #endregion fixture-mode

// #region db-mode

func runDBMode(dbPath, runID string) int {
	store, err := results.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	if runID == "" {
		err = store.DB().QueryRow(
			`SELECT run_id FROM runs ORDER BY created_at DESC LIMIT 1`,
		).Scan(&runID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "find latest run: %v\n", err)
			return 2
		}
	}

	rec, err := store.GetRun(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get run: %v\n", err)
		return 2
	}
	exp, err := store.GetExperiment(rec.ExperimentID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get experiment: %v\n", err)
		return 2
	}
	space, err := parseDims(exp.Dims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "experiment dims: %v\n", err)
		return 2
	}

	history := &session.History{
		Examples:    rec.Examples,
		Predictions: rec.Predictions,
	}
	fmt.Printf("replaying run %s (%s teacher, %s truth)\n", rec.ID, rec.TeacherName, rec.TruthName)
	return replayRun(space, rec.TruthName, rec.TruthLabels, history, rec.Curve)
}

// #endregion db-mode

// #region replay

// replayRun rescores the stored predictions against the stored label
// grid and compares the result with the recorded accuracy curve.
func replayRun(space grid.Space, truthName string, truthLabels []int, history *session.History, recorded []float64) int {
	if len(truthLabels) != space.Size() {
		fmt.Fprintf(os.Stderr, "truth grid has %d cells, space %s has %d\n",
			len(truthLabels), space.DimString(), space.Size())
		return 2
	}

	gt := truth.NewTable(space, truthName, "stored label grid", func(loc grid.Location) int {
		return truthLabels[space.Index(loc)]
	})

	replayed, err := accuracy.Curve(history, gt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rescore: %v\n", err)
		return 2
	}

	return printComparison(history, recorded, replayed)
}

// printComparison outputs a per-round comparison table and returns the
// process exit code: 0 when every round matches, 1 on divergence.
func printComparison(history *session.History, recorded, replayed []float64) int {
	fmt.Printf("%-6s| %-12s| %-10s| %-10s| %s\n", "Round", "Example", "Recorded", "Replayed", "Match")
	fmt.Printf("%-6s+%-13s+%-11s+%-11s+%s\n",
		"------", "-------------", "-----------", "-----------", "------")

	total := len(replayed)
	if len(recorded) < total {
		total = len(recorded)
	}

	matches := 0
	for i := 0; i < total; i++ {
		match := "DIFF"
		if math.Abs(recorded[i]-replayed[i]) <= curveTolerance {
			match = "OK"
			matches++
		}
		example := ""
		if i < len(history.Examples) {
			example = history.Examples[i].String()
		}
		fmt.Printf("%-6d| %-12s| %-10.4f| %-10.4f| %s\n", i+1, example, recorded[i], replayed[i], match)
	}

	diverge := total - matches
	if len(recorded) != len(replayed) {
		fmt.Printf("length mismatch: %d recorded rounds, %d replayed\n", len(recorded), len(replayed))
		diverge++
	}
	fmt.Printf("\nSummary: %d rounds, %d match, %d diverge\n", total, matches, diverge)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion replay

// #region helpers

func parseDims(s string) (grid.Space, error) {
	parts := strings.Split(s, "x")
	dims := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(p)
		if err != nil {
			return grid.Space{}, fmt.Errorf("parse dims %q: %w", s, err)
		}
		dims[i] = d
	}
	return grid.NewSpace(dims...)
}

// #endregion helpers
