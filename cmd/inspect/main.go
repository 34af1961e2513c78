package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/algoteach/teachsim/internal/results"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to results database")
	last := flag.Int("last", 20, "show N most recent experiments")
	experiment := flag.String("experiment", "", "list runs of one experiment")
	run := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/results.db [--last N] [--experiment id] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := results.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *run != "":
		err = runDetailMode(store, *run, *jsonOut)
	case *experiment != "":
		err = runListMode(store, *experiment, *jsonOut)
	default:
		err = experimentListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region experiment-list

func experimentListMode(store *results.Store, last int, jsonOut bool) error {
	experiments, err := store.ListExperiments(last)
	if err != nil {
		return err
	}
	if len(experiments) == 0 {
		fmt.Fprintln(os.Stderr, "no experiments found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(experiments)
	}

	fmt.Printf("%-36s  %-8s  %-6s  %-6s  %s\n", "experiment", "grid", "rounds", "seed", "description")
	for _, exp := range experiments {
		fmt.Printf("%-36s  %-8s  %-6d  %-6d  %s\n", exp.ID, exp.Dims, exp.Rounds, exp.Seed, exp.Description)
	}
	return nil
}

// #endregion experiment-list

// #region run-list

func runListMode(store *results.Store, experimentID string, jsonOut bool) error {
	runs, err := store.ListRuns(experimentID)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	fmt.Printf("%-36s  %-10s  %-8s  %-8s  %-4s  %-6s\n", "run", "teacher", "model", "truth", "rep", "final")
	for _, r := range runs {
		final := 0.0
		if n := len(r.Curve); n > 0 {
			final = r.Curve[n-1]
		}
		fmt.Printf("%-36s  %-10s  %-8s  %-8s  %-4d  %.3f\n",
			r.ID, r.TeacherName, r.ModelName, r.TruthName, r.Rep, final)
	}
	return nil
}

// #endregion run-list

// #region run-detail

func runDetailMode(store *results.Store, runID string, jsonOut bool) error {
	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Printf("run %s\n", rec.ID)
	fmt.Printf("  teacher=%s model=%s truth=%s rep=%d\n", rec.TeacherName, rec.ModelName, rec.TruthName, rec.Rep)
	fmt.Println("  round  example     accuracy")
	for i, ex := range rec.Examples {
		acc := ""
		if i < len(rec.Curve) {
			acc = fmt.Sprintf("%.3f", rec.Curve[i])
		}
		fmt.Printf("  %-5d  %-10s  %s\n", i+1, ex.String(), acc)
	}

	entries, err := store.ListRunLog(rec.ID)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		fmt.Println("  log:")
		for _, e := range entries {
			fmt.Printf("    %s  %-10s  %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Event, e.Reason)
		}
	}
	return nil
}

// #endregion run-detail
