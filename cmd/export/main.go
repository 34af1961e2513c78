package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/results"
	"github.com/algoteach/teachsim/internal/session"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to results database")
	runID := flag.String("run", "", "run to export (empty = most recent)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: export --db path/to/results.db --out path/to/fixture.json [--run id]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath, runID, outPath string) error {
	store, err := results.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	if runID == "" {
		runID, err = latestRunID(store)
		if err != nil {
			return err
		}
	}

	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	exp, err := store.GetExperiment(rec.ExperimentID)
	if err != nil {
		return err
	}

	space, err := parseDims(exp.Dims)
	if err != nil {
		return fmt.Errorf("experiment %s: %w", exp.ID, err)
	}

	history := &session.History{
		Examples:    rec.Examples,
		Predictions: rec.Predictions,
	}
	desc := exp.Description
	if desc == "" {
		desc = fmt.Sprintf("run %s: %s teacher on %s truth", rec.ID, rec.TeacherName, rec.TruthName)
	}
	fixture := session.BuildFixture(desc, space, rec.TruthName, rec.TruthLabels,
		rec.ModelName, rec.TeacherName, exp.Seed, history, rec.Curve)

	if err := session.SaveFixture(fixture, outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote fixture to %s (%d rounds)\n", outPath, history.Len())
	return nil
}

// latestRunID returns the most recently inserted run in the database.
func latestRunID(store *results.Store) (string, error) {
	var id string
	err := store.DB().QueryRow(
		`SELECT run_id FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("find latest run: %w", err)
	}
	return id, nil
}

// #endregion extract

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
