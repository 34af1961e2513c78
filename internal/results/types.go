package results

import (
	"time"

	"github.com/algoteach/teachsim/internal/grid"
)

// #region experiment
// Experiment is one stored experiment configuration: a grid shape,
// round count, and seed under which strategy runs were recorded.
type Experiment struct {
	ID          string
	Description string
	Dims        string // "13x6"
	Rounds      int
	Seed        int64
	CreatedAt   time.Time
}

// #endregion experiment

// #region run-record
// RunRecord is one completed teaching session: who ran it, the taught
// sequence, the learner's prediction after every round, the true label
// grid it was scored against, and the per-round accuracy curve.
// Predictions and TruthLabels make a stored run self-contained, so the
// export/replay tools can rebuild and re-score it without the original
// ground truth object.
type RunRecord struct {
	ID           string
	ExperimentID string
	TruthName    string
	ModelName    string
	TeacherName  string
	Rep          int
	Examples     []grid.Example
	Predictions  [][]int
	TruthLabels  []int
	Curve        []float64
	CreatedAt    time.Time
}

// #endregion run-record

// #region log-entry
// LogEntry is a row in the run_log table recording run lifecycle
// events for later inspection.
type LogEntry struct {
	RunID     string
	Event     string // "started" | "completed" | "failed"
	Reason    string
	CreatedAt time.Time
}

// #endregion log-entry
