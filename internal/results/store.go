package results

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/algoteach/teachsim/internal/grid"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS experiments (
	experiment_id TEXT PRIMARY KEY,
	description   TEXT,
	dims          TEXT NOT NULL,
	rounds        INTEGER NOT NULL,
	seed          INTEGER NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	experiment_id TEXT NOT NULL,
	truth_name    TEXT NOT NULL,
	model_name    TEXT NOT NULL,
	teacher_name  TEXT NOT NULL,
	rep           INTEGER NOT NULL,
	truth_labels  BLOB NOT NULL,
	curve         BLOB NOT NULL,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (experiment_id) REFERENCES experiments(experiment_id)
);

CREATE TABLE IF NOT EXISTS run_examples (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	round  INTEGER NOT NULL,
	coords TEXT NOT NULL,
	label  INTEGER NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS run_predictions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	round      INTEGER NOT NULL,
	prediction BLOB NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS run_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	event      TEXT NOT NULL,
	reason     TEXT,
	created_at TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store persists experiments, runs, and accuracy curves in SQLite.
// The simulation core never touches it; only the cmd binaries do.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for ad-hoc queries by the cmd
// binaries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region create-experiment
// CreateExperiment inserts a new experiment row and returns it with a
// fresh ID.
func (s *Store) CreateExperiment(description, dims string, rounds int, seed int64) (Experiment, error) {
	exp := Experiment{
		ID:          uuid.New().String(),
		Description: description,
		Dims:        dims,
		Rounds:      rounds,
		Seed:        seed,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO experiments (experiment_id, description, dims, rounds, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		exp.ID, nullIfEmpty(exp.Description), exp.Dims, exp.Rounds, exp.Seed,
		exp.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Experiment{}, fmt.Errorf("insert experiment: %w", err)
	}
	return exp, nil
}

// GetExperiment retrieves one experiment by ID.
func (s *Store) GetExperiment(experimentID string) (Experiment, error) {
	var exp Experiment
	var desc sql.NullString
	var createdStr string
	err := s.db.QueryRow(
		`SELECT experiment_id, description, dims, rounds, seed, created_at
		 FROM experiments WHERE experiment_id = ?`, experimentID,
	).Scan(&exp.ID, &desc, &exp.Dims, &exp.Rounds, &exp.Seed, &createdStr)
	if err != nil {
		return Experiment{}, fmt.Errorf("get experiment %s: %w", experimentID, err)
	}
	if desc.Valid {
		exp.Description = desc.String
	}
	exp.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return exp, nil
}

// #endregion create-experiment

// #region save-run
// SaveRun inserts a run with its taught examples and per-round
// predictions atomically. The record's ID is assigned here.
func (s *Store) SaveRun(rec RunRecord) (RunRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return RunRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, experiment_id, truth_name, model_name, teacher_name, rep, truth_labels, curve, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ExperimentID, rec.TruthName, rec.ModelName, rec.TeacherName,
		rec.Rep, encodeLabels(rec.TruthLabels), encodeCurve(rec.Curve),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}

	for round, ex := range rec.Examples {
		_, err = tx.Exec(
			`INSERT INTO run_examples (run_id, round, coords, label) VALUES (?, ?, ?, ?)`,
			rec.ID, round, ex.Loc.Key(), ex.Label,
		)
		if err != nil {
			return RunRecord{}, fmt.Errorf("insert example round %d: %w", round, err)
		}
	}

	for round, prediction := range rec.Predictions {
		_, err = tx.Exec(
			`INSERT INTO run_predictions (run_id, round, prediction) VALUES (?, ?, ?)`,
			rec.ID, round, encodeLabels(prediction),
		)
		if err != nil {
			return RunRecord{}, fmt.Errorf("insert prediction round %d: %w", round, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return RunRecord{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

// #endregion save-run

// #region get-run
// GetRun retrieves a run with its taught example sequence and
// per-round predictions.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var truthBlob []byte
	var curveBlob []byte
	var createdStr string

	err := s.db.QueryRow(
		`SELECT run_id, experiment_id, truth_name, model_name, teacher_name, rep, truth_labels, curve, created_at
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&rec.ID, &rec.ExperimentID, &rec.TruthName, &rec.ModelName, &rec.TeacherName,
		&rec.Rep, &truthBlob, &curveBlob, &createdStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	rec.TruthLabels = decodeLabels(truthBlob)
	rec.Curve = decodeCurve(curveBlob)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	rows, err := s.db.Query(
		`SELECT coords, label FROM run_examples WHERE run_id = ? ORDER BY round ASC`, runID,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run examples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var coords string
		var label int
		if err := rows.Scan(&coords, &label); err != nil {
			return RunRecord{}, fmt.Errorf("scan example: %w", err)
		}
		loc, err := parseCoords(coords)
		if err != nil {
			return RunRecord{}, fmt.Errorf("run %s: %w", runID, err)
		}
		rec.Examples = append(rec.Examples, grid.Example{Loc: loc, Label: label})
	}
	if err := rows.Err(); err != nil {
		return RunRecord{}, err
	}

	predRows, err := s.db.Query(
		`SELECT prediction FROM run_predictions WHERE run_id = ? ORDER BY round ASC`, runID,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run predictions: %w", err)
	}
	defer predRows.Close()

	for predRows.Next() {
		var blob []byte
		if err := predRows.Scan(&blob); err != nil {
			return RunRecord{}, fmt.Errorf("scan prediction: %w", err)
		}
		rec.Predictions = append(rec.Predictions, decodeLabels(blob))
	}
	return rec, predRows.Err()
}

// #endregion get-run

// #region list
// ListExperiments returns the most recent experiments, newest first.
func (s *Store) ListExperiments(limit int) ([]Experiment, error) {
	rows, err := s.db.Query(
		`SELECT experiment_id, description, dims, rounds, seed, created_at
		 FROM experiments ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list experiments: %w", err)
	}
	defer rows.Close()

	var out []Experiment
	for rows.Next() {
		var exp Experiment
		var desc sql.NullString
		var createdStr string
		if err := rows.Scan(&exp.ID, &desc, &exp.Dims, &exp.Rounds, &exp.Seed, &createdStr); err != nil {
			return nil, fmt.Errorf("scan experiment: %w", err)
		}
		if desc.Valid {
			exp.Description = desc.String
		}
		exp.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, exp)
	}
	return out, rows.Err()
}

// ListRuns returns all runs of an experiment in insertion order.
// Only metadata and the accuracy curve are loaded; use GetRun for the
// taught sequence, per-round predictions, and truth labels.
func (s *Store) ListRuns(experimentID string) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, experiment_id, truth_name, model_name, teacher_name, rep, curve, created_at
		 FROM runs WHERE experiment_id = ? ORDER BY created_at ASC, rep ASC`, experimentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var curveBlob []byte
		var createdStr string
		if err := rows.Scan(&rec.ID, &rec.ExperimentID, &rec.TruthName, &rec.ModelName,
			&rec.TeacherName, &rec.Rep, &curveBlob, &createdStr); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.Curve = decodeCurve(curveBlob)
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion list

// #region run-log
// LogRun appends a lifecycle event for a run.
func (s *Store) LogRun(runID, event, reason string) error {
	_, err := s.db.Exec(
		`INSERT INTO run_log (run_id, event, reason, created_at) VALUES (?, ?, ?, ?)`,
		runID, event, nullIfEmpty(reason), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log run: %w", err)
	}
	return nil
}

// ListRunLog returns a run's lifecycle events in order.
func (s *Store) ListRunLog(runID string) ([]LogEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, event, reason, created_at FROM run_log WHERE run_id = ? ORDER BY id ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list run log: %w", err)
	}
	defer rows.Close()

	var out []LogEntry
	for rows.Next() {
		var entry LogEntry
		var reason sql.NullString
		var createdStr string
		if err := rows.Scan(&entry.RunID, &entry.Event, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		if reason.Valid {
			entry.Reason = reason.String
		}
		entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, entry)
	}
	return out, rows.Err()
}

// #endregion run-log

// #region codec
// encodeCurve packs float64 accuracies into a little-endian BLOB.
func encodeCurve(curve []float64) []byte {
	buf := make([]byte, len(curve)*8)
	for i, v := range curve {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeCurve(buf []byte) []float64 {
	out := make([]float64, len(buf)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return out
}

// encodeLabels packs a label grid one byte per cell.
func encodeLabels(labels []int) []byte {
	buf := make([]byte, len(labels))
	for i, l := range labels {
		buf[i] = byte(l)
	}
	return buf
}

func decodeLabels(buf []byte) []int {
	out := make([]int, len(buf))
	for i, b := range buf {
		out[i] = int(b)
	}
	return out
}

func parseCoords(coords string) (grid.Location, error) {
	parts := strings.Split(coords, ",")
	loc := make(grid.Location, len(parts))
	for i, p := range parts {
		c, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parse coords %q: %w", coords, err)
		}
		loc[i] = c
	}
	return loc, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion codec
