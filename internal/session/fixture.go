package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/algoteach/teachsim/internal/grid"
)

// #region fixture-types

// Fixture is the JSON export of one completed teaching session,
// carrying enough context (grid shape, true labels) to recompute its
// accuracy curve offline and check it against the stored one.
type Fixture struct {
	Description string             `json:"description"`
	Dims        []int              `json:"dims"`
	TruthName   string             `json:"truth_name"`
	TruthLabels []int              `json:"truth_labels"`
	ModelName   string             `json:"model_name"`
	TeacherName string             `json:"teacher_name"`
	Seed        int64              `json:"seed"`
	Examples    []FixtureExample   `json:"examples"`
	Predictions [][]int            `json:"predictions"`
	Evaluations [][]float64        `json:"evaluations,omitempty"`
	Accuracy    []float64          `json:"accuracy"`
}

// FixtureExample mirrors grid.Example with JSON tags.
type FixtureExample struct {
	Coords []int `json:"coords"`
	Label  int   `json:"label"`
}

// #endregion fixture-types

// #region build

// BuildFixture packages a completed history and its accuracy curve.
func BuildFixture(desc string, space grid.Space, truthName string, truthLabels []int, modelName, teacherName string, seed int64, history *History, accuracy []float64) *Fixture {
	f := &Fixture{
		Description: desc,
		Dims:        space.Dims(),
		TruthName:   truthName,
		TruthLabels: truthLabels,
		ModelName:   modelName,
		TeacherName: teacherName,
		Seed:        seed,
		Examples:    make([]FixtureExample, len(history.Examples)),
		Predictions: history.Predictions,
		Evaluations: history.Evaluations,
		Accuracy:    accuracy,
	}
	for i, ex := range history.Examples {
		f.Examples[i] = FixtureExample{Coords: ex.Loc.Clone(), Label: ex.Label}
	}
	return f
}

// History reconstructs the session history stored in the fixture.
func (f *Fixture) History() *History {
	h := &History{
		Examples:    make([]grid.Example, len(f.Examples)),
		Predictions: f.Predictions,
		Evaluations: f.Evaluations,
	}
	for i, ex := range f.Examples {
		h.Examples[i] = grid.Example{Loc: grid.Location(ex.Coords), Label: ex.Label}
	}
	return h
}

// #endregion build

// #region io

// SaveFixture writes the fixture as indented JSON.
func SaveFixture(f *Fixture, path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// LoadFixture reads and parses a fixture JSON file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Examples) != len(f.Predictions) {
		return nil, fmt.Errorf("fixture %s: %d examples but %d predictions", path, len(f.Examples), len(f.Predictions))
	}
	return &f, nil
}

// #endregion io
