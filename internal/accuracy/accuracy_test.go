package accuracy

import (
	"math"
	"testing"

	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/learner"
	"github.com/algoteach/teachsim/internal/session"
	"github.com/algoteach/teachsim/internal/truth"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestFromErrorEndpoints(t *testing.T) {
	if got := FromError(0.0); got != 1.0 {
		t.Errorf("FromError(0) = %v, want 1", got)
	}
	if got := FromError(1.0); got != 0.0 {
		t.Errorf("FromError(1) = %v, want 0", got)
	}
}

func TestFromErrorMonotonicDecreasing(t *testing.T) {
	prev := FromError(0.0)
	for e := 0.1; e <= 1.0; e += 0.1 {
		cur := FromError(e)
		if cur >= prev {
			t.Fatalf("FromError not decreasing at error %v: %v >= %v", e, cur, prev)
		}
		prev = cur
	}
}

func TestPercentileLinearInterpolation(t *testing.T) {
	// column of 5 known values: ranks at p/100*(n-1)
	values := []float64{0.2, 0.4, 0.6, 0.8, 1.0}

	tests := []struct {
		name string
		p    float64
		want float64
	}{
		{"p0", 0, 0.2},
		{"p05", 5, 0.24},     // rank 0.2 → 0.2 + 0.2*(0.4-0.2)
		{"p25", 25, 0.4},     // rank 1.0
		{"median", 50, 0.6},  // rank 2.0
		{"p95", 95, 0.96},    // rank 3.8 → 0.8 + 0.8*(1.0-0.8)
		{"p100", 100, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentile(values, tt.p); !almostEqual(got, tt.want) {
				t.Errorf("Percentile(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentileUnsortedInput(t *testing.T) {
	if got := Percentile([]float64{0.9, 0.1, 0.5}, 50); !almostEqual(got, 0.5) {
		t.Errorf("median of unsorted input = %v, want 0.5", got)
	}
}

func TestAggregateSingleRun(t *testing.T) {
	curve := []float64{0.5, 0.75, 1.0}
	out, err := Aggregate("optimal", [][]float64{curve})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 labeled curve, got %d", len(out))
	}
	if out[0].Name != "optimal" {
		t.Errorf("name = %q, want %q", out[0].Name, "optimal")
	}
	for i, v := range curve {
		if out[0].Values[i] != v {
			t.Errorf("round %d: got %v, want %v", i, out[0].Values[i], v)
		}
	}
}

func TestAggregatePercentileBands(t *testing.T) {
	// reps=5, rounds=3; each column is a known distribution
	curves := [][]float64{
		{0.2, 0.5, 1.0},
		{0.4, 0.5, 0.9},
		{0.6, 0.5, 0.8},
		{0.8, 0.5, 0.7},
		{1.0, 0.5, 0.6},
	}
	out, err := Aggregate("random", curves)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 bands, got %d", len(out))
	}

	byName := make(map[string][]float64)
	for _, l := range out {
		byName[l.Name] = l.Values
	}

	tests := []struct {
		name string
		want []float64
	}{
		{"random-p05", []float64{0.24, 0.5, 0.62}},
		{"random-median", []float64{0.6, 0.5, 0.8}},
		{"random-p95", []float64{0.96, 0.5, 0.98}},
	}
	for _, tt := range tests {
		values, ok := byName[tt.name]
		if !ok {
			t.Fatalf("missing band %q", tt.name)
		}
		for i, w := range tt.want {
			if !almostEqual(values[i], w) {
				t.Errorf("%s round %d: got %v, want %v", tt.name, i, values[i], w)
			}
		}
	}
}

func TestAggregateShapeMismatchFatal(t *testing.T) {
	curves := [][]float64{
		{0.1, 0.2, 0.3},
		{0.1, 0.2},
	}
	if _, err := Aggregate("random", curves); err == nil {
		t.Error("expected error for mismatched curve lengths")
	}
}

func TestAggregateEmpty(t *testing.T) {
	if _, err := Aggregate("random", nil); err == nil {
		t.Error("expected error for empty curve set")
	}
}

func TestCurveFromHistory(t *testing.T) {
	s, err := grid.NewSpace(2, 2)
	if err != nil {
		t.Fatalf("new space: %v", err)
	}
	coefs := []float64{1, 0}
	gt, err := truth.NewLinear(s, coefs, -1)
	if err != nil {
		t.Fatalf("new linear: %v", err)
	}

	history := session.NewHistory(nil)
	history.AddExample(grid.Example{Loc: grid.Location{0, 0}, Label: 0})
	// all wrong, then all right
	inverted := make([]int, 4)
	for i, l := range gt.Labels() {
		inverted[i] = 1 - l
	}
	history.AddPredictionResult(learner.PredictionResult{Prediction: inverted})
	history.AddExample(grid.Example{Loc: grid.Location{1, 0}, Label: 1})
	history.AddPredictionResult(learner.PredictionResult{Prediction: gt.Labels()})

	curve, err := Curve(history, gt)
	if err != nil {
		t.Fatalf("curve: %v", err)
	}
	want := []float64{0.0, 1.0}
	for i, w := range want {
		if !almostEqual(curve[i], w) {
			t.Errorf("round %d: got %v, want %v", i, curve[i], w)
		}
	}
}

func TestCurveMissingPrediction(t *testing.T) {
	s, _ := grid.NewSpace(2, 2)
	gt, _ := truth.NewLinear(s, []float64{1, 0}, -1)

	history := session.NewHistory(nil)
	history.AddExample(grid.Example{Loc: grid.Location{0, 0}, Label: 0})
	history.Predictions = append(history.Predictions, nil)

	if _, err := Curve(history, gt); err == nil {
		t.Error("expected error for nil prediction")
	}
}
