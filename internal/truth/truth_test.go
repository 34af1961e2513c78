package truth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/algoteach/teachsim/internal/grid"
)

func mustSpace(t *testing.T, dims ...int) grid.Space {
	t.Helper()
	s, err := grid.NewSpace(dims...)
	if err != nil {
		t.Fatalf("new space: %v", err)
	}
	return s
}

func TestLinearLabels(t *testing.T) {
	s := mustSpace(t, 2, 2)
	// label 1 iff first coordinate >= 1
	tr, err := NewLinear(s, []float64{1, 0}, -1)
	if err != nil {
		t.Fatalf("new linear: %v", err)
	}

	tests := []struct {
		loc  grid.Location
		want int
	}{
		{grid.Location{0, 0}, 0},
		{grid.Location{0, 1}, 0},
		{grid.Location{1, 0}, 1},
		{grid.Location{1, 1}, 1},
	}
	for _, tt := range tests {
		if got := tr.At(tt.loc); got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.loc, got, tt.want)
		}
	}
}

func TestLinearCoefArityMismatch(t *testing.T) {
	s := mustSpace(t, 3, 3)
	if _, err := NewLinear(s, []float64{1}, 0); err == nil {
		t.Error("expected error for coefficient/dimension mismatch")
	}
}

func TestPredictionErrorEndpoints(t *testing.T) {
	s := mustSpace(t, 2, 2)
	tr, err := NewLinear(s, []float64{1, 0}, -1)
	if err != nil {
		t.Fatalf("new linear: %v", err)
	}

	exact := tr.Labels()
	if e := tr.PredictionError(exact); e != 0.0 {
		t.Errorf("exact prediction: error %v, want 0", e)
	}

	inverted := make([]int, len(exact))
	for i, l := range exact {
		inverted[i] = 1 - l
	}
	if e := tr.PredictionError(inverted); e != 1.0 {
		t.Errorf("inverted prediction: error %v, want 1", e)
	}

	// one cell wrong out of four
	oneOff := tr.Labels()
	oneOff[0] = 1 - oneOff[0]
	if e := tr.PredictionError(oneOff); math.Abs(e-0.25) > 1e-12 {
		t.Errorf("one mismatch: error %v, want 0.25", e)
	}
}

func TestPredictionErrorShapePanics(t *testing.T) {
	s := mustSpace(t, 2, 2)
	tr, _ := NewLinear(s, []float64{1, 0}, -1)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on wrong prediction length")
		}
	}()
	tr.PredictionError([]int{0, 1})
}

func TestRandomLinearDeterministicPerSeed(t *testing.T) {
	s := mustSpace(t, 6, 6)
	a := NewRandomLinear(s, rand.New(rand.NewSource(99)))
	b := NewRandomLinear(s, rand.New(rand.NewSource(99)))

	la, lb := a.Labels(), b.Labels()
	for i := range la {
		if la[i] != lb[i] {
			t.Fatalf("labels diverge at index %d with same seed", i)
		}
	}
}

func TestRandomLinearHasBothLabels(t *testing.T) {
	s := mustSpace(t, 8, 8)
	tr := NewRandomLinear(s, rand.New(rand.NewSource(1234)))

	ones := 0
	for _, l := range tr.Labels() {
		ones += l
	}
	if ones == 0 || ones == s.Size() {
		t.Errorf("expected mixed labels, got %d ones out of %d", ones, s.Size())
	}
}

func TestPolynomialLabels(t *testing.T) {
	s := mustSpace(t, 3, 4)
	// boundary y >= x^2
	tr, err := NewPolynomial(s, []float64{0, 0, 1})
	if err != nil {
		t.Fatalf("new polynomial: %v", err)
	}

	tests := []struct {
		loc  grid.Location
		want int
	}{
		{grid.Location{0, 0}, 1}, // 0 >= 0
		{grid.Location{1, 0}, 0}, // 0 < 1
		{grid.Location{1, 1}, 1}, // 1 >= 1
		{grid.Location{2, 3}, 0}, // 3 < 4
	}
	for _, tt := range tests {
		if got := tr.At(tt.loc); got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.loc, got, tt.want)
		}
	}
}

func TestPolynomialRequires2D(t *testing.T) {
	s := mustSpace(t, 3, 3, 3)
	if _, err := NewPolynomial(s, []float64{0, 1}); err == nil {
		t.Error("expected error for 3D grid")
	}
}

func TestFunctionTruth(t *testing.T) {
	s := mustSpace(t, 5, 5)
	tr, err := NewFunction(s, "sin", "2 * sin(x)", func(x float64) float64 {
		return 2 * math.Sin(x)
	})
	if err != nil {
		t.Fatalf("new function: %v", err)
	}
	if tr.Name() != "sin" {
		t.Errorf("name = %q, want %q", tr.Name(), "sin")
	}
	// 2*sin(0) = 0, so y=0 is labeled 1
	if got := tr.At(grid.Location{0, 0}); got != 1 {
		t.Errorf("At((0,0)) = %d, want 1", got)
	}
	// 2*sin(1) ≈ 1.68, so y=1 is labeled 0
	if got := tr.At(grid.Location{1, 1}); got != 0 {
		t.Errorf("At((1,1)) = %d, want 0", got)
	}
}
