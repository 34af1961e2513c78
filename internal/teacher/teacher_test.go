package teacher

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/algoteach/teachsim/internal/grid"
	"github.com/algoteach/teachsim/internal/learner"
	"github.com/algoteach/teachsim/internal/session"
	"github.com/algoteach/teachsim/internal/truth"
)

func mustSpace(t *testing.T, dims ...int) grid.Space {
	t.Helper()
	s, err := grid.NewSpace(dims...)
	if err != nil {
		t.Fatalf("new space: %v", err)
	}
	return s
}

// firstCoordTruth labels a cell 1 iff its first coordinate is >= 1.
func firstCoordTruth(t *testing.T, s grid.Space) truth.GroundTruth {
	t.Helper()
	coefs := make([]float64, len(s.Dims()))
	coefs[0] = 1
	tr, err := truth.NewLinear(s, coefs, -1)
	if err != nil {
		t.Fatalf("new linear: %v", err)
	}
	return tr
}

// drain teaches every location via the strategy, checking uniqueness.
func drain(t *testing.T, s grid.Space, teach session.Teacher) *session.History {
	t.Helper()
	history := session.NewHistory(nil)
	seen := make(map[string]bool)
	for i := 0; i < s.Size(); i++ {
		ex, err := teach.NextExample(context.Background(), history)
		if err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		if seen[ex.Loc.Key()] {
			t.Fatalf("round %d: location %v taught twice", i, ex.Loc)
		}
		seen[ex.Loc.Key()] = true
		history.AddExample(ex)
	}
	return history
}

func TestNoRepeatsAndExhaustion(t *testing.T) {
	s := mustSpace(t, 3, 2)
	gt := firstCoordTruth(t, s)
	model := learner.NewBaseline(s, 0.5)

	strategies := []struct {
		name  string
		teach session.Teacher
	}{
		{"random", NewRandom(s, gt, rand.New(rand.NewSource(7)))},
		{"raster", NewRaster(s, gt)},
		{"optimal", NewOptimal(s, gt, model)},
	}
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			history := drain(t, s, st.teach)

			// one more request must fail, never recycle a location
			_, err := st.teach.NextExample(context.Background(), history)
			if !errors.Is(err, ErrExhausted) {
				t.Errorf("expected ErrExhausted after draining, got %v", err)
			}
		})
	}
}

func TestExampleLabelsMatchTruth(t *testing.T) {
	s := mustSpace(t, 2, 2)
	gt := firstCoordTruth(t, s)
	history := drain(t, s, NewRandom(s, gt, rand.New(rand.NewSource(3))))

	for _, ex := range history.Examples {
		if ex.Label != gt.At(ex.Loc) {
			t.Errorf("example %v labeled %d, truth says %d", ex.Loc, ex.Label, gt.At(ex.Loc))
		}
	}
}

func TestRandomDeterministicPerSeed(t *testing.T) {
	s := mustSpace(t, 4, 3)
	gt := firstCoordTruth(t, s)

	a := drain(t, s, NewRandom(s, gt, rand.New(rand.NewSource(1234))))
	b := drain(t, s, NewRandom(s, gt, rand.New(rand.NewSource(1234))))

	for i := range a.Examples {
		if !a.Examples[i].Loc.Equal(b.Examples[i].Loc) {
			t.Fatalf("round %d: sequences diverge with same seed: %v vs %v",
				i, a.Examples[i].Loc, b.Examples[i].Loc)
		}
	}
}

func TestRasterFixedOrder(t *testing.T) {
	s := mustSpace(t, 2, 2)
	gt := firstCoordTruth(t, s)
	history := drain(t, s, NewRaster(s, gt))

	want := []grid.Location{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, w := range want {
		if !history.Examples[i].Loc.Equal(w) {
			t.Errorf("round %d: got %v, want %v", i, history.Examples[i].Loc, w)
		}
	}
}

func TestOptimalHorizonDegradation(t *testing.T) {
	// 2 locations, horizon 2: after one example only 1 location
	// remains, fewer than the horizon. Must not fail.
	s := mustSpace(t, 2, 1)
	gt := firstCoordTruth(t, s)
	model := learner.NewBaseline(s, 0.5)
	teach := NewOptimal(s, gt, model)

	history := session.NewHistory(model.Prior())
	first, err := teach.NextExample(context.Background(), history)
	if err != nil {
		t.Fatalf("first example: %v", err)
	}
	history.AddExample(first)

	second, err := teach.NextExample(context.Background(), history)
	if err != nil {
		t.Fatalf("second example with 1 < horizon remaining: %v", err)
	}
	if second.Loc.Equal(first.Loc) {
		t.Error("second example repeats the first location")
	}
}

// #region brute-force

// majorityModel memorizes taught cells and predicts the majority
// taught label everywhere else (ties and empty history go to 0). The
// analytically checkable model from the small-case correctness test.
type majorityModel struct {
	space grid.Space
}

func (m *majorityModel) Name() string { return "majority" }

func (m *majorityModel) Prior() []float64 {
	return make([]float64, m.space.Size())
}

func (m *majorityModel) PredictGrid(_ context.Context, examples []grid.Example) (learner.PredictionResult, error) {
	ones := 0
	for _, ex := range examples {
		ones += ex.Label
	}
	fill := 0
	if 2*ones > len(examples) {
		fill = 1
	}

	prediction := make([]int, m.space.Size())
	for i := range prediction {
		prediction[i] = fill
	}
	for _, ex := range examples {
		prediction[m.space.Index(ex.Loc)] = ex.Label
	}
	return learner.PredictionResult{Prediction: prediction}, nil
}

// bruteForceFirstPick independently reimplements the receding-horizon
// rule by direct enumeration: best pair by minimum error (first
// encountered wins), then best singleton within that pair.
func bruteForceFirstPick(t *testing.T, s grid.Space, gt truth.GroundTruth, model learner.UserModel) grid.Location {
	t.Helper()
	locs := s.Enumerate()

	score := func(cand ...grid.Location) float64 {
		examples := make([]grid.Example, len(cand))
		for i, loc := range cand {
			examples[i] = grid.Example{Loc: loc, Label: gt.At(loc)}
		}
		result, err := model.PredictGrid(context.Background(), examples)
		if err != nil {
			t.Fatalf("predict: %v", err)
		}
		return gt.PredictionError(result.Prediction)
	}

	var bestPair []grid.Location
	bestErr := 0.0
	for i := 0; i < len(locs); i++ {
		for j := i + 1; j < len(locs); j++ {
			e := score(locs[i], locs[j])
			if bestPair == nil || e < bestErr {
				bestPair = []grid.Location{locs[i], locs[j]}
				bestErr = e
			}
		}
	}

	best := bestPair[0]
	if score(bestPair[1]) < score(bestPair[0]) {
		best = bestPair[1]
	}
	return best
}

func TestOptimalFirstPickMatchesBruteForce(t *testing.T) {
	s := mustSpace(t, 2, 2)
	gt := firstCoordTruth(t, s)
	model := &majorityModel{space: s}

	teach := NewOptimal(s, gt, model)
	got, err := teach.NextExample(context.Background(), session.NewHistory(model.Prior()))
	if err != nil {
		t.Fatalf("next example: %v", err)
	}

	want := bruteForceFirstPick(t, s, gt, model)
	if !got.Loc.Equal(want) {
		t.Errorf("first pick %v, brute force says %v", got.Loc, want)
	}
	if got.Label != gt.At(got.Loc) {
		t.Errorf("pick labeled %d, truth says %d", got.Label, gt.At(got.Loc))
	}
}

// #endregion brute-force

// failingModel returns an error from every prediction.
type failingModel struct {
	space grid.Space
	err   error
}

func (f *failingModel) Name() string      { return "failing" }
func (f *failingModel) Prior() []float64  { return make([]float64, f.space.Size()) }
func (f *failingModel) PredictGrid(_ context.Context, _ []grid.Example) (learner.PredictionResult, error) {
	return learner.PredictionResult{}, f.err
}

func TestOptimalPropagatesModelError(t *testing.T) {
	s := mustSpace(t, 2, 2)
	gt := firstCoordTruth(t, s)
	modelErr := errors.New("inference backend unavailable")
	teach := NewOptimal(s, gt, &failingModel{space: s, err: modelErr})

	_, err := teach.NextExample(context.Background(), session.NewHistory(nil))
	if !errors.Is(err, modelErr) {
		t.Errorf("expected model error to propagate, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	s := mustSpace(t, 2, 2)
	gt := firstCoordTruth(t, s)
	model := learner.NewBaseline(s, 0.5)

	tests := []struct {
		name    string
		id      ID
		model   learner.UserModel
		rng     *rand.Rand
		wantErr bool
	}{
		{"random", IDRandom, nil, rand.New(rand.NewSource(1)), false},
		{"random-no-rng", IDRandom, nil, nil, true},
		{"raster", IDRaster, nil, nil, false},
		{"optimal", IDOptimal, model, nil, false},
		{"optimal-no-model", IDOptimal, nil, nil, true},
		{"unknown", ID("beam"), nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teach, err := New(tt.id, s, gt, tt.model, tt.rng)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if teach.Name() != string(tt.id) {
				t.Errorf("name = %q, want %q", teach.Name(), tt.id)
			}
		})
	}
}
