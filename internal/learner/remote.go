package learner

import (
	"context"
	"fmt"
	"time"

	pb "github.com/algoteach/teachsim/gen/teachpb"
	"github.com/algoteach/teachsim/internal/grid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region remote

// Remote is a user model served by an external learner process over
// gRPC. The client fetches the model's name and prior once at
// construction; PredictGrid round-trips per call.
type Remote struct {
	conn   *grpc.ClientConn
	client pb.LearnerServiceClient
	space  grid.Space
	name   string
	prior  []float64
}

// #endregion remote

// #region constructor

// NewRemote connects to a learner service and fetches its prior for
// the given grid shape.
func NewRemote(addr string, space grid.Space) (*Remote, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	r := &Remote{conn: conn, client: pb.NewLearnerServiceClient(conn), space: space}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.fetchPrior(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return r, nil
}

// NewRemoteWithService creates a Remote with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewRemoteWithService(svc pb.LearnerServiceClient, space grid.Space) (*Remote, error) {
	r := &Remote{client: svc, space: space}
	if err := r.fetchPrior(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Remote) fetchPrior(ctx context.Context) error {
	resp, err := r.client.GetPrior(ctx, &pb.GetPriorRequest{Dims: dimsToInt32(r.space)})
	if err != nil {
		return fmt.Errorf("get prior rpc: %w", err)
	}
	if len(resp.Prior) != r.space.Size() {
		return fmt.Errorf("prior has %d cells, grid has %d", len(resp.Prior), r.space.Size())
	}
	r.name = resp.Name
	r.prior = make([]float64, len(resp.Prior))
	for i, p := range resp.Prior {
		r.prior[i] = float64(p)
	}
	return nil
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (r *Remote) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

// #endregion close

// #region model-interface

// Name returns the model name reported by the service.
func (r *Remote) Name() string { return r.name }

// Prior returns a copy of the service's initial belief grid.
func (r *Remote) Prior() []float64 {
	out := make([]float64, len(r.prior))
	copy(out, r.prior)
	return out
}

// PredictGrid sends the ordered example list to the learner service
// and returns its full-grid prediction. Service errors propagate
// unchanged to the caller, aborting the run.
func (r *Remote) PredictGrid(ctx context.Context, examples []grid.Example) (PredictionResult, error) {
	req := &pb.PredictGridRequest{
		Dims:     dimsToInt32(r.space),
		Examples: make([]*pb.Example, len(examples)),
	}
	for i, ex := range examples {
		coords := make([]int32, len(ex.Loc))
		for j, c := range ex.Loc {
			coords[j] = int32(c)
		}
		req.Examples[i] = &pb.Example{Coords: coords, Label: int32(ex.Label)}
	}

	resp, err := r.client.PredictGrid(ctx, req)
	if err != nil {
		return PredictionResult{}, fmt.Errorf("predict grid rpc: %w", err)
	}
	if len(resp.Prediction) != r.space.Size() {
		return PredictionResult{}, fmt.Errorf("prediction has %d cells, grid has %d", len(resp.Prediction), r.space.Size())
	}

	result := PredictionResult{Prediction: make([]int, len(resp.Prediction))}
	for i, p := range resp.Prediction {
		result.Prediction[i] = int(p)
	}
	if len(resp.Evaluation) > 0 {
		if len(resp.Evaluation) != r.space.Size() {
			return PredictionResult{}, fmt.Errorf("evaluation has %d cells, grid has %d", len(resp.Evaluation), r.space.Size())
		}
		result.Evaluation = make([]float64, len(resp.Evaluation))
		for i, e := range resp.Evaluation {
			result.Evaluation[i] = float64(e)
		}
	}
	return result, nil
}

// #endregion model-interface

// #region helpers

func dimsToInt32(space grid.Space) []int32 {
	dims := space.Dims()
	out := make([]int32, len(dims))
	for i, d := range dims {
		out[i] = int32(d)
	}
	return out
}

// #endregion helpers
