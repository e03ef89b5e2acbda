package tree

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/wlattner/rfsplit/splitter"
)

// Regressor is a single regression tree grown on top of package splitter,
// supporting multi-output targets (K1*K2*K3 per sample). Construct with
// NewRegressor.
type Regressor struct {
	Config
	K1, K2, K3 int
	nodes      []splitter.Node
	importance []float64
	fitted     bool
}

// NewRegressor returns a configured regression tree. With no options, it
// is equivalent to:
//
//	NewRegressor(MinSplit(2), MinLeaf(1), MaxDepth(0), MaxFeatures(-1))
func NewRegressor(options ...Option) *Regressor {
	r := &Regressor{Config: defaultConfig()}
	r.Config.Criterion = splitter.MSE
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Fit grows the tree from features X and targets y, a row-major
// (n, outLen) slab. A single-output regressor passes outLen=1 rows.
func (t *Regressor) Fit(X [][]float64, y [][]float64) error {
	if len(X) == 0 {
		return ErrEmptyDataset
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: X has %d rows, y has %d", ErrRowMismatch, len(X), len(y))
	}

	outLen := len(y[0])
	if t.K1 <= 0 {
		t.K1, t.K2, t.K3 = outLen, 1, 1
	}

	mat, err := splitter.NewMatrixFromRows(X)
	if err != nil {
		return err
	}
	arg := splitter.BuildArgSorted(mat)

	yt := splitter.NewTensor(len(y), t.K1, t.K2, t.K3)
	for i, row := range y {
		if len(row) != outLen {
			return fmt.Errorf("%w: row %d has %d outputs, want %d", ErrRowMismatch, i, len(row), outLen)
		}
		copy(yt.Sample(i), row)
	}

	newCrit := func() splitter.Criterion {
		return splitter.NewCriterion(splitter.MSE, 0, t.K1, t.K2, t.K3)
	}

	t.nodes, t.importance = growTree(mat, yt, arg, t.Config, newCrit, identityLeaf)
	t.fitted = true
	return nil
}

// Predict returns the per-output prediction for each row of X, a row-major
// (n, outLen) slab.
func (t *Regressor) Predict(X [][]float64) ([][]float64, error) {
	if !t.fitted {
		return nil, ErrNotFitted
	}
	mat, err := splitter.NewMatrixFromRows(X)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, mat.Rows())
	for i := 0; i < mat.Rows(); i++ {
		v := splitter.PredictTree(t.nodes, mat, i)
		row := make([]float64, len(v))
		copy(row, v)
		out[i] = row
	}
	return out, nil
}

// Importance returns the per-feature impurity-decrease importance
// accumulated during Fit, normalized to sum to 1.
func (t *Regressor) Importance() []float64 {
	out := make([]float64, len(t.importance))
	copy(out, t.importance)
	return out
}

// Save serializes the fitted regressor with encoding/gob.
func (t *Regressor) Save(w io.Writer) error {
	if !t.fitted {
		return ErrNotFitted
	}
	return gob.NewEncoder(w).Encode(regressorState{
		Config:     t.Config.gob(),
		K1:         t.K1,
		K2:         t.K2,
		K3:         t.K3,
		Nodes:      t.nodes,
		Importance: t.importance,
	})
}

// Load deserializes a regressor previously written with Save.
func (t *Regressor) Load(r io.Reader) error {
	var s regressorState
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return err
	}
	t.Config = s.Config.toConfig()
	t.K1, t.K2, t.K3 = s.K1, s.K2, s.K3
	t.nodes = s.Nodes
	t.importance = s.Importance
	t.fitted = true
	return nil
}

type regressorState struct {
	Config         configGob
	K1, K2, K3     int
	Nodes          []splitter.Node
	Importance     []float64
}
