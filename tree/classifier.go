package tree

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/wlattner/rfsplit/splitter"
)

// Classifier is a single decision tree classifier grown on top of package
// splitter. Construct with NewClassifier.
type Classifier struct {
	Config
	NClasses   int
	nodes      []splitter.Node
	importance []float64
	fitted     bool
}

// NewClassifier returns a configured decision tree classifier. With no
// options, it is equivalent to:
//
//	NewClassifier(MinSplit(2), MinLeaf(1), MaxDepth(0), MaxFeatures(-1), Criterion(splitter.Gini))
func NewClassifier(options ...Option) *Classifier {
	c := &Classifier{Config: defaultConfig()}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Fit grows the tree from features X and integer class ids y. Class ids
// must be in [0, nClasses). nClasses is inferred as max(y)+1 unless the
// classifier was configured with a larger count already set directly.
func (t *Classifier) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return ErrEmptyDataset
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: X has %d rows, y has %d", ErrRowMismatch, len(X), len(y))
	}

	nClasses := t.NClasses
	maxSeen := -1
	for _, v := range y {
		if v > maxSeen {
			maxSeen = v
		}
	}
	if maxSeen+1 > nClasses {
		nClasses = maxSeen + 1
	}
	t.NClasses = nClasses

	mat, err := splitter.NewMatrixFromRows(X)
	if err != nil {
		return err
	}
	arg := splitter.BuildArgSorted(mat)

	yFloat := make([]float64, len(y))
	for i, v := range y {
		yFloat[i] = float64(v)
	}
	yt := splitter.NewTensorFromColumn(yFloat)

	newCrit := func() splitter.Criterion {
		return splitter.NewCriterion(t.Config.Criterion, nClasses, 0, 0, 0)
	}

	t.nodes, t.importance = growTree(mat, yt, arg, t.Config, newCrit, normalizedLeaf)
	t.fitted = true
	return nil
}

// Predict returns the most probable class id for each row of X.
func (t *Classifier) Predict(X [][]float64) ([]int, error) {
	if !t.fitted {
		return nil, ErrNotFitted
	}
	mat, err := splitter.NewMatrixFromRows(X)
	if err != nil {
		return nil, err
	}

	out := make([]int, mat.Rows())
	for i := 0; i < mat.Rows(); i++ {
		out[i] = argmax(splitter.PredictTree(t.nodes, mat, i))
	}
	return out, nil
}

// PredictProba returns the per-class probability distribution for each row
// of X, indices corresponding to class ids [0, NClasses).
func (t *Classifier) PredictProba(X [][]float64) ([][]float64, error) {
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
func (t *Classifier) Importance() []float64 {
	out := make([]float64, len(t.importance))
	copy(out, t.importance)
	return out
}

// Save serializes the fitted classifier with encoding/gob. The configured
// Splitter func is not portable across a gob boundary and is dropped;
// Load restores splitter.FindBestSplit, which only matters if the loaded
// classifier is Fit again.
func (t *Classifier) Save(w io.Writer) error {
	if !t.fitted {
		return ErrNotFitted
	}
	return gob.NewEncoder(w).Encode(classifierState{
		Config:     t.Config.gob(),
		NClasses:   t.NClasses,
		Nodes:      t.nodes,
		Importance: t.importance,
	})
}

// Load deserializes a classifier previously written with Save.
func (t *Classifier) Load(r io.Reader) error {
	var s classifierState
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return err
	}
	t.Config = s.Config.toConfig()
	t.NClasses = s.NClasses
	t.nodes = s.Nodes
	t.importance = s.Importance
	t.fitted = true
	return nil
}

type classifierState struct {
	Config     configGob
	NClasses   int
	Nodes      []splitter.Node
	Importance []float64
}
