package forest

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"math/rand"
	"runtime"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/wlattner/rfsplit/tree"
)

// Regressor is a bootstrap-aggregated ensemble of tree.Regressor.
// Construct with NewRegressor.
type Regressor struct {
	Config
	ID         string
	Trees      []*tree.Regressor
	Importance []float64
	MSE        float64
	RSquared   float64
	fitted     bool
}

// NewRegressor returns a configured random forest regressor, assigning it
// a fresh UUID. With no options, it is equivalent to:
//
//	NewRegressor(NTrees(500), MinSplit(2), MinLeaf(1), MaxDepth(0), MaxFeatures(-1))
func NewRegressor(opts ...Option) *Regressor {
	f := &Regressor{Config: defaultConfig(), ID: uuid.New().String()}
	for _, opt := range opts {
		opt(&f.Config)
	}
	return f
}

type regressorJob struct {
	i    int
	seed int64
}

type regressorResult struct {
	i     int
	t     *tree.Regressor
	inBag []bool
	err   error
}

// Fit bootstraps NTrees training sets from X and single-output targets y,
// fits one tree.Regressor per sample across NWorkers goroutines, and
// aggregates out-of-bag predictions into MSE and RSquared, the latter
// computed via gonum's mat.VecDense dot products rather than hand-rolled
// sums.
func (f *Regressor) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return ErrEmptyDataset
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: X has %d rows, y has %d", ErrRowMismatch, len(X), len(y))
	}

	nFeatures := len(X[0])
	maxFeatures := f.Config.MaxFeatures
	if maxFeatures < 0 {
		maxFeatures = nFeatures / 3
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}

	nTrees := f.Config.NTrees
	if nTrees < 1 {
		nTrees = 500
	}

	nWorkers := f.Config.NWorkers
	if nWorkers < 1 {
		nWorkers = runtime.NumCPU()
	}

	y2D := make([][]float64, len(y))
	for i, v := range y {
		y2D[i] = []float64{v}
	}

	jobs := make(chan regressorJob)
	results := make(chan regressorResult)

	go func() {
		for i := 0; i < nTrees; i++ {
			jobs <- regressorJob{i: i, seed: f.Config.RandSeed + int64(i) + 1}
		}
		close(jobs)
	}()

	for w := 0; w < nWorkers; w++ {
		go func() {
			for j := range jobs {
				rng := rand.New(rand.NewSource(j.seed))
				trainIdx, inBag := drawSample(len(X), f.Config.SampleSize, rng)

				reg := tree.NewRegressor(f.Config.treeOptions(j.seed, maxFeatures)...)
				err := reg.Fit(rowsAt(X, trainIdx), rowsAt(y2D, trainIdx))

				results <- regressorResult{i: j.i, t: reg, inBag: inBag, err: err}
			}
		}()
	}

	trees := make([]*tree.Regressor, nTrees)
	oobSum := make([]float64, len(X))
	oobCount := make([]int, len(X))

	var fitErr error
	for i := 0; i < nTrees; i++ {
		r := <-results
		if r.err != nil {
			if fitErr == nil {
				fitErr = r.err
			}
			continue
		}
		trees[r.i] = r.t

		oob := oobIndices(r.inBag)
		if len(oob) > 0 {
			pred, _ := r.t.Predict(rowsAt(X, oob))
			for k, rowIdx := range oob {
				oobSum[rowIdx] += pred[k][0]
				oobCount[rowIdx]++
			}
		}
	}
	if fitErr != nil {
		return fitErr
	}

	f.Trees = trees
	f.Importance = aggregateImportance(treeImporters(trees), nFeatures)
	f.MSE, f.RSquared = computeOOBRegression(oobSum, oobCount, y)
	f.fitted = true
	return nil
}

// Predict returns the mean-of-trees prediction for each row of X.
func (f *Regressor) Predict(X [][]float64) ([]float64, error) {
	if !f.fitted {
		return nil, ErrNotFitted
	}

	sum := make([]float64, len(X))
	for _, t := range f.Trees {
		pred, err := t.Predict(X)
		if err != nil {
			return nil, err
		}
		for i, row := range pred {
			sum[i] += row[0]
		}
	}
	for i := range sum {
		sum[i] /= float64(len(f.Trees))
	}
	return sum, nil
}

// regressorState is the gob-safe projection of Regressor, for the same
// reason as classifierState: each tree.Regressor round-trips through its
// own Save/Load rather than being gob-encoded in place.
type regressorState struct {
	ID         string
	Config     Config
	Trees      [][]byte
	Importance []float64
	MSE        float64
	RSquared   float64
}

// Save serializes the fitted forest with encoding/gob, delegating each
// member tree to tree.Regressor.Save.
func (f *Regressor) Save(w io.Writer) error {
	if !f.fitted {
		return ErrNotFitted
	}

	treeBlobs := make([][]byte, len(f.Trees))
	for i, t := range f.Trees {
		var buf bytes.Buffer
		if err := t.Save(&buf); err != nil {
			return err
		}
		treeBlobs[i] = buf.Bytes()
	}

	return gob.NewEncoder(w).Encode(regressorState{
		ID:         f.ID,
		Config:     f.Config,
		Trees:      treeBlobs,
		Importance: f.Importance,
		MSE:        f.MSE,
		RSquared:   f.RSquared,
	})
}

// Load deserializes a forest previously written with Save.
func (f *Regressor) Load(r io.Reader) error {
	var s regressorState
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return err
	}

	trees := make([]*tree.Regressor, len(s.Trees))
	for i, blob := range s.Trees {
		t := &tree.Regressor{}
		if err := t.Load(bytes.NewReader(blob)); err != nil {
			return err
		}
		trees[i] = t
	}

	f.ID = s.ID
	f.Config = s.Config
	f.Trees = trees
	f.Importance = s.Importance
	f.MSE = s.MSE
	f.RSquared = s.RSquared
	f.fitted = true
	return nil
}

// computeOOBRegression reports MSE and R^2 from out-of-bag predictions,
// using gonum vectors for the residual and deviation dot products.
func computeOOBRegression(sum []float64, count []int, y []float64) (mse, rSquared float64) {
	var resid, dev []float64
	var actual []float64
	for i := range y {
		if count[i] < 1 {
			continue
		}
		pred := sum[i] / float64(count[i])
		resid = append(resid, y[i]-pred)
		actual = append(actual, y[i])
	}
	if len(actual) == 0 {
		return 0, 0
	}

	meanY := mat.Sum(mat.NewVecDense(len(actual), actual)) / float64(len(actual))
	dev = make([]float64, len(actual))
	for i, v := range actual {
		dev[i] = v - meanY
	}

	residVec := mat.NewVecDense(len(resid), resid)
	devVec := mat.NewVecDense(len(dev), dev)

	rss := mat.Dot(residVec, residVec)
	tss := mat.Dot(devVec, devVec)

	mse = rss / float64(len(actual))
	if tss == 0 {
		return mse, 0
	}
	return mse, 1 - rss/tss
}
