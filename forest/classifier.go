package forest

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"

	"github.com/google/uuid"

	"github.com/wlattner/rfsplit/tree"
)

// Classifier is a bootstrap-aggregated ensemble of tree.Classifier.
// Construct with NewClassifier.
type Classifier struct {
	Config
	ID              string
	NClasses        int
	Trees           []*tree.Classifier
	Importance      []float64
	OOBError        float64
	ConfusionMatrix [][]int
	fitted          bool
}

// NewClassifier returns a configured random forest classifier, assigning
// it a fresh UUID. With no options, it is equivalent to:
//
//	NewClassifier(NTrees(500), MinSplit(2), MinLeaf(1), MaxDepth(0), MaxFeatures(-1), Criterion(splitter.Gini))
func NewClassifier(opts ...Option) *Classifier {
	f := &Classifier{Config: defaultConfig(), ID: uuid.New().String()}
	for _, opt := range opts {
		opt(&f.Config)
	}
	return f
}

type classifierJob struct {
	i    int
	seed int64
}

type classifierResult struct {
	i     int
	t     *tree.Classifier
	inBag []bool
	err   error
}

// Fit bootstraps NTrees training sets from X and integer class ids y, fits
// one tree.Classifier per sample across NWorkers goroutines (the teacher's
// channel-based worker pool), and aggregates out-of-bag predictions into
// OOBError and ConfusionMatrix.
func (f *Classifier) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return ErrEmptyDataset
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: X has %d rows, y has %d", ErrRowMismatch, len(X), len(y))
	}

	nClasses := 0
	for _, v := range y {
		if v+1 > nClasses {
			nClasses = v + 1
		}
	}
	f.NClasses = nClasses

	nFeatures := len(X[0])
	maxFeatures := f.Config.MaxFeatures
	if maxFeatures < 0 {
		maxFeatures = int(math.Sqrt(float64(nFeatures)))
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

	jobs := make(chan classifierJob)
	results := make(chan classifierResult)

	go func() {
		for i := 0; i < nTrees; i++ {
			jobs <- classifierJob{i: i, seed: f.Config.RandSeed + int64(i) + 1}
		}
		close(jobs)
	}()

	for w := 0; w < nWorkers; w++ {
		go func() {
			for j := range jobs {
				rng := rand.New(rand.NewSource(j.seed))
				trainIdx, inBag := drawSample(len(X), f.Config.SampleSize, rng)

				clf := tree.NewClassifier(f.Config.treeOptions(j.seed, maxFeatures)...)
				clf.NClasses = nClasses
				err := clf.Fit(rowsAt(X, trainIdx), intsAt(y, trainIdx))

				results <- classifierResult{i: j.i, t: clf, inBag: inBag, err: err}
			}
		}()
	}

	trees := make([]*tree.Classifier, nTrees)
	oobVotes := make([][]int, len(X))
	for i := range oobVotes {
		oobVotes[i] = make([]int, nClasses)
	}

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
				oobVotes[rowIdx][pred[k]]++
			}
		}
	}
	if fitErr != nil {
		return fitErr
	}

	f.Trees = trees
	f.Importance = aggregateImportance(treeImporters(trees), nFeatures)
	f.ConfusionMatrix, f.OOBError = computeOOBClassification(oobVotes, y, nClasses)
	f.fitted = true
	return nil
}

// Predict returns the majority-vote class id for each row of X.
func (f *Classifier) Predict(X [][]float64) ([]int, error) {
	if !f.fitted {
		return nil, ErrNotFitted
	}

	votes := make([][]int, len(X))
	for i := range votes {
		votes[i] = make([]int, f.NClasses)
	}

	for _, t := range f.Trees {
		pred, err := t.Predict(X)
		if err != nil {
			return nil, err
		}
		for i, class := range pred {
			votes[i][class]++
		}
	}

	out := make([]int, len(X))
	for i, row := range votes {
		out[i] = argmax(row)
	}
	return out, nil
}

// PredictProba returns the per-class probability for each row of X: the
// mean over member trees of each tree's leaf class distribution.
func (f *Classifier) PredictProba(X [][]float64) ([][]float64, error) {
	if !f.fitted {
		return nil, ErrNotFitted
	}

	probs := make([][]float64, len(X))
	for i := range probs {
		probs[i] = make([]float64, f.NClasses)
	}

	for _, t := range f.Trees {
		tProbs, err := t.PredictProba(X)
		if err != nil {
			return nil, err
		}
		for row := range tProbs {
			for class := range tProbs[row] {
				probs[row][class] += tProbs[row][class] / float64(len(f.Trees))
			}
		}
	}
	return probs, nil
}

// classifierState is the gob-safe projection of Classifier. tree.Classifier
// carries its node array in an unexported field and a func field in its
// embedded Config, neither of which encoding/gob can reach directly, so
// each tree is round-tripped through its own working Save/Load instead of
// being gob-encoded in place.
type classifierState struct {
	ID              string
	Config          Config
	NClasses        int
	Trees           [][]byte
	Importance      []float64
	OOBError        float64
	ConfusionMatrix [][]int
}

// Save serializes the fitted forest with encoding/gob, delegating each
// member tree to tree.Classifier.Save.
func (f *Classifier) Save(w io.Writer) error {
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

	return gob.NewEncoder(w).Encode(classifierState{
		ID:              f.ID,
		Config:          f.Config,
		NClasses:        f.NClasses,
		Trees:           treeBlobs,
		Importance:      f.Importance,
		OOBError:        f.OOBError,
		ConfusionMatrix: f.ConfusionMatrix,
	})
}

// Load deserializes a forest previously written with Save.
func (f *Classifier) Load(r io.Reader) error {
	var s classifierState
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return err
	}

	trees := make([]*tree.Classifier, len(s.Trees))
	for i, blob := range s.Trees {
		t := &tree.Classifier{}
		if err := t.Load(bytes.NewReader(blob)); err != nil {
			return err
		}
		trees[i] = t
	}

	f.ID = s.ID
	f.Config = s.Config
	f.NClasses = s.NClasses
	f.Trees = trees
	f.Importance = s.Importance
	f.OOBError = s.OOBError
	f.ConfusionMatrix = s.ConfusionMatrix
	f.fitted = true
	return nil
}

func intsAt(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}

func argmax(v []int) int {
	best := 0
	for i, x := range v {
		if x > v[best] {
			best = i
		}
	}
	return best
}

func computeOOBClassification(votes [][]int, y []int, nClasses int) ([][]int, float64) {
	confMat := make([][]int, nClasses)
	for i := range confMat {
		confMat[i] = make([]int, nClasses)
	}

	scored := 0
	correct := 0
	for i, actual := range y {
		total := 0
		for _, v := range votes[i] {
			total += v
		}
		if total == 0 {
			continue // never out-of-bag for any tree
		}
		pred := argmax(votes[i])
		confMat[actual][pred]++
		scored++
		if pred == actual {
			correct++
		}
	}

	if scored == 0 {
		return confMat, 0
	}
	return confMat, 1 - float64(correct)/float64(scored)
}
