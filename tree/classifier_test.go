package tree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlattner/rfsplit/splitter"
)

// xorDataset is an XOR pattern with one point moved off the grid
// ({0.2, 0.9}): on a perfectly balanced XOR every single split leaves the
// impurity unchanged, the splitter reports no split, and the root would
// stay a leaf.
func xorDataset() ([][]float64, []int) {
	X := [][]float64{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{0.1, 0.1}, {0.2, 0.9}, {0.9, 0.1}, {0.9, 0.9},
	}
	y := []int{0, 1, 1, 0, 0, 1, 1, 0}
	return X, y
}

func TestClassifierFitPredict(t *testing.T) {
	X, y := xorDataset()

	clf := NewClassifier(MinLeaf(1), MinSplit(2))
	require.NoError(t, clf.Fit(X, y))

	pred, err := clf.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, y, pred, "a full-depth tree should perfectly fit a tiny, noiseless XOR dataset")
}

func TestClassifierPredictProbaSumsToOne(t *testing.T) {
	X, y := xorDataset()
	clf := NewClassifier()
	require.NoError(t, clf.Fit(X, y))

	proba, err := clf.PredictProba(X)
	require.NoError(t, err)
	for i, row := range proba {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row %d probabilities should sum to 1", i)
	}
}

func TestClassifierNotFittedBeforeFit(t *testing.T) {
	clf := NewClassifier()
	_, err := clf.Predict([][]float64{{0, 0}})
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestClassifierEmptyDataset(t *testing.T) {
	clf := NewClassifier()
	err := clf.Fit(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestClassifierRowMismatch(t *testing.T) {
	clf := NewClassifier()
	err := clf.Fit([][]float64{{0}, {1}}, []int{0})
	assert.ErrorIs(t, err, ErrRowMismatch)
}

func TestClassifierImportanceSumsToOne(t *testing.T) {
	X, y := xorDataset()
	clf := NewClassifier()
	require.NoError(t, clf.Fit(X, y))

	imp := clf.Importance()
	sum := 0.0
	for _, v := range imp {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestClassifierSaveLoad(t *testing.T) {
	X, y := xorDataset()
	clf := NewClassifier()
	require.NoError(t, clf.Fit(X, y))

	var buf bytes.Buffer
	require.NoError(t, clf.Save(&buf))

	loaded := NewClassifier()
	require.NoError(t, loaded.Load(&buf))

	want, err := clf.Predict(X)
	require.NoError(t, err)
	got, err := loaded.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClassifierEntropyCriterion(t *testing.T) {
	X, y := xorDataset()
	clf := NewClassifier(Criterion(splitter.Entropy))
	require.NoError(t, clf.Fit(X, y))

	pred, err := clf.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, y, pred)
}

func TestClassifierMaxDepthStumpIsNotPerfect(t *testing.T) {
	X, y := xorDataset()
	clf := NewClassifier(MaxDepth(1))
	require.NoError(t, clf.Fit(X, y))

	pred, err := clf.Predict(X)
	require.NoError(t, err)
	// a depth-1 stump cannot separate XOR; it must misclassify at least one row.
	mismatches := 0
	for i := range y {
		if pred[i] != y[i] {
			mismatches++
		}
	}
	assert.Greater(t, mismatches, 0)
}
