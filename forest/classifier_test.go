package forest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifierFitPredictIris(t *testing.T) {
	clf := NewClassifier(NTrees(20), RandSeed(7))
	require.NoError(t, clf.Fit(irisX, irisY))

	pred, err := clf.Predict(irisX)
	require.NoError(t, err)

	correct := 0
	for i := range irisY {
		if pred[i] == irisY[i] {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(irisY))
	assert.GreaterOrEqual(t, accuracy, 0.95, "in-bag accuracy on iris should be near-perfect")
}

func TestClassifierOOBErrorIsReasonable(t *testing.T) {
	clf := NewClassifier(NTrees(50), RandSeed(3))
	require.NoError(t, clf.Fit(irisX, irisY))

	assert.Less(t, clf.OOBError, 0.15)
	assert.Len(t, clf.ConfusionMatrix, clf.NClasses)
}

func TestClassifierPredictProbaSumsToOne(t *testing.T) {
	clf := NewClassifier(NTrees(10))
	require.NoError(t, clf.Fit(irisX, irisY))

	proba, err := clf.PredictProba(irisX)
	require.NoError(t, err)
	for i, row := range proba {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row %d", i)
	}
}

func TestClassifierImportanceSumsToOne(t *testing.T) {
	clf := NewClassifier(NTrees(10))
	require.NoError(t, clf.Fit(irisX, irisY))

	sum := 0.0
	for _, v := range clf.Importance {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestClassifierSaveLoad(t *testing.T) {
	clf := NewClassifier(NTrees(10), RandSeed(1))
	require.NoError(t, clf.Fit(irisX, irisY))

	var buf bytes.Buffer
	require.NoError(t, clf.Save(&buf))

	loaded := &Classifier{}
	require.NoError(t, loaded.Load(&buf))

	want, err := clf.Predict(irisX)
	require.NoError(t, err)
	got, err := loaded.Predict(irisX)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClassifierNotFittedBeforePredict(t *testing.T) {
	clf := NewClassifier()
	_, err := clf.Predict(irisX)
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

func TestClassifierSubsampleBagging(t *testing.T) {
	clf := NewClassifier(NTrees(10), SampleSize(len(irisX)/2), RandSeed(5))
	require.NoError(t, clf.Fit(irisX, irisY))

	pred, err := clf.Predict(irisX)
	require.NoError(t, err)
	assert.Len(t, pred, len(irisY))
}
