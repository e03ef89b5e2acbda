package splitter

import "testing"

// TestApplyTree checks invariant 7: apply_tree composed with tree descent
// matches an independently written oracle.
func TestApplyTree(t *testing.T) {
	// root splits on feature 0 at 1.5; left leaf is node 1, right leaf node 2.
	nodes := []Node{
		{Feature: 0, Threshold: 1.5, Left: 1, Right: 2},
		{Left: -1, Right: -1, Value: []float64{1, 0}},
		{Left: -1, Right: -1, Value: []float64{0, 1}},
	}
	X := mustMatrix(t, [][]float64{{0.0}, {1.0}, {2.0}, {3.0}})

	oracle := func(x float64) int {
		if x <= 1.5 {
			return 1
		}
		return 2
	}

	for r := 0; r < X.Rows(); r++ {
		got := ApplyTree(nodes, X, r)
		want := oracle(X.At(r, 0))
		if got != want {
			t.Errorf("row %d: ApplyTree = %d, want %d", r, got, want)
		}
	}
}

func TestPredictTreeAll(t *testing.T) {
	nodes := []Node{
		{Feature: 0, Threshold: 1.5, Left: 1, Right: 2},
		{Left: -1, Right: -1, Value: []float64{1, 0}},
		{Left: -1, Right: -1, Value: []float64{0, 1}},
	}
	X := mustMatrix(t, [][]float64{{0.0}, {3.0}})
	pred := NewMatrix(2, 2)

	PredictTreeAll(nodes, X, pred)

	if pred.At(0, 0) != 1 || pred.At(0, 1) != 0 {
		t.Errorf("row 0 prediction = (%v,%v), want (1,0)", pred.At(0, 0), pred.At(0, 1))
	}
	if pred.At(1, 0) != 0 || pred.At(1, 1) != 1 {
		t.Errorf("row 1 prediction = (%v,%v), want (0,1)", pred.At(1, 0), pred.At(1, 1))
	}
}

func TestApplyTreeAll(t *testing.T) {
	nodes := []Node{
		{Feature: 0, Threshold: 1.5, Left: 1, Right: 2},
		{Left: -1, Right: -1, Value: []float64{1, 0}},
		{Left: -1, Right: -1, Value: []float64{0, 1}},
	}
	X := mustMatrix(t, [][]float64{{0.0}, {1.0}, {2.0}, {3.0}})
	out := make([]int, X.Rows())

	ApplyTreeAll(nodes, X, out)

	want := []int{1, 1, 2, 2}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("row %d: ApplyTreeAll = %d, want %d", i, out[i], w)
		}
	}
}
