package tree

import (
	"math/rand"

	"github.com/wlattner/rfsplit/splitter"
)

// frame is one pending node in the growth stack: the sample mask it owns,
// its depth, and the index it will occupy in the final node array.
type frame struct {
	mask     splitter.SampleMask
	nSamples int
	depth    int
	nodeIdx  int
}

// growTree grows one tree using an explicit stack of pending frames (the
// teacher's own build.go shape, generalized from index-partitioning to
// splitter's mask-partitioning), calling cfg.Splitter once per frame and
// leaf-valuing via the criterion's InitValue, post-processed by leafValue
// (raw class counts normalized to probabilities for classification, passed
// through unchanged for regression).
//
// Returns the flat node array (splitter.ApplyTree/PredictTree-compatible,
// root at index 0) and a per-feature impurity-decrease accumulator,
// normalized to sum to 1.
func growTree(X *splitter.Matrix, y *splitter.Tensor, arg *splitter.ArgSorted,
	cfg Config, newCriterion func() splitter.Criterion,
	leafValue func([]float64) []float64) ([]splitter.Node, []float64) {

	nTotal := X.Rows()
	importance := make([]float64, X.Cols())
	rng := rand.New(rand.NewSource(cfg.RandSeed))

	splitFn := cfg.Splitter
	if splitFn == nil {
		splitFn = splitter.FindBestSplit
	}

	nodes := make([]splitter.Node, 1)
	stack := []frame{{mask: splitter.NewSampleMaskAll(nTotal), nSamples: nTotal, depth: 0, nodeIdx: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		crit := newCriterion()

		forceLeaf := f.nSamples < cfg.MinSplit || (cfg.MaxDepth > 0 && f.depth >= cfg.MaxDepth)

		var sp splitter.Split
		if forceLeaf {
			crit.Init(y, f.mask, f.nSamples, nTotal)
			sp.Feature = -1
		} else {
			sp = splitFn(X, y, arg, f.mask, f.nSamples, cfg.MinLeaf, cfg.MaxFeatures, crit, rng)
		}

		if sp.Feature < 0 {
			nodes[f.nodeIdx] = splitter.Node{Left: -1, Right: -1, Value: leafValue(crit.InitValue())}
			continue
		}

		importance[sp.Feature] += float64(f.nSamples) * (sp.InitialError - sp.BestError)

		leftMask := make(splitter.SampleMask, nTotal)
		rightMask := make(splitter.SampleMask, nTotal)
		nLeft, nRight := 0, 0
		for i := 0; i < nTotal; i++ {
			if !f.mask[i] {
				continue
			}
			if X.At(i, sp.Feature) <= sp.Threshold {
				leftMask[i] = true
				nLeft++
			} else {
				rightMask[i] = true
				nRight++
			}
		}

		leftIdx := len(nodes)
		rightIdx := len(nodes) + 1
		nodes = append(nodes, splitter.Node{}, splitter.Node{})
		nodes[f.nodeIdx] = splitter.Node{Feature: sp.Feature, Threshold: sp.Threshold, Left: leftIdx, Right: rightIdx}

		stack = append(stack, frame{mask: rightMask, nSamples: nRight, depth: f.depth + 1, nodeIdx: rightIdx})
		stack = append(stack, frame{mask: leftMask, nSamples: nLeft, depth: f.depth + 1, nodeIdx: leftIdx})
	}

	total := 0.0
	for _, v := range importance {
		total += v
	}
	if total > 0 {
		for i := range importance {
			importance[i] /= total
		}
	}

	return nodes, importance
}

func identityLeaf(v []float64) []float64 { return v }

func normalizedLeaf(v []float64) []float64 {
	out := make([]float64, len(v))
	total := 0.0
	for _, c := range v {
		total += c
	}
	if total == 0 {
		return out
	}
	for i, c := range v {
		out[i] = c / total
	}
	return out
}

func argmax(v []float64) int {
	best := 0
	for i, x := range v {
		if x > v[best] {
			best = i
		}
	}
	return best
}
