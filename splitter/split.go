package splitter

import (
	"math"
	"math/rand"
)

// Split is the result of a split search: Feature is -1 when no candidate
// beat the node's own impurity (a pure node, or every candidate violated
// MinLeaf).
type Split struct {
	Feature      int
	Threshold    float64
	BestError    float64
	InitialError float64
}

func noSplit(initialErr float64) Split {
	return Split{Feature: -1, Threshold: math.Inf(1), BestError: initialErr, InitialError: initialErr}
}

// candidateFeatures returns the feature indices to sweep: every column in
// natural order when maxFeatures is out of [0,D), otherwise the first
// maxFeatures entries of a uniform random permutation of [0,D). The RNG is
// advanced exactly once for this permutation, matching the determinism
// contract shared by FindBestSplit and FindBestRandomSplit.
func candidateFeatures(d, maxFeatures int, rng *rand.Rand) []int {
	if maxFeatures < 0 || maxFeatures >= d {
		out := make([]int, d)
		for i := range out {
			out[i] = i
		}
		return out
	}

	perm := rng.Perm(d)
	return perm[:maxFeatures]
}

// FindBestSplit performs an exhaustive sweep over (feature, threshold) pairs
// using the presorted index in argsorted, returning the feature and
// threshold that minimize crit's impurity over mask subject to minLeaf.
//
// Preconditions: nSamples == mask.Count() > 0; every column of argsorted
// lists every row of the dataset, masked or not.
func FindBestSplit(X *Matrix, y *Tensor, argsorted *ArgSorted, mask SampleMask,
	nSamples, minLeaf, maxFeatures int, crit Criterion, rng *rand.Rand) Split {

	crit.Init(y, mask, nSamples, X.Rows())
	initialErr := crit.Eval()
	if initialErr == 0 {
		return Split{Feature: -1, Threshold: math.Inf(1), BestError: 0, InitialError: 0}
	}

	best := noSplit(initialErr)

	for _, feat := range candidateFeatures(X.Cols(), maxFeatures, rng) {
		crit.Reset()

		xCol := X.Col(feat)
		argCol := argsorted.Col(feat)

		a := firstMasked(argCol, mask)
		if a < 0 {
			continue
		}

		for {
			b := SmallestSampleLargerThan(a, xCol, argCol, mask)
			if b < 0 {
				break
			}

			nLeft := crit.Update(a, b, y, argCol, mask)
			nRight := nSamples - nLeft

			if nLeft < minLeaf || nRight < minLeaf {
				a = b
				continue
			}

			errVal := crit.Eval()
			if errVal < best.BestError {
				lo, hi := xCol[argCol[a]], xCol[argCol[b]]
				t := lo + (hi-lo)/2.0
				if t == hi {
					t = lo
				}

				best.Feature = feat
				best.Threshold = t
				best.BestError = errVal
			}

			a = b
		}
	}

	return best
}

// FindBestRandomSplit draws one uniformly random threshold per candidate
// feature (inside that feature's masked range) rather than sweeping every
// admissible threshold. After the candidate-feature draw, the RNG is
// advanced once per candidate feature whose masked values are not all
// equal, in candidate order; other features are skipped without a draw.
func FindBestRandomSplit(X *Matrix, y *Tensor, argsorted *ArgSorted, mask SampleMask,
	nSamples, minLeaf, maxFeatures int, crit Criterion, rng *rand.Rand) Split {

	crit.Init(y, mask, nSamples, X.Rows())
	initialErr := crit.Eval()
	if initialErr == 0 {
		return Split{Feature: -1, Threshold: math.Inf(1), BestError: 0, InitialError: 0}
	}

	best := noSplit(initialErr)

	for _, feat := range candidateFeatures(X.Cols(), maxFeatures, rng) {
		xCol := X.Col(feat)
		argCol := argsorted.Col(feat)

		a := firstMasked(argCol, mask)
		b := lastMasked(argCol, mask)
		if a < 0 || b <= a {
			continue
		}

		lo, hi := xCol[argCol[a]], xCol[argCol[b]]
		if lo == hi {
			continue
		}

		u := rng.Float64()
		t := lo + u*(hi-lo)
		if t >= hi {
			t = lo
		}

		c := a + 1
		for c < b {
			s := argCol[c]
			if mask[s] && xCol[s] > t {
				break
			}
			c++
		}

		crit.Reset()
		nLeft := crit.Update(0, c, y, argCol, mask)
		nRight := nSamples - nLeft

		if nLeft < minLeaf || nRight < minLeaf {
			continue
		}

		errVal := crit.Eval()
		if errVal < best.BestError {
			best.Feature = feat
			best.Threshold = t
			best.BestError = errVal
		}
	}

	return best
}
