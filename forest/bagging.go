package forest

import (
	"math/rand"

	"github.com/wlattner/rfsplit/splitter"
)

// drawSample selects the row indices one member tree trains on, and marks
// which rows were included ("in bag") so the complement can serve as that
// tree's out-of-bag evaluation set.
//
// When sampleSize is 0 or >= n, it draws n indices with replacement (the
// teacher's classic bootstrap). Otherwise it draws sampleSize distinct
// indices without replacement via splitter.RandomSampleMask, the engine's
// own reservoir sampler — a subsampled-without-replacement forest, as used
// by some extremely randomized tree variants.
func drawSample(n, sampleSize int, rng *rand.Rand) (trainIdx []int, inBag []bool) {
	if sampleSize <= 0 || sampleSize >= n {
		return bootstrapIndices(n, rng)
	}
	return subsampleIndices(n, sampleSize, rng)
}

func bootstrapIndices(n int, rng *rand.Rand) ([]int, []bool) {
	inBag := make([]bool, n)
	idx := make([]int, n)
	for i := range idx {
		j := rng.Intn(n)
		idx[i] = j
		inBag[j] = true
	}
	return idx, inBag
}

func subsampleIndices(n, sampleSize int, rng *rand.Rand) ([]int, []bool) {
	mask := splitter.RandomSampleMask(sampleSize, n, rng)
	idx := make([]int, 0, sampleSize)
	inBag := make([]bool, n)
	for i, in := range mask {
		if in {
			idx = append(idx, i)
			inBag[i] = true
		}
	}
	return idx, inBag
}

func oobIndices(inBag []bool) []int {
	var out []int
	for i, in := range inBag {
		if !in {
			out = append(out, i)
		}
	}
	return out
}

func rowsAt(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = X[j]
	}
	return out
}
