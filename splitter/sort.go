package splitter

// argSortFloat64 sorts x ascending, permuting idx in lockstep so that, on
// return, x[k] is the k'th smallest original value and idx[k] is the row
// that value came from. idx must start as the identity permutation.
//
// Adapted from the median-of-three quicksort (with heapsort fallback and
// insertion sort for short ranges) of older Go standard library sort
// packages; specializing it to operate directly on a []float64/[]int32 pair
// avoids the interface dispatch of sort.Interface when BuildArgSorted sorts
// every column of X.
func argSortFloat64(x []float64, idx []int32) {
	n := len(idx)
	maxDepth := 0
	for i := n; i > 0; i >>= 1 {
		maxDepth++
	}
	maxDepth *= 2
	quickSortF(x, idx, 0, n, maxDepth)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func swapF(x []float64, idx []int32, i, j int) {
	x[i], x[j] = x[j], x[i]
	idx[i], idx[j] = idx[j], idx[i]
}

func insertionSortF(x []float64, idx []int32, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && x[j] < x[j-1]; j-- {
			swapF(x, idx, j, j-1)
		}
	}
}

func siftDownF(x []float64, idx []int32, lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && x[first+child] < x[first+child+1] {
			child++
		}
		if !(x[first+root] < x[first+child]) {
			return
		}
		swapF(x, idx, first+root, first+child)
		root = child
	}
}

func heapSortF(x []float64, idx []int32, a, b int) {
	first := a
	lo := 0
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDownF(x, idx, i, hi, first)
	}

	for i := hi - 1; i >= 0; i-- {
		swapF(x, idx, first, first+i)
		siftDownF(x, idx, lo, i, first)
	}
}

func medianOfThreeF(x []float64, idx []int32, a, b, c int) {
	m0, m1, m2 := b, a, c
	if x[m1] < x[m0] {
		swapF(x, idx, m1, m0)
	}
	if x[m2] < x[m1] {
		swapF(x, idx, m2, m1)
	}
	if x[m1] < x[m0] {
		swapF(x, idx, m1, m0)
	}
}

func swapRangeF(x []float64, idx []int32, a, b, n int) {
	for i := 0; i < n; i++ {
		swapF(x, idx, a+i, b+i)
	}
}

func doPivotF(x []float64, idx []int32, lo, hi int) (midlo, midhi int) {
	m := lo + (hi-lo)/2
	if hi-lo > 40 {
		s := (hi - lo) / 8
		medianOfThreeF(x, idx, lo, lo+s, lo+2*s)
		medianOfThreeF(x, idx, m, m-s, m+s)
		medianOfThreeF(x, idx, hi-1, hi-1-s, hi-1-2*s)
	}
	medianOfThreeF(x, idx, lo, m, hi-1)

	pivot := lo
	a, b, c, d := lo+1, lo+1, hi, hi
	for {
		for b < c {
			if x[b] < x[pivot] {
				b++
			} else if !(x[pivot] < x[b]) {
				swapF(x, idx, a, b)
				a++
				b++
			} else {
				break
			}
		}
		for b < c {
			if x[pivot] < x[c-1] {
				c--
			} else if !(x[c-1] < x[pivot]) {
				swapF(x, idx, c-1, d-1)
				c--
				d--
			} else {
				break
			}
		}
		if b >= c {
			break
		}
		swapF(x, idx, b, c-1)
		b++
		c--
	}

	n := minInt(b-a, a-lo)
	swapRangeF(x, idx, lo, b-n, n)

	n = minInt(hi-d, d-c)
	swapRangeF(x, idx, c, hi-n, n)

	return lo + b - a, hi - (d - c)
}

func quickSortF(x []float64, idx []int32, a, b, maxDepth int) {
	for b-a > 7 {
		if maxDepth == 0 {
			heapSortF(x, idx, a, b)
			return
		}
		maxDepth--
		mlo, mhi := doPivotF(x, idx, a, b)
		if mlo-a < b-mhi {
			quickSortF(x, idx, a, mlo, maxDepth)
			a = mhi
		} else {
			quickSortF(x, idx, mhi, b, maxDepth)
			b = mlo
		}
	}
	if b-a > 1 {
		insertionSortF(x, idx, a, b)
	}
}
