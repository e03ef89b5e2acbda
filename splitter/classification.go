package splitter

import "math"

// classificationCriterion tracks per-class sample counts on each side of a
// sweep. Gini and Entropy differ only in the impurity function applied to
// those counts.
type classificationCriterion struct {
	nClasses int
	impurity func(nSide int, counts []int32) float64

	labelCountInit  []int32
	labelCountLeft  []int32
	labelCountRight []int32

	nSamples, nLeft, nRight int
	posLast                 int
}

func newClassificationCriterion(nClasses int, impurity func(int, []int32) float64) *classificationCriterion {
	return &classificationCriterion{
		nClasses:        nClasses,
		impurity:        impurity,
		labelCountInit:  make([]int32, nClasses),
		labelCountLeft:  make([]int32, nClasses),
		labelCountRight: make([]int32, nClasses),
	}
}

func (c *classificationCriterion) Init(y *Tensor, mask SampleMask, nSamples, nTotal int) {
	for i := range c.labelCountInit {
		c.labelCountInit[i] = 0
	}

	for i := 0; i < nTotal; i++ {
		if mask[i] {
			c.labelCountInit[y.ClassID(i)]++
		}
	}

	c.nSamples = nSamples

	c.Reset()
}

func (c *classificationCriterion) Reset() {
	c.nLeft = 0
	c.nRight = c.nSamples
	for i := range c.labelCountLeft {
		c.labelCountLeft[i] = 0
	}
	copy(c.labelCountRight, c.labelCountInit)
	c.posLast = 0
}

func (c *classificationCriterion) Update(a, b int, y *Tensor, argsortedCol []int32, mask SampleMask) int {
	for k := c.posLast; k < b; k++ {
		s := argsortedCol[k]
		if !mask[s] {
			continue
		}
		cls := y.ClassID(int(s))

		c.nLeft++
		c.labelCountLeft[cls]++

		c.nRight--
		c.labelCountRight[cls]--
	}
	c.posLast = b
	_ = a // the running cursor makes a redundant once posLast tracks progress

	return c.nLeft
}

// Eval reports (impurityLeft + impurityRight) / n_samples. Both Gini and
// Entropy impurity functions below already fold in their side's sample
// count (G_side per the n_s term in its own definition, H_side via the
// n_side/n weight spelled out for entropy), so the two report the same way
// here.
func (c *classificationCriterion) Eval() float64 {
	iLeft := c.impurity(c.nLeft, c.labelCountLeft)
	iRight := c.impurity(c.nRight, c.labelCountRight)

	return (iLeft + iRight) / float64(c.nSamples)
}

func (c *classificationCriterion) InitValue() []float64 {
	out := make([]float64, c.nClasses)
	for i, v := range c.labelCountInit {
		out[i] = float64(v)
	}
	return out
}

// giniImpurity computes n_s - (sum_k c_k^2)/n_s, or 0 when n_s is 0.
func giniImpurity(n int, counts []int32) float64 {
	if n == 0 {
		return 0
	}
	sumSq := 0.0
	for _, c := range counts {
		if c > 0 {
			p := float64(c) / float64(n)
			sumSq += p * p
		}
	}
	return float64(n) * (1 - sumSq)
}

// entropyImpurity computes n_s * H_side, where H_side is
// -sum_k (c_k/n_s)*ln(c_k/n_s), skipping c_k=0, or 0 when n_s is 0.
func entropyImpurity(n int, counts []int32) float64 {
	if n == 0 {
		return 0
	}
	h := 0.0
	for _, c := range counts {
		if c > 0 {
			p := float64(c) / float64(n)
			h -= p * math.Log(p)
		}
	}
	return float64(n) * h
}
