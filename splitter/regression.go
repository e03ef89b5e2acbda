package splitter

import "gonum.org/v1/gonum/floats"

// regressionCriterion maintains, for each of K1*K2*K3 outputs, a running mean
// and sum-of-squares on each side of a sweep, following the sse identity
// var = sq_sum - n*mean^2. MSE is the only variant today; the struct is
// named for the statistic it tracks rather than the impurity it reports, in
// case a future criterion (e.g. MAE) wants to reuse the same bookkeeping.
type regressionCriterion struct {
	outLen int

	meanInit, meanLeft, meanRight    []float64
	sqSumInit, sqSumLeft, sqSumRight []float64
	varLeft, varRight                []float64

	nSamples, nLeft, nRight int
	posLast                 int

	sampleBuf []float64
}

func newRegressionCriterion(k1, k2, k3 int) *regressionCriterion {
	if k1 <= 0 {
		k1 = 1
	}
	if k2 <= 0 {
		k2 = 1
	}
	if k3 <= 0 {
		k3 = 1
	}
	outLen := k1 * k2 * k3
	return &regressionCriterion{
		outLen:     outLen,
		meanInit:   make([]float64, outLen),
		meanLeft:   make([]float64, outLen),
		meanRight:  make([]float64, outLen),
		sqSumInit:  make([]float64, outLen),
		sqSumLeft:  make([]float64, outLen),
		sqSumRight: make([]float64, outLen),
		varLeft:    make([]float64, outLen),
		varRight:   make([]float64, outLen),
		sampleBuf:  make([]float64, outLen),
	}
}

func (c *regressionCriterion) Init(y *Tensor, mask SampleMask, nSamples, nTotal int) {
	for i := range c.meanInit {
		c.meanInit[i] = 0
		c.sqSumInit[i] = 0
	}

	for i := 0; i < nTotal; i++ {
		if !mask[i] {
			continue
		}
		v := y.Sample(i)
		floats.Add(c.meanInit, v)

		copy(c.sampleBuf, v)
		floats.Mul(c.sampleBuf, v)
		floats.Add(c.sqSumInit, c.sampleBuf)
	}

	c.nSamples = nSamples
	if nSamples > 0 {
		floats.Scale(1/float64(nSamples), c.meanInit)
	}

	c.Reset()
}

func (c *regressionCriterion) Reset() {
	c.nLeft = 0
	c.nRight = c.nSamples

	for i := 0; i < c.outLen; i++ {
		c.meanLeft[i] = 0
		c.sqSumLeft[i] = 0
		c.meanRight[i] = c.meanInit[i]
		c.sqSumRight[i] = c.sqSumInit[i]
		c.varLeft[i] = 0
		c.varRight[i] = c.sqSumRight[i] - float64(c.nRight)*c.meanRight[i]*c.meanRight[i]
	}
	c.posLast = 0
}

func (c *regressionCriterion) Update(a, b int, y *Tensor, argsortedCol []int32, mask SampleMask) int {
	for k := c.posLast; k < b; k++ {
		s := argsortedCol[k]
		if !mask[s] {
			continue
		}
		v := y.Sample(int(s))

		nR := c.nSamples - c.nLeft
		for o := 0; o < c.outLen; o++ {
			vo := v[o]
			c.sqSumLeft[o] += vo * vo
			c.sqSumRight[o] -= vo * vo

			c.meanLeft[o] = (float64(c.nLeft)*c.meanLeft[o] + vo) / float64(c.nLeft+1)
			c.meanRight[o] = (float64(nR)*c.meanRight[o] - vo) / float64(nR-1)
		}

		c.nLeft++
		c.nRight--
	}
	c.posLast = b
	_ = a

	for o := 0; o < c.outLen; o++ {
		c.varLeft[o] = c.sqSumLeft[o] - float64(c.nLeft)*c.meanLeft[o]*c.meanLeft[o]
		c.varRight[o] = c.sqSumRight[o] - float64(c.nRight)*c.meanRight[o]*c.meanRight[o]
	}

	return c.nLeft
}

func (c *regressionCriterion) Eval() float64 {
	return floats.Sum(c.varLeft) + floats.Sum(c.varRight)
}

func (c *regressionCriterion) InitValue() []float64 {
	out := make([]float64, c.outLen)
	copy(out, c.meanInit)
	return out
}
