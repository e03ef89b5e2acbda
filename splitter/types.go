package splitter

import "fmt"

// ErrInvalidShape is returned when a caller-supplied array doesn't match the
// shape contract documented on Matrix, ArgSorted, or Tensor.
type ErrInvalidShape struct {
	Msg string
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("splitter: invalid shape: %s", e.Msg)
}

func invalidShape(format string, args ...interface{}) error {
	return &ErrInvalidShape{Msg: fmt.Sprintf(format, args...)}
}

// Matrix is a dense, column-major feature matrix of shape (NTotal, D). Column
// major storage gives the split sweep unit-stride access to a single feature
// column, which is the engine's hot path.
type Matrix struct {
	data    []float64
	n, d    int
}

// NewMatrix allocates a zeroed Matrix with n rows and d columns.
func NewMatrix(n, d int) *Matrix {
	return &Matrix{data: make([]float64, n*d), n: n, d: d}
}

// NewMatrixFromRows builds a column-major Matrix from row-major input, the
// layout most callers have on hand (e.g. a CSV-parsed [][]float64).
func NewMatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, invalidShape("X has zero rows")
	}
	n := len(rows)
	d := len(rows[0])
	m := NewMatrix(n, d)
	for i, row := range rows {
		if len(row) != d {
			return nil, invalidShape("X row %d has %d columns, want %d", i, len(row), d)
		}
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// Rows and Cols report the shape of the matrix.
func (m *Matrix) Rows() int { return m.n }
func (m *Matrix) Cols() int { return m.d }

// At returns X[i,j].
func (m *Matrix) At(i, j int) float64 { return m.data[j*m.n+i] }

// Set assigns X[i,j] = v.
func (m *Matrix) Set(i, j int, v float64) { m.data[j*m.n+i] = v }

// Col returns the unit-stride slice backing column j. Mutating it mutates the
// matrix.
func (m *Matrix) Col(j int) []float64 { return m.data[j*m.n : (j+1)*m.n] }

// ArgSorted is a dense, column-major matrix of shape (NTotal, D) where column
// j is a permutation of [0, NTotal) such that X[ArgSorted[k,j], j] is
// non-decreasing in k. It is computed once per dataset and reused for every
// node in every tree.
type ArgSorted struct {
	data []int32
	n, d int
}

// NewArgSorted allocates a zeroed ArgSorted with n rows and d columns.
func NewArgSorted(n, d int) *ArgSorted {
	return &ArgSorted{data: make([]int32, n*d), n: n, d: d}
}

// BuildArgSorted computes the presorted index for every column of X via a
// stable-enough sort (ties broken by original row order is not guaranteed,
// matching the engine's own tie handling via the epsilon collapse).
func BuildArgSorted(X *Matrix) *ArgSorted {
	a := NewArgSorted(X.Rows(), X.Cols())
	buf := make([]float64, X.Rows())
	for j := 0; j < X.Cols(); j++ {
		col := a.Col(j)
		for i := range col {
			col[i] = int32(i)
		}
		copy(buf, X.Col(j))
		argSortFloat64(buf, col)
	}
	return a
}

// Rows and Cols report the shape of the index matrix.
func (a *ArgSorted) Rows() int { return a.n }
func (a *ArgSorted) Cols() int { return a.d }

// At returns ArgSorted[k,j].
func (a *ArgSorted) At(k, j int) int32 { return a.data[j*a.n+k] }

// Col returns the unit-stride slice backing column j. Mutating it mutates the
// index matrix.
func (a *ArgSorted) Col(j int) []int32 { return a.data[j*a.n : (j+1)*a.n] }

// Tensor is a dense, row-major target tensor of shape (NTotal, K1, K2, K3).
// Classification reads only Tensor.ClassID(i); regression reads every output
// via Tensor.Sample(i). The axis count is historical: "one sample axis plus
// up to three output axes" with no further semantic meaning.
type Tensor struct {
	data           []float64
	n              int
	k1, k2, k3     int
	outLen         int
}

// NewTensor allocates a zeroed Tensor with n samples and K1*K2*K3 outputs
// per sample.
func NewTensor(n, k1, k2, k3 int) *Tensor {
	if k1 <= 0 {
		k1 = 1
	}
	if k2 <= 0 {
		k2 = 1
	}
	if k3 <= 0 {
		k3 = 1
	}
	return &Tensor{
		data:   make([]float64, n*k1*k2*k3),
		n:      n,
		k1:     k1,
		k2:     k2,
		k3:     k3,
		outLen: k1 * k2 * k3,
	}
}

// NewTensorFromColumn builds a single-output Tensor (K1=K2=K3=1) from a flat
// slice of per-sample values, the shape classification and single-output
// regression callers most often have on hand.
func NewTensorFromColumn(y []float64) *Tensor {
	t := NewTensor(len(y), 1, 1, 1)
	copy(t.data, y)
	return t
}

// Samples, OutLen report the shape of the tensor: the sample count and the
// flattened K1*K2*K3 output count.
func (t *Tensor) Samples() int { return t.n }
func (t *Tensor) OutLen() int  { return t.outLen }

// Sample returns the unit-stride slice of all outputs for row i, treating
// the inner three axes as a single flat loop of length K1*K2*K3.
func (t *Tensor) Sample(i int) []float64 {
	return t.data[i*t.outLen : (i+1)*t.outLen]
}

// ClassID returns y[i,0,0,0] truncated to an int, the class id convention
// used by classification criteria.
func (t *Tensor) ClassID(i int) int {
	return int(t.data[i*t.outLen])
}

// SampleMask is a per-row membership mask: SampleMask[i] is true when row i
// belongs to the current node's sample set.
type SampleMask []bool

// NewSampleMaskAll returns a mask with every row of an n-row dataset
// included.
func NewSampleMaskAll(n int) SampleMask {
	m := make(SampleMask, n)
	for i := range m {
		m[i] = true
	}
	return m
}

// Count returns the population count of the mask, i.e. n_samples.
func (m SampleMask) Count() int {
	c := 0
	for _, v := range m {
		if v {
			c++
		}
	}
	return c
}

const epsilon = 1e-7
