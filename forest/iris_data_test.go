package forest

// irisX and irisY are the classic Fisher iris measurements, carried over
// from the teacher's own iris_test.go fixture (there kept as []float32/
// []string) and converted to the []float64/[]int shapes this package's
// Fit methods expect. Columns are sepal width, petal length, sepal
// length, petal width; labels are 0=setosa, 1=versicolor, 2=virginica.
var irisX = [][]float64{
	{3.5, 1.4, 5.1, 0.2}, {3.0, 1.4, 4.9, 0.2}, {3.2, 1.3, 4.7, 0.2}, {3.1, 1.5, 4.6, 0.2},
	{3.6, 1.4, 5.0, 0.2}, {3.9, 1.7, 5.4, 0.4}, {3.4, 1.4, 4.6, 0.3}, {3.4, 1.5, 5.0, 0.2},
	{2.9, 1.4, 4.4, 0.2}, {3.1, 1.5, 4.9, 0.1}, {3.7, 1.5, 5.4, 0.2}, {3.4, 1.6, 4.8, 0.2},
	{3.0, 1.4, 4.8, 0.1}, {3.0, 1.1, 4.3, 0.1}, {4.0, 1.2, 5.8, 0.2}, {4.4, 1.5, 5.7, 0.4},
	{3.9, 1.3, 5.4, 0.4}, {3.5, 1.4, 5.1, 0.3}, {3.8, 1.7, 5.7, 0.3}, {3.8, 1.5, 5.1, 0.3},
	{3.4, 1.7, 5.4, 0.2}, {3.7, 1.5, 5.1, 0.4}, {3.6, 1.0, 4.6, 0.2}, {3.3, 1.7, 5.1, 0.5},
	{3.4, 1.9, 4.8, 0.2}, {3.0, 1.6, 5.0, 0.2}, {3.4, 1.6, 5.0, 0.4}, {3.5, 1.5, 5.2, 0.2},
	{3.4, 1.4, 5.2, 0.2}, {3.2, 1.6, 4.7, 0.2}, {3.1, 1.6, 4.8, 0.2}, {3.4, 1.5, 5.4, 0.4},
	{4.1, 1.5, 5.2, 0.1}, {4.2, 1.4, 5.5, 0.2}, {3.1, 1.5, 4.9, 0.2}, {3.2, 1.2, 5.0, 0.2},
	{3.5, 1.3, 5.5, 0.2}, {3.6, 1.4, 4.9, 0.1}, {3.0, 1.3, 4.4, 0.2}, {3.4, 1.5, 5.1, 0.2},
	{3.2, 4.7, 7.0, 1.4}, {3.2, 4.5, 6.4, 1.5}, {3.1, 4.9, 6.9, 1.5}, {2.3, 4.0, 5.5, 1.3},
	{2.8, 4.6, 6.5, 1.5}, {2.8, 4.5, 5.7, 1.3}, {3.3, 4.7, 6.3, 1.6}, {2.4, 3.3, 4.9, 1.0},
	{2.9, 4.6, 6.6, 1.3}, {2.7, 3.9, 5.2, 1.4}, {2.0, 3.5, 5.0, 1.0}, {3.0, 4.2, 5.9, 1.5},
	{2.2, 4.0, 6.0, 1.0}, {2.9, 4.7, 6.1, 1.4}, {2.9, 3.6, 5.6, 1.3}, {3.1, 4.4, 6.7, 1.4},
	{3.0, 4.5, 5.6, 1.5}, {2.7, 4.1, 5.8, 1.0}, {2.2, 4.5, 6.2, 1.5}, {2.5, 3.9, 5.6, 1.1},
	{3.2, 4.8, 5.9, 1.8}, {2.8, 4.0, 6.1, 1.3}, {2.5, 4.9, 6.3, 1.5}, {2.8, 4.7, 6.1, 1.2},
	{3.3, 6.0, 6.3, 2.5}, {2.7, 5.1, 5.8, 1.9}, {3.0, 5.9, 7.1, 2.1}, {2.9, 5.6, 6.3, 1.8},
	{3.0, 5.8, 6.5, 2.2}, {3.0, 6.6, 7.6, 2.1}, {2.5, 4.5, 4.9, 1.7}, {2.9, 6.3, 7.3, 1.8},
	{2.5, 5.8, 6.7, 1.8}, {3.6, 6.1, 7.2, 2.5}, {3.2, 5.1, 6.5, 2.0}, {2.7, 5.3, 6.4, 1.9},
	{3.0, 5.5, 6.8, 2.1}, {2.5, 5.0, 5.7, 2.0}, {2.8, 5.1, 5.8, 2.4}, {3.2, 5.3, 6.4, 2.3},
	{3.0, 5.5, 6.5, 1.8}, {3.8, 6.7, 7.7, 2.2}, {2.6, 6.9, 7.7, 2.3}, {3.2, 5.7, 6.9, 2.3},
}

var irisY = []int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
}
