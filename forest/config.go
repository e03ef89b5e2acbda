// Package forest implements a random forest ensemble — bootstrap-aggregated
// decision trees — on top of package tree, following Breiman's bagging
// scheme as described in Louppe, G. (2014) "Understanding Random Forests:
// From Theory to Practice" (the teacher's own citation for this algorithm
// family).
package forest

import (
	"github.com/wlattner/rfsplit/splitter"
	"github.com/wlattner/rfsplit/tree"
)

// Config holds the parameters shared by Classifier and Regressor. The
// MinSplit..RandSeed fields are forwarded to each member tree; NTrees,
// SampleSize, and NWorkers control the ensemble itself.
type Config struct {
	NTrees      int
	MinSplit    int
	MinLeaf     int
	MaxDepth    int
	MaxFeatures int
	Criterion   splitter.Kind
	RandSeed    int64
	SampleSize  int // 0 means len(X)
	NWorkers    int // 0 means runtime.NumCPU()
}

func defaultConfig() Config {
	return Config{
		NTrees:      500,
		MinSplit:    2,
		MinLeaf:     1,
		MaxDepth:    0,
		MaxFeatures: -1,
		Criterion:   splitter.Gini,
		RandSeed:    1,
	}
}

// treeOptions builds the per-tree option list; maxFeatures is passed
// separately since the classifier/regressor each apply their own default
// (sqrt(D), D/3) when Config.MaxFeatures is left at -1.
func (c *Config) treeOptions(seed int64, maxFeatures int) []tree.Option {
	return []tree.Option{
		tree.MinSplit(c.MinSplit),
		tree.MinLeaf(c.MinLeaf),
		tree.MaxDepth(c.MaxDepth),
		tree.MaxFeatures(maxFeatures),
		tree.Criterion(c.Criterion),
		tree.RandSeed(seed),
	}
}

// Option configures a Classifier or Regressor at construction.
type Option func(*Config)

// NTrees sets the number of trees in the ensemble.
func NTrees(n int) Option { return func(c *Config) { c.NTrees = n } }

// MinSplit limits the size a node must have to be split, forwarded to every
// member tree.
func MinSplit(n int) Option { return func(c *Config) { c.MinSplit = n } }

// MinLeaf limits the size of a child a candidate split must leave on each
// side, forwarded to every member tree.
func MinLeaf(n int) Option { return func(c *Config) { c.MinLeaf = n } }

// MaxDepth limits the depth of each member tree. 0 grows full trees.
func MaxDepth(n int) Option { return func(c *Config) { c.MaxDepth = n } }

// MaxFeatures limits the number of features considered at each split. When
// it is negative (the default -1), Fit uses sqrt(D) for the classifier and
// D/3 for the regressor, at least 1 in both cases.
func MaxFeatures(n int) Option { return func(c *Config) { c.MaxFeatures = n } }

// Criterion selects the impurity measure for every member tree of a
// Classifier. Regressor member trees always use splitter.MSE.
func Criterion(k splitter.Kind) Option { return func(c *Config) { c.Criterion = k } }

// RandSeed seeds the ensemble's bootstrap RNG; each tree derives its own
// seed from it deterministically.
func RandSeed(seed int64) Option { return func(c *Config) { c.RandSeed = seed } }

// SampleSize sets the number of rows each member tree trains on. 0 (the
// default), or any value >= len(X), draws len(X) rows with replacement, the
// standard bootstrap; a smaller positive value draws that many distinct rows
// without replacement.
func SampleSize(n int) Option { return func(c *Config) { c.SampleSize = n } }

// NWorkers sets the number of goroutines fitting trees concurrently. 0
// uses runtime.NumCPU().
func NWorkers(n int) Option { return func(c *Config) { c.NWorkers = n } }
