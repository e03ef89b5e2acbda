// Package tree grows a single decision tree on top of package splitter,
// the feature- and threshold-selection engine. It supplies what splitter
// deliberately leaves to an external collaborator: the node queue,
// stopping rules, and the flat node array consumed by
// splitter.ApplyTree/PredictTree.
package tree

import (
	"math/rand"

	"github.com/wlattner/rfsplit/splitter"
)

// SplitFunc matches splitter.FindBestSplit's signature, letting a Config
// swap in splitter.FindBestRandomSplit (an "extremely randomized tree")
// without touching the growth loop.
type SplitFunc func(X *splitter.Matrix, y *splitter.Tensor, arg *splitter.ArgSorted,
	mask splitter.SampleMask, nSamples, minLeaf, maxFeatures int,
	crit splitter.Criterion, rng *rand.Rand) splitter.Split

// Config holds the growth parameters shared by Classifier and Regressor.
// Both embed Config, which is how a single set of functional options
// (below) configures either one, following the teacher's forestConfiger
// pattern.
type Config struct {
	Criterion   splitter.Kind
	MinLeaf     int
	MinSplit    int
	MaxDepth    int // 0 means unbounded
	MaxFeatures int // -1 means all features
	RandSeed    int64
	Splitter    SplitFunc
}

func defaultConfig() Config {
	return Config{
		Criterion:   splitter.Gini,
		MinLeaf:     1,
		MinSplit:    2,
		MaxDepth:    0,
		MaxFeatures: -1,
		RandSeed:    1,
		Splitter:    splitter.FindBestSplit,
	}
}

func (c *Config) setMinSplit(n int)              { c.MinSplit = n }
func (c *Config) setMinLeaf(n int)               { c.MinLeaf = n }
func (c *Config) setMaxDepth(n int)              { c.MaxDepth = n }
func (c *Config) setMaxFeatures(n int)           { c.MaxFeatures = n }
func (c *Config) setCriterion(k splitter.Kind)   { c.Criterion = k }
func (c *Config) setRandSeed(seed int64)         { c.RandSeed = seed }
func (c *Config) setSplitter(fn SplitFunc)       { c.Splitter = fn }

// configer is implemented by *Config, and therefore by *Classifier and
// *Regressor through embedding, letting one set of options configure
// either type.
type configer interface {
	setMinSplit(n int)
	setMinLeaf(n int)
	setMaxDepth(n int)
	setMaxFeatures(n int)
	setCriterion(k splitter.Kind)
	setRandSeed(seed int64)
	setSplitter(fn SplitFunc)
}

// configGob is the gob-safe projection of Config: a func field (Splitter)
// cannot be encoded, so Save/Load round-trip through this instead.
type configGob struct {
	Criterion   splitter.Kind
	MinLeaf     int
	MinSplit    int
	MaxDepth    int
	MaxFeatures int
	RandSeed    int64
}

func (c Config) gob() configGob {
	return configGob{
		Criterion:   c.Criterion,
		MinLeaf:     c.MinLeaf,
		MinSplit:    c.MinSplit,
		MaxDepth:    c.MaxDepth,
		MaxFeatures: c.MaxFeatures,
		RandSeed:    c.RandSeed,
	}
}

func (g configGob) toConfig() Config {
	return Config{
		Criterion:   g.Criterion,
		MinLeaf:     g.MinLeaf,
		MinSplit:    g.MinSplit,
		MaxDepth:    g.MaxDepth,
		MaxFeatures: g.MaxFeatures,
		RandSeed:    g.RandSeed,
		Splitter:    splitter.FindBestSplit,
	}
}

// Option configures a Classifier or Regressor at construction.
type Option func(configer)

// MinSplit limits the size a node must have to be split, rather than
// turned into a leaf.
func MinSplit(n int) Option {
	return func(c configer) { c.setMinSplit(n) }
}

// MinLeaf limits the size of a child a candidate split must leave on each
// side for that split to be admissible.
func MinLeaf(n int) Option {
	return func(c configer) { c.setMinLeaf(n) }
}

// MaxDepth limits the depth of the fitted tree. 0 (the default) grows a
// full tree, subject to MinLeaf and MinSplit.
func MaxDepth(n int) Option {
	return func(c configer) { c.setMaxDepth(n) }
}

// MaxFeatures limits the number of features considered at each split. -1
// (the default) considers all features.
func MaxFeatures(n int) Option {
	return func(c configer) { c.setMaxFeatures(n) }
}

// Criterion selects the Classifier's impurity measure: splitter.Gini or
// splitter.Entropy. Regressor.Fit always uses splitter.MSE.
func Criterion(k splitter.Kind) Option {
	return func(c configer) { c.setCriterion(k) }
}

// RandSeed seeds the per-fit RNG used for feature sampling and, with
// Splitter(splitter.FindBestRandomSplit), threshold sampling.
func RandSeed(seed int64) Option {
	return func(c configer) { c.setRandSeed(seed) }
}

// Splitter overrides the split search, e.g. to splitter.FindBestRandomSplit.
func Splitter(fn SplitFunc) Option {
	return func(c configer) { c.setSplitter(fn) }
}
