// Package splitter implements the decision-tree split-finding kernel used by
// the tree and forest packages.
//
// Given a dense feature matrix X, a presorted index for every column, a
// target tensor y, and a boolean sample mask over the rows of X, the
// functions in this package choose the feature and threshold that minimize
// an impurity Criterion over the masked rows. The presorted-index sweep used
// by FindBestSplit turns the search from O(n^2 * d) into O(n * d): each
// column is visited once, moving samples from a "right" accumulator into a
// "left" one as the sweep advances.
//
// The package also exposes the tree-traversal kernels ApplyTree and
// PredictTree, since they share X's column-major layout and the node-array
// representation that FindBestSplit is meant to feed.
package splitter
