package tree

import "errors"

// ErrNotFitted is returned by Predict/PredictProba when called before Fit.
var ErrNotFitted = errors.New("tree: model not fitted")

// ErrEmptyDataset is returned by Fit when X has zero rows.
var ErrEmptyDataset = errors.New("tree: X has zero rows")

// ErrRowMismatch is returned by Fit when X and y disagree on row count.
var ErrRowMismatch = errors.New("tree: X and y row counts disagree")
