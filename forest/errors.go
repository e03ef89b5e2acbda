package forest

import "errors"

// ErrNotFitted is returned by Predict/PredictProba when called before Fit.
var ErrNotFitted = errors.New("forest: model not fitted")

// ErrEmptyDataset is returned by Fit when X has zero rows.
var ErrEmptyDataset = errors.New("forest: X has zero rows")

// ErrRowMismatch is returned by Fit when X and y disagree on row count.
var ErrRowMismatch = errors.New("forest: X and y row counts disagree")
