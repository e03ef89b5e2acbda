package forest

import "gonum.org/v1/gonum/stat"

// importer is satisfied by tree.Classifier and tree.Regressor.
type importer interface {
	Importance() []float64
}

func treeImporters[T importer](trees []T) []importer {
	out := make([]importer, len(trees))
	for i, t := range trees {
		out[i] = t
	}
	return out
}

// aggregateImportance averages each feature's importance across trees via
// gonum's stat.Mean, skipping trees that failed to fit (a nil entry).
func aggregateImportance(trees []importer, nFeatures int) []float64 {
	out := make([]float64, nFeatures)
	col := make([]float64, 0, len(trees))

	for feat := 0; feat < nFeatures; feat++ {
		col = col[:0]
		for _, t := range trees {
			if t == nil {
				continue
			}
			imp := t.Importance()
			if feat < len(imp) {
				col = append(col, imp[feat])
			}
		}
		if len(col) == 0 {
			continue
		}
		out[feat] = stat.Mean(col, nil)
	}
	return out
}
