// Package basis defines the feature-transform contract for
// classification experiments and a baseline coordinate selector.
//
// A Transform describes an unfitted feature extraction.
// Fitting returns an explicit FittedTransform which is threaded to
// later transform calls, so a Transform value can be shared across
// grid cells and trials without hidden state.
package basis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transform is an unfitted feature-extraction configuration.
type Transform interface {
	// Fit learns the transform from labelled training data and
	// returns the fitted transform together with the training
	// features it produces.
	Fit(x mat.Matrix, y []int) (FittedTransform, *mat.Dense, error)
}

// FittedTransform maps raw signals to feature vectors.
type FittedTransform interface {
	Transform(x mat.Matrix) (*mat.Dense, error)
}

// Named converts an ordered list of transforms to a name-to-variant
// map with 1-based names "<prefix>_<i>" in list order.
// A nil entry is the raw-signal baseline.
func Named(prefix string, ts []Transform) map[string]Transform {
	m := make(map[string]Transform, len(ts))
	for i, tr := range ts {
		m[fmt.Sprintf("%s_%d", prefix, i+1)] = tr
	}
	return m
}
