// Package classify defines the classifier contract for
// classification experiments and two reference baselines.
//
// Production classifiers plug in by implementing Classifier and
// registering with DefaultClassifiers; the baselines exist so the
// harness runs end-to-end without external model dependencies.
package classify

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Classifier is an unfitted supervised-learning configuration.
type Classifier interface {
	// Fit trains a model on feature rows x with 1-based integer
	// class labels y.
	Fit(x mat.Matrix, y []int) (Model, error)
}

// Model predicts hard labels for feature rows.
type Model interface {
	Predict(x mat.Matrix) ([]int, error)
}

// Named converts an ordered list of classifiers to a name-to-variant
// map with 1-based names "<prefix>_<i>" in list order.
func Named(prefix string, cs []Classifier) map[string]Classifier {
	m := make(map[string]Classifier, len(cs))
	for i, c := range cs {
		m[fmt.Sprintf("%s_%d", prefix, i+1)] = c
	}
	return m
}

func checkTrainingSet(x mat.Matrix, y []int) error {
	rows, _ := x.Dims()
	if rows == 0 {
		return fmt.Errorf("empty training set")
	}
	if rows != len(y) {
		return fmt.Errorf("%d feature rows but %d labels", rows, len(y))
	}
	return nil
}

// sqDist is the squared Euclidean distance between a matrix row
// and a vector.
func sqDist(x mat.Matrix, row int, v []float64) float64 {
	var d float64
	for j := range v {
		diff := x.At(row, j) - v[j]
		d += diff * diff
	}
	return d
}
