package expm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sigbasis/ldb-expm/basis"
	"github.com/sigbasis/ldb-expm/classify"
	"github.com/sigbasis/ldb-expm/measure"
)

// Fit extracts features on the training set and fits a classifier
// to them. A nil transform is the raw-signal baseline: the
// classifier sees x unchanged and the returned fitted transform
// is nil. Classifier failures propagate with cell context only.
func Fit(tr basis.Transform, clf classify.Classifier, x mat.Matrix, y []int) (classify.Model, basis.FittedTransform, error) {
	var (
		fitted basis.FittedTransform
		feats  mat.Matrix = x
	)
	if tr != nil {
		ft, fx, err := tr.Fit(x, y)
		if err != nil {
			return nil, nil, fmt.Errorf("fit transform: %w", err)
		}
		fitted, feats = ft, fx
	}
	model, err := clf.Fit(feats, y)
	if err != nil {
		return nil, nil, fmt.Errorf("fit classifier: %w", err)
	}
	return model, fitted, nil
}

// Evaluate scores a trained model on one labelled set.
// A nil fitted transform uses x directly; otherwise the
// already-fitted transform is applied without refitting.
// The model's hard label predictions are scored by every measure.
func Evaluate(fitted basis.FittedTransform, model classify.Model, x mat.Matrix, y []int, measures []measure.Measure) (Scores, error) {
	feats := x
	if fitted != nil {
		fx, err := fitted.Transform(x)
		if err != nil {
			return nil, fmt.Errorf("transform: %w", err)
		}
		feats = fx
	}
	pred, err := model.Predict(feats)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	scores := make(Scores, len(measures))
	for _, m := range measures {
		scores[m.Name] = m.Score(pred, y)
	}
	return scores, nil
}
