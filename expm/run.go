package expm

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sigbasis/ldb-expm/basis"
	"github.com/sigbasis/ldb-expm/classify"
	"github.com/sigbasis/ldb-expm/measure"
)

// Run evaluates the full cross product of transform and classifier
// variants on one trial's data. It returns the trained model and
// the train/test scores of every cell. The first failing cell
// aborts the run.
func Run(transforms map[string]basis.Transform, classifiers map[string]classify.Classifier, trial TrialData, measures []measure.Measure) (Models, Result, error) {
	return run(transforms, classifiers, trial, measures, 1)
}

// RunParallel is Run with up to workers grid cells in flight.
// Cells are independent: each fits its own transform and writes its
// own result slot, so no variant state is shared between cells.
func RunParallel(transforms map[string]basis.Transform, classifiers map[string]classify.Classifier, trial TrialData, measures []measure.Measure, workers int) (Models, Result, error) {
	return run(transforms, classifiers, trial, measures, workers)
}

type cell struct {
	method, classifier string
	split              Split
	model              classify.Model
}

func run(transforms map[string]basis.Transform, classifiers map[string]classify.Classifier, trial TrialData, measures []measure.Measure, workers int) (Models, Result, error) {
	if len(transforms) == 0 {
		return nil, nil, fmt.Errorf("no transform variants")
	}
	if len(classifiers) == 0 {
		return nil, nil, fmt.Errorf("no classifier variants")
	}
	if err := measure.Check(measures); err != nil {
		return nil, nil, err
	}

	cells := make([]cell, 0, len(transforms)*len(classifiers))
	for mname := range transforms {
		for cname := range classifiers {
			cells = append(cells, cell{method: mname, classifier: cname})
		}
	}

	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range cells {
		c := &cells[i]
		g.Go(func() error {
			if err := runCell(c, transforms[c.method], classifiers[c.classifier], trial, measures); err != nil {
				return fmt.Errorf("cell (%s, %s): %w", c.method, c.classifier, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	models := make(Models, len(transforms))
	result := make(Result, len(transforms))
	for _, c := range cells {
		if models[c.method] == nil {
			models[c.method] = make(map[string]classify.Model, len(classifiers))
			result[c.method] = make(map[string]Split, len(classifiers))
		}
		models[c.method][c.classifier] = c.model
		result[c.method][c.classifier] = c.split
	}
	return models, result, nil
}

func runCell(c *cell, tr basis.Transform, clf classify.Classifier, trial TrialData, measures []measure.Measure) error {
	model, fitted, err := Fit(tr, clf, trial.XTrain, trial.YTrain)
	if err != nil {
		return err
	}
	train, err := Evaluate(fitted, model, trial.XTrain, trial.YTrain, measures)
	if err != nil {
		return fmt.Errorf("evaluate train: %w", err)
	}
	test, err := Evaluate(fitted, model, trial.XTest, trial.YTest, measures)
	if err != nil {
		return fmt.Errorf("evaluate test: %w", err)
	}
	c.model = model
	c.split = Split{Train: train, Test: test}
	return nil
}
