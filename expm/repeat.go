package expm

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/sigbasis/ldb-expm/basis"
	"github.com/sigbasis/ldb-expm/classify"
	"github.com/sigbasis/ldb-expm/data"
	"github.com/sigbasis/ldb-expm/fileutil"
	"github.com/sigbasis/ldb-expm/measure"
)

var log = logrus.WithField("component", "expm")

// RepeatConfig describes a repeated experiment.
type RepeatConfig struct {
	Transforms  map[string]basis.Transform
	Classifiers map[string]classify.Classifier
	Measures    []measure.Measure
	// Train generates training-mode data, Test test-mode data.
	Train data.Generator
	Test  data.Generator
	// Trials is the number of independent repetitions.
	Trials int
	// Persist writes per-trial data and results under Dir.
	Persist bool
	// Dir is the output root. Empty means "results".
	Dir string
	// Workers bounds parallel grid cells within a trial.
	// Values below 2 run the grid sequentially.
	Workers int
}

// DataDir is where per-trial artifacts go under the output root.
const DataDir = "experiment_data"

// Repeat runs Trials independent trials, each on freshly generated
// data, and accumulates the per-trial results keyed by decimal
// trial id "1".."<Trials>". Models are not retained across trials.
// With Persist set, each trial writes exp<i>.gob (the four data
// arrays) and result<i>.json (the nested scores, indent 4).
// Zero trials returns an empty map without generating or writing
// anything. The first failing trial aborts the loop; completed
// trials are lost unless they were persisted.
func Repeat(cfg RepeatConfig) (TrialResults, error) {
	trials := make(TrialResults, cfg.Trials)
	if cfg.Trials <= 0 {
		return trials, nil
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "results"
	}
	dir = filepath.Join(dir, DataDir)
	if cfg.Persist {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	for i := 1; i <= cfg.Trials; i++ {
		log.WithFields(logrus.Fields{"trial": i, "of": cfg.Trials}).Info("run experiment grid")
		xtr, ytr, err := cfg.Train.Generate(false)
		if err != nil {
			return nil, fmt.Errorf("trial %d: generate training data: %w", i, err)
		}
		xte, yte, err := cfg.Test.Generate(true)
		if err != nil {
			return nil, fmt.Errorf("trial %d: generate test data: %w", i, err)
		}
		trial := TrialData{XTrain: xtr, YTrain: ytr, XTest: xte, YTest: yte}
		_, result, err := run(cfg.Transforms, cfg.Classifiers, trial, cfg.Measures, cfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		trials[strconv.Itoa(i)] = result
		if cfg.Persist {
			if err := fileutil.SaveExt(filepath.Join(dir, fmt.Sprintf("exp%d.gob", i)), &trial); err != nil {
				return nil, fmt.Errorf("trial %d: save data: %w", i, err)
			}
			if err := fileutil.SaveExt(filepath.Join(dir, fmt.Sprintf("result%d.json", i)), result); err != nil {
				return nil, fmt.Errorf("trial %d: save result: %w", i, err)
			}
		}
	}
	return trials, nil
}
