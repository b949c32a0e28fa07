package expm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sigbasis/ldb-expm/basis"
	"github.com/sigbasis/ldb-expm/classify"
	"github.com/sigbasis/ldb-expm/data"
	"github.com/sigbasis/ldb-expm/fileutil"
	"github.com/sigbasis/ldb-expm/measure"
)

func makeTrial(t *testing.T, seed uint64) TrialData {
	t.Helper()
	g, err := data.New(data.Config{Name: "triangular", Train: 8, Test: 4, Seed: seed})
	require.NoError(t, err)
	xtr, ytr, err := g.Generate(false)
	require.NoError(t, err)
	xte, yte, err := g.Generate(true)
	require.NoError(t, err)
	return TrialData{XTrain: xtr, YTrain: ytr, XTest: xte, YTest: yte}
}

func testGrid() (map[string]basis.Transform, map[string]classify.Classifier) {
	transforms := basis.Named("ldb", []basis.Transform{nil, basis.TopEnergy{K: 8}})
	classifiers := classify.Named("clf", []classify.Classifier{classify.Centroid{}, classify.KNN{K: 3}, classify.KNN{K: 1}})
	return transforms, classifiers
}

func TestRunGridShape(t *testing.T) {
	transforms, classifiers := testGrid()
	measures := []measure.Measure{measure.Accuracy, measure.ErrorRate}
	models, result, err := Run(transforms, classifiers, makeTrial(t, 3), measures)
	require.NoError(t, err)

	require.Len(t, result, len(transforms))
	require.Len(t, models, len(transforms))
	for mname := range transforms {
		require.Len(t, result[mname], len(classifiers))
		require.Len(t, models[mname], len(classifiers))
		for cname := range classifiers {
			split := result[mname][cname]
			require.NotNil(t, models[mname][cname])
			for _, scores := range []Scores{split.Train, split.Test} {
				require.Len(t, scores, len(measures))
				require.Contains(t, scores, "accuracy")
				require.Contains(t, scores, "error_rate")
			}
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	transforms, classifiers := testGrid()
	measures := []measure.Measure{measure.Accuracy}
	trial := makeTrial(t, 11)
	_, a, err := Run(transforms, classifiers, trial, measures)
	require.NoError(t, err)
	_, b, err := Run(transforms, classifiers, trial, measures)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	transforms, classifiers := testGrid()
	measures := []measure.Measure{measure.Accuracy, measure.BalancedAccuracy}
	trial := makeTrial(t, 5)
	_, seq, err := Run(transforms, classifiers, trial, measures)
	require.NoError(t, err)
	_, par, err := RunParallel(transforms, classifiers, trial, measures, 4)
	require.NoError(t, err)
	require.Equal(t, seq, par)
}

func TestRunEmptyVariants(t *testing.T) {
	_, classifiers := testGrid()
	trial := makeTrial(t, 1)
	_, _, err := Run(nil, classifiers, trial, []measure.Measure{measure.Accuracy})
	require.Error(t, err)
	transforms, _ := testGrid()
	_, _, err = Run(transforms, nil, trial, []measure.Measure{measure.Accuracy})
	require.Error(t, err)
}

func TestRunDuplicateMeasures(t *testing.T) {
	transforms, classifiers := testGrid()
	_, _, err := Run(transforms, classifiers, makeTrial(t, 1), []measure.Measure{measure.Accuracy, measure.Accuracy})
	require.Error(t, err)
}

type failingClassifier struct{}

var errNoConverge = errors.New("solver did not converge")

func (failingClassifier) Fit(x mat.Matrix, y []int) (classify.Model, error) {
	return nil, errNoConverge
}

func TestRunCellFailureAborts(t *testing.T) {
	transforms := map[string]basis.Transform{"raw": nil}
	classifiers := map[string]classify.Classifier{
		"good": classify.Centroid{},
		"bad":  failingClassifier{},
	}
	models, result, err := Run(transforms, classifiers, makeTrial(t, 2), []measure.Measure{measure.Accuracy})
	require.ErrorIs(t, err, errNoConverge)
	require.Nil(t, models)
	require.Nil(t, result)
}

func TestFitRawBaseline(t *testing.T) {
	trial := makeTrial(t, 9)
	model, fitted, err := Fit(nil, classify.Centroid{}, trial.XTrain, trial.YTrain)
	require.NoError(t, err)
	require.Nil(t, fitted)
	require.NotNil(t, model)
	scores, err := Evaluate(fitted, model, trial.XTrain, trial.YTrain, []measure.Measure{measure.Accuracy})
	require.NoError(t, err)
	require.Contains(t, scores, "accuracy")
	require.GreaterOrEqual(t, scores["accuracy"], 0.0)
	require.LessOrEqual(t, scores["accuracy"], 1.0)
}

func repeatConfig(t *testing.T, trials int, persist bool, dir string) RepeatConfig {
	t.Helper()
	train, err := data.New(data.Config{Name: "triangular", Train: 6, Test: 3, Seed: 21})
	require.NoError(t, err)
	test, err := data.New(data.Config{Name: "triangular", Train: 6, Test: 3, Seed: 22})
	require.NoError(t, err)
	transforms, classifiers := testGrid()
	return RepeatConfig{
		Transforms:  transforms,
		Classifiers: classifiers,
		Measures:    []measure.Measure{measure.Accuracy, measure.ErrorRate},
		Train:       train,
		Test:        test,
		Trials:      trials,
		Persist:     persist,
		Dir:         dir,
	}
}

func TestRepeatTrialIDs(t *testing.T) {
	const trials = 4
	results, err := Repeat(repeatConfig(t, trials, false, t.TempDir()))
	require.NoError(t, err)
	require.Len(t, results, trials)
	for i := 1; i <= trials; i++ {
		require.Contains(t, results, fmt.Sprintf("%d", i))
	}
}

func TestRepeatZeroTrials(t *testing.T) {
	dir := t.TempDir()
	results, err := Repeat(repeatConfig(t, 0, true, dir))
	require.NoError(t, err)
	require.Empty(t, results)
	// No data generation and no file writes.
	_, err = os.Stat(filepath.Join(dir, DataDir))
	require.True(t, os.IsNotExist(err))
}

func TestRepeatPersist(t *testing.T) {
	dir := t.TempDir()
	results, err := Repeat(repeatConfig(t, 2, true, dir))
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		var trial TrialData
		require.NoError(t, fileutil.LoadExt(filepath.Join(dir, DataDir, fmt.Sprintf("exp%d.gob", i)), &trial))
		rows, cols := trial.XTrain.Dims()
		require.Equal(t, 3*6, rows)
		require.Equal(t, 32, cols)
		require.Len(t, trial.YTrain, 3*6)
		require.Len(t, trial.YTest, 3*3)

		var result Result
		require.NoError(t, fileutil.LoadExt(filepath.Join(dir, DataDir, fmt.Sprintf("result%d.json", i)), &result))
		require.Equal(t, results[fmt.Sprintf("%d", i)], result)
	}
}

func TestTrialDataGobRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "trial.gob")
	want := makeTrial(t, 17)
	require.NoError(t, fileutil.SaveExt(fname, &want))
	var got TrialData
	require.NoError(t, fileutil.LoadExt(fname, &got))
	require.True(t, mat.Equal(want.XTrain, got.XTrain))
	require.True(t, mat.Equal(want.XTest, got.XTest))
	require.Equal(t, want.YTrain, got.YTrain)
	require.Equal(t, want.YTest, got.YTest)
}
