// Command run-expm runs a repeated classification experiment grid
// described by a JSON spec file and writes flat and aggregate
// score tables.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sigbasis/ldb-expm/basis"
	"github.com/sigbasis/ldb-expm/classify"
	"github.com/sigbasis/ldb-expm/data"
	"github.com/sigbasis/ldb-expm/expm"
	"github.com/sigbasis/ldb-expm/fileutil"
	"github.com/sigbasis/ldb-expm/measure"
	"github.com/sigbasis/ldb-expm/report"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] experiment.json")
		flag.PrintDefaults()
	}
}

// ExperimentSpec is the JSON description of a repeated experiment.
// Transforms and classifiers are ordered lists and are named
// "ldb_<i>" and "clf_<i>" in list order.
type ExperimentSpec struct {
	Transforms  []basis.Message    `json:"transforms"`
	Classifiers []classify.Message `json:"classifiers"`
	Measures    []string           `json:"measures"`
	Train       data.Config        `json:"train"`
	Test        data.Config        `json:"test"`
}

var knownMeasures = map[string]measure.Measure{
	measure.Accuracy.Name:         measure.Accuracy,
	measure.ErrorRate.Name:        measure.ErrorRate,
	measure.BalancedAccuracy.Name: measure.BalancedAccuracy,
}

func main() {
	var (
		trials  = flag.Int("trials", 10, "Number of independent repetitions")
		outDir  = flag.String("out", "results", "Output root directory")
		persist = flag.Bool("save-trials", true, "Save per-trial data and results")
		workers = flag.Int("workers", 1, "Parallel grid cells per trial")
		verbose = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	specFile := flag.Arg(0)

	spec := new(ExperimentSpec)
	if err := fileutil.LoadExt(specFile, spec); err != nil {
		logrus.Fatal(err)
	}
	if len(spec.Measures) == 0 {
		logrus.Fatal("experiment spec lists no measures")
	}
	measures := make([]measure.Measure, 0, len(spec.Measures))
	for _, name := range spec.Measures {
		m, ok := knownMeasures[name]
		if !ok {
			logrus.Fatalf("unknown measure %q", name)
		}
		measures = append(measures, m)
	}

	transforms := make([]basis.Transform, len(spec.Transforms))
	for i, m := range spec.Transforms {
		transforms[i] = m.Spec
	}
	classifiers := make([]classify.Classifier, len(spec.Classifiers))
	for i, m := range spec.Classifiers {
		classifiers[i] = m.Spec
	}

	train, err := data.New(spec.Train)
	if err != nil {
		logrus.Fatal("training generator: ", err)
	}
	test, err := data.New(spec.Test)
	if err != nil {
		logrus.Fatal("test generator: ", err)
	}

	results, err := expm.Repeat(expm.RepeatConfig{
		Transforms:  basis.Named("ldb", transforms),
		Classifiers: classify.Named("clf", classifiers),
		Measures:    measures,
		Train:       train,
		Test:        test,
		Trials:      *trials,
		Persist:     *persist,
		Dir:         *outDir,
		Workers:     *workers,
	})
	if err != nil {
		logrus.Fatal("repeat: ", err)
	}

	for _, m := range measures {
		tab, err := report.Flatten(results, m.Name)
		if err != nil {
			logrus.Fatalf("flatten %s: %v", m.Name, err)
		}
		if err := tab.Save(*outDir); err != nil {
			logrus.Fatalf("save table %s: %v", m.Name, err)
		}
		sum := report.Aggregate(tab)
		if err := sum.Save(*outDir); err != nil {
			logrus.Fatalf("save summary %s: %v", m.Name, err)
		}
		for _, r := range sum.Rows {
			logrus.WithFields(logrus.Fields{
				"measure":    m.Name,
				"method":     r.Method,
				"classifier": r.Classifier,
			}).Infof("train %.4f test %.4f", r.Train, r.Test)
		}
	}
}
