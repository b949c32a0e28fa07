// Package report turns nested trial results into flat tables and
// grouped summaries, with CSV output.
package report

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/sigbasis/ldb-expm/expm"
)

// ErrMeasureNotFound reports a measure name absent from a result cell.
var ErrMeasureNotFound = errors.New("measure not found in result")

// Row is one (trial, method, classifier) observation of a single
// measure.
type Row struct {
	Experiment uint
	Method     string
	Classifier string
	Train      float64
	Test       float64
}

// Table is the flat form of all trials for one measure.
type Table struct {
	Measure string
	Rows    []Row
}

// Flatten emits one row per (trial, method, classifier) with the
// named measure's train and test scores. Trial ids must parse as
// unsigned integers and every cell must contain the measure.
// Rows are ordered by (trial, method, classifier) so output is
// stable across runs.
func Flatten(trials expm.TrialResults, measureName string) (*Table, error) {
	tab := &Table{Measure: measureName}
	for _, id := range sortTrialKeys(trials) {
		trial, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("trial id %q: %w", id, err)
		}
		result := trials[id]
		for _, method := range sortKeys(result) {
			for _, clf := range sortKeys(result[method]) {
				split := result[method][clf]
				train, ok := split.Train[measureName]
				if !ok {
					return nil, fmt.Errorf("trial %s cell (%s, %s) train: %q: %w", id, method, clf, measureName, ErrMeasureNotFound)
				}
				test, ok := split.Test[measureName]
				if !ok {
					return nil, fmt.Errorf("trial %s cell (%s, %s) test: %q: %w", id, method, clf, measureName, ErrMeasureNotFound)
				}
				tab.Rows = append(tab.Rows, Row{
					Experiment: uint(trial),
					Method:     method,
					Classifier: clf,
					Train:      train,
					Test:       test,
				})
			}
		}
	}
	return tab, nil
}

func sortTrialKeys(trials expm.TrialResults) []string {
	keys := make([]string, 0, len(trials))
	for k := range trials {
		keys = append(keys, k)
	}
	// Numeric where possible so trial "10" follows trial "9".
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.ParseUint(keys[i], 10, 64)
		b, errB := strconv.ParseUint(keys[j], 10, 64)
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}

func sortKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
