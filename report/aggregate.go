package report

import (
	"gonum.org/v1/gonum/stat"
)

// AggRow is the mean train and test score of one
// (method, classifier) pair over all trials.
type AggRow struct {
	Method     string
	Classifier string
	Train      float64
	Test       float64
}

// Summary is the grouped form of a Table.
type Summary struct {
	Measure string
	Rows    []AggRow
}

// Aggregate groups the table by (method, classifier) and takes the
// arithmetic mean of the train and test columns per group.
// Groups appear in first-occurrence order of the table rows.
func Aggregate(tab *Table) *Summary {
	type key struct{ method, classifier string }
	groups := make(map[key]*groupAcc)
	var order []key
	for _, r := range tab.Rows {
		k := key{r.Method, r.Classifier}
		g := groups[k]
		if g == nil {
			g = new(groupAcc)
			groups[k] = g
			order = append(order, k)
		}
		g.train = append(g.train, r.Train)
		g.test = append(g.test, r.Test)
	}
	sum := &Summary{Measure: tab.Measure}
	for _, k := range order {
		g := groups[k]
		sum.Rows = append(sum.Rows, AggRow{
			Method:     k.method,
			Classifier: k.classifier,
			Train:      stat.Mean(g.train, nil),
			Test:       stat.Mean(g.test, nil),
		})
	}
	return sum
}

type groupAcc struct {
	train, test []float64
}
