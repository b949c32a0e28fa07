// Package measure defines scalar scoring functions for
// comparing predicted labels against true labels.
package measure

import "fmt"

// Measure is a named scoring function.
// Score takes predicted and true labels of equal length.
type Measure struct {
	Name  string
	Score func(pred, truth []int) float64
}

// Check verifies that measure names are unique and non-empty.
// Duplicate names would collide in a result map.
func Check(measures []Measure) error {
	seen := make(map[string]bool, len(measures))
	for _, m := range measures {
		if m.Name == "" {
			return fmt.Errorf("measure with empty name")
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate measure name %q", m.Name)
		}
		seen[m.Name] = true
	}
	return nil
}

// Accuracy is the fraction of predictions equal to the true label.
var Accuracy = Measure{
	Name: "accuracy",
	Score: func(pred, truth []int) float64 {
		if len(pred) == 0 {
			return 0
		}
		var hits int
		for i := range pred {
			if pred[i] == truth[i] {
				hits++
			}
		}
		return float64(hits) / float64(len(pred))
	},
}

// ErrorRate is one minus accuracy.
var ErrorRate = Measure{
	Name: "error_rate",
	Score: func(pred, truth []int) float64 {
		if len(pred) == 0 {
			return 0
		}
		return 1 - Accuracy.Score(pred, truth)
	},
}

// BalancedAccuracy is the mean over classes of per-class recall.
// Classes are taken from the true labels.
var BalancedAccuracy = Measure{
	Name: "balanced_accuracy",
	Score: func(pred, truth []int) float64 {
		total := make(map[int]int)
		hits := make(map[int]int)
		for i := range truth {
			total[truth[i]]++
			if pred[i] == truth[i] {
				hits[truth[i]]++
			}
		}
		if len(total) == 0 {
			return 0
		}
		var sum float64
		for c, n := range total {
			sum += float64(hits[c]) / float64(n)
		}
		return sum / float64(len(total))
	},
}
