// Package data generates synthetic labelled signal sets for
// classification experiments.
package data

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Generator produces a labelled sample set on demand.
// The test flag selects the per-class sample count for
// test-mode generation.
// Successive calls draw fresh samples.
type Generator interface {
	Generate(test bool) (X *mat.Dense, y []int, err error)
}

// Config describes a synthetic dataset.
// Train and Test are samples per class in the respective mode.
type Config struct {
	Name   string  `json:"name"`
	Length int     `json:"length,omitempty"`
	Train  int     `json:"train"`
	Test   int     `json:"test"`
	Noise  float64 `json:"noise,omitempty"`
	Seed   uint64  `json:"seed"`
}

// New returns a generator for the named dataset.
// Known datasets are "triangular" and "cbf".
// The generator is seeded at construction, so a fixed seed gives
// a reproducible sequence of sample sets.
func New(cfg Config) (Generator, error) {
	switch cfg.Name {
	case "triangular":
		return newTriangular(cfg)
	case "cbf":
		return newCBF(cfg)
	default:
		return nil, fmt.Errorf("unknown dataset %q", cfg.Name)
	}
}

func (cfg Config) perClass(test bool) (int, error) {
	n := cfg.Train
	if test {
		n = cfg.Test
	}
	if n <= 0 {
		return 0, fmt.Errorf("dataset %s: samples per class not positive: %d", cfg.Name, n)
	}
	return n, nil
}

// alloc returns a sample matrix and label vector for k classes of
// n samples each. Labels are 1-based class ids in class order.
func alloc(k, n, length int) (*mat.Dense, []int) {
	x := mat.NewDense(k*n, length, nil)
	y := make([]int, k*n)
	for i := range y {
		y[i] = i/n + 1
	}
	return x, y
}

func newSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}
