package data

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const triangularLen = 32

// triangular generates the three-class triangular waveform problem.
// Each sample is a random convex combination of two of the three
// shifted triangle shapes h1, h2, h3 plus Gaussian noise.
// Class 1 mixes h1 and h2, class 2 mixes h1 and h3,
// class 3 mixes h2 and h3.
type triangular struct {
	cfg   Config
	rng   *rand.Rand
	noise distuv.Normal
	h1    []float64
	h2    []float64
	h3    []float64
}

func newTriangular(cfg Config) (*triangular, error) {
	if cfg.Length == 0 {
		cfg.Length = triangularLen
	}
	if cfg.Noise == 0 {
		cfg.Noise = 1
	}
	rng := newSource(cfg.Seed)
	g := &triangular{
		cfg:   cfg,
		rng:   rng,
		noise: distuv.Normal{Mu: 0, Sigma: cfg.Noise, Src: rng},
		h1:    triangle(cfg.Length, 0),
		h2:    triangle(cfg.Length, 8),
		h3:    triangle(cfg.Length, 4),
	}
	return g, nil
}

// triangle is max(6 - |i - 7 - shift|, 0) for i in 0..n-1.
func triangle(n, shift int) []float64 {
	h := make([]float64, n)
	for i := range h {
		d := i - 7 - shift
		if d < 0 {
			d = -d
		}
		if v := 6 - d; v > 0 {
			h[i] = float64(v)
		}
	}
	return h
}

func (g *triangular) Generate(test bool) (*mat.Dense, []int, error) {
	n, err := g.cfg.perClass(test)
	if err != nil {
		return nil, nil, err
	}
	x, y := alloc(3, n, g.cfg.Length)
	mixes := [3][2][]float64{
		{g.h1, g.h2},
		{g.h1, g.h3},
		{g.h2, g.h3},
	}
	for c, m := range mixes {
		for j := 0; j < n; j++ {
			row := x.RawRowView(c*n + j)
			u := g.rng.Float64()
			for i := range row {
				row[i] = u*m[0][i] + (1-u)*m[1][i] + g.noise.Rand()
			}
		}
	}
	return x, y, nil
}
