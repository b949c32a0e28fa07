package data

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const cbfLen = 128

// cbf generates the three-class cylinder-bell-funnel problem.
// A plateau of random extent [a, b] and random height 6+eta is
// flat for cylinders, rises linearly for bells and falls linearly
// for funnels, with additive Gaussian noise everywhere.
type cbf struct {
	cfg    Config
	rng    *rand.Rand
	noise  distuv.Normal
	height distuv.Normal
}

func newCBF(cfg Config) (*cbf, error) {
	if cfg.Length == 0 {
		cfg.Length = cbfLen
	}
	if cfg.Noise == 0 {
		cfg.Noise = 1
	}
	rng := newSource(cfg.Seed)
	g := &cbf{
		cfg:    cfg,
		rng:    rng,
		noise:  distuv.Normal{Mu: 0, Sigma: cfg.Noise, Src: rng},
		height: distuv.Normal{Mu: 6, Sigma: 1, Src: rng},
	}
	return g, nil
}

func (g *cbf) Generate(test bool) (*mat.Dense, []int, error) {
	n, err := g.cfg.perClass(test)
	if err != nil {
		return nil, nil, err
	}
	x, y := alloc(3, n, g.cfg.Length)
	for c := 0; c < 3; c++ {
		for j := 0; j < n; j++ {
			g.sample(x.RawRowView(c*n+j), c)
		}
	}
	return x, y, nil
}

func (g *cbf) sample(row []float64, class int) {
	// Extent scaled to the signal length; the classic problem uses
	// a in [16, 32] and b-a in [32, 96] at length 128.
	scale := float64(g.cfg.Length) / cbfLen
	a := int(scale * (16 + 16*g.rng.Float64()))
	b := a + int(scale*(32+64*g.rng.Float64()))
	if b >= g.cfg.Length {
		b = g.cfg.Length - 1
	}
	h := g.height.Rand()
	for i := range row {
		var v float64
		if i >= a && i <= b {
			switch class {
			case 0: // cylinder
				v = h
			case 1: // bell
				v = h * float64(i-a) / float64(b-a)
			case 2: // funnel
				v = h * float64(b-i) / float64(b-a)
			}
		}
		row[i] = v + g.noise.Rand()
	}
}
