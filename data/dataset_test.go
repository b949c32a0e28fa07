package data

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestGenerateShape(t *testing.T) {
	for _, name := range []string{"triangular", "cbf"} {
		g, err := New(Config{Name: name, Train: 11, Test: 5, Seed: 1})
		if err != nil {
			t.Fatal(name, err)
		}
		x, y, err := g.Generate(false)
		if err != nil {
			t.Fatal(name, err)
		}
		rows, _ := x.Dims()
		if rows != 3*11 || len(y) != 3*11 {
			t.Errorf("%s train: want %d samples, got %d rows %d labels", name, 3*11, rows, len(y))
		}
		x, y, err = g.Generate(true)
		if err != nil {
			t.Fatal(name, err)
		}
		rows, _ = x.Dims()
		if rows != 3*5 || len(y) != 3*5 {
			t.Errorf("%s test: want %d samples, got %d rows %d labels", name, 3*5, rows, len(y))
		}
	}
}

func TestLabelsPerClass(t *testing.T) {
	g, err := New(Config{Name: "triangular", Train: 4, Test: 2, Seed: 0})
	if err != nil {
		t.Fatal(err)
	}
	_, y, err := g.Generate(false)
	if err != nil {
		t.Fatal(err)
	}
	counts := make(map[int]int)
	for _, c := range y {
		counts[c]++
	}
	for c := 1; c <= 3; c++ {
		if counts[c] != 4 {
			t.Errorf("class %d: want 4 samples, got %d", c, counts[c])
		}
	}
}

func TestSeedReproducible(t *testing.T) {
	gen := func() *mat.Dense {
		g, err := New(Config{Name: "cbf", Train: 3, Test: 3, Seed: 7})
		if err != nil {
			t.Fatal(err)
		}
		x, _, err := g.Generate(false)
		if err != nil {
			t.Fatal(err)
		}
		return x
	}
	a, b := gen(), gen()
	if !mat.Equal(a, b) {
		t.Fatal("same seed produced different samples")
	}
}

func TestFreshSamplesPerCall(t *testing.T) {
	g, err := New(Config{Name: "triangular", Train: 3, Test: 3, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	a, _, _ := g.Generate(false)
	b, _, _ := g.Generate(false)
	if mat.Equal(a, b) {
		t.Fatal("successive calls returned identical samples")
	}
}

func TestUnknownDataset(t *testing.T) {
	if _, err := New(Config{Name: "sine", Train: 1, Test: 1}); err == nil {
		t.Fatal("unknown dataset: expect error")
	}
}
