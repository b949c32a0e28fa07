package basis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// TopEnergy selects the K coordinates whose normalized per-class
// energy profiles differ most between classes.
// It is a stand-in for a full discriminant-basis extraction, which
// plugs in through the same Transform contract.
type TopEnergy struct {
	K int
}

// Fit computes the per-class energy maps on the training set and
// keeps the K coordinates with the highest discriminant power.
func (t TopEnergy) Fit(x mat.Matrix, y []int) (FittedTransform, *mat.Dense, error) {
	rows, cols := x.Dims()
	if rows != len(y) {
		return nil, nil, fmt.Errorf("top-energy: %d rows but %d labels", rows, len(y))
	}
	if t.K <= 0 || t.K > cols {
		return nil, nil, fmt.Errorf("top-energy: k = %d out of range 1..%d", t.K, cols)
	}
	// Normalized energy map per class.
	classes := make(map[int][]float64)
	for i := 0; i < rows; i++ {
		e := classes[y[i]]
		if e == nil {
			e = make([]float64, cols)
			classes[y[i]] = e
		}
		for j := 0; j < cols; j++ {
			v := x.At(i, j)
			e[j] += v * v
		}
	}
	if len(classes) < 2 {
		return nil, nil, fmt.Errorf("top-energy: need at least 2 classes, got %d", len(classes))
	}
	for _, e := range classes {
		var total float64
		for _, v := range e {
			total += v
		}
		if total == 0 {
			continue
		}
		for j := range e {
			e[j] /= total
		}
	}
	// Discriminant power is the sum of squared pairwise differences
	// of the class energy maps at each coordinate.
	power := make([]float64, cols)
	maps := make([][]float64, 0, len(classes))
	for _, e := range classes {
		maps = append(maps, e)
	}
	for a := 0; a < len(maps); a++ {
		for b := a + 1; b < len(maps); b++ {
			for j := 0; j < cols; j++ {
				d := maps[a][j] - maps[b][j]
				power[j] += d * d
			}
		}
	}
	idx := make([]int, cols)
	for j := range idx {
		idx[j] = j
	}
	sort.SliceStable(idx, func(a, b int) bool { return power[idx[a]] > power[idx[b]] })
	keep := append([]int(nil), idx[:t.K]...)
	sort.Ints(keep)
	ft := &fittedTopEnergy{keep: keep, cols: cols}
	feats, err := ft.Transform(x)
	if err != nil {
		return nil, nil, err
	}
	return ft, feats, nil
}

type fittedTopEnergy struct {
	keep []int
	cols int
}

func (t *fittedTopEnergy) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, cols := x.Dims()
	if cols != t.cols {
		return nil, fmt.Errorf("top-energy: fitted on %d coordinates, input has %d", t.cols, cols)
	}
	out := mat.NewDense(rows, len(t.keep), nil)
	for i := 0; i < rows; i++ {
		for j, c := range t.keep {
			out.Set(i, j, x.At(i, c))
		}
	}
	return out, nil
}
