package classify

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Centroid is the nearest-class-centroid baseline.
type Centroid struct{}

func (Centroid) Fit(x mat.Matrix, y []int) (Model, error) {
	if err := checkTrainingSet(x, y); err != nil {
		return nil, fmt.Errorf("centroid: %w", err)
	}
	rows, cols := x.Dims()
	sums := make(map[int][]float64)
	counts := make(map[int]int)
	for i := 0; i < rows; i++ {
		s := sums[y[i]]
		if s == nil {
			s = make([]float64, cols)
			sums[y[i]] = s
		}
		for j := 0; j < cols; j++ {
			s[j] += x.At(i, j)
		}
		counts[y[i]]++
	}
	m := &centroidModel{cols: cols}
	for c, s := range sums {
		for j := range s {
			s[j] /= float64(counts[c])
		}
		m.classes = append(m.classes, c)
		m.means = append(m.means, s)
	}
	// Deterministic tie-breaking: lowest class label wins.
	sort.Sort(byClass{m.classes, m.means})
	return m, nil
}

type centroidModel struct {
	cols    int
	classes []int
	means   [][]float64
}

func (m *centroidModel) Predict(x mat.Matrix) ([]int, error) {
	rows, cols := x.Dims()
	if cols != m.cols {
		return nil, fmt.Errorf("centroid: trained on %d features, input has %d", m.cols, cols)
	}
	y := make([]int, rows)
	for i := 0; i < rows; i++ {
		best := 0
		bestDist := sqDist(x, i, m.means[0])
		for k := 1; k < len(m.means); k++ {
			if d := sqDist(x, i, m.means[k]); d < bestDist {
				best, bestDist = k, d
			}
		}
		y[i] = m.classes[best]
	}
	return y, nil
}

type byClass struct {
	classes []int
	means   [][]float64
}

func (s byClass) Len() int           { return len(s.classes) }
func (s byClass) Less(i, j int) bool { return s.classes[i] < s.classes[j] }
func (s byClass) Swap(i, j int) {
	s.classes[i], s.classes[j] = s.classes[j], s.classes[i]
	s.means[i], s.means[j] = s.means[j], s.means[i]
}
