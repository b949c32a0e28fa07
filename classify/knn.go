package classify

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// KNN is the k-nearest-neighbour baseline with Euclidean distance.
type KNN struct {
	K int
}

func (c KNN) Fit(x mat.Matrix, y []int) (Model, error) {
	if err := checkTrainingSet(x, y); err != nil {
		return nil, fmt.Errorf("knn: %w", err)
	}
	rows, cols := x.Dims()
	k := c.K
	if k <= 0 {
		k = 1
	}
	if k > rows {
		return nil, fmt.Errorf("knn: k = %d exceeds %d training samples", k, rows)
	}
	// Copy the training set; the model outlives the trial data.
	ref := mat.NewDense(rows, cols, nil)
	ref.Copy(x)
	labels := append([]int(nil), y...)
	return &knnModel{k: k, x: ref, y: labels}, nil
}

type knnModel struct {
	k int
	x *mat.Dense
	y []int
}

func (m *knnModel) Predict(x mat.Matrix) ([]int, error) {
	rows, cols := x.Dims()
	refRows, refCols := m.x.Dims()
	if cols != refCols {
		return nil, fmt.Errorf("knn: trained on %d features, input has %d", refCols, cols)
	}
	out := make([]int, rows)
	dist := make([]float64, refRows)
	order := make([]int, refRows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		mat.Row(row, i, x)
		for r := 0; r < refRows; r++ {
			dist[r] = sqDist(m.x, r, row)
			order[r] = r
		}
		// Ties on distance resolve to the earlier training sample.
		sort.SliceStable(order, func(a, b int) bool { return dist[order[a]] < dist[order[b]] })
		out[i] = vote(order[:m.k], m.y)
	}
	return out, nil
}

// vote returns the modal label among the chosen neighbours,
// lowest label winning ties.
func vote(idx []int, y []int) int {
	counts := make(map[int]int, len(idx))
	for _, r := range idx {
		counts[y[r]]++
	}
	best, bestCount := 0, 0
	for label, n := range counts {
		if n > bestCount || (n == bestCount && label < best) {
			best, bestCount = label, n
		}
	}
	return best
}
