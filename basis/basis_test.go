package basis

import (
	"encoding/json"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNamed(t *testing.T) {
	ts := []Transform{nil, TopEnergy{K: 4}, TopEnergy{K: 8}}
	m := Named("ldb", ts)
	if len(m) != 3 {
		t.Fatalf("number of variants: want 3, got %d", len(m))
	}
	for i, name := range []string{"ldb_1", "ldb_2", "ldb_3"} {
		v, ok := m[name]
		if !ok {
			t.Fatalf("missing variant %q", name)
		}
		if (v == nil) != (ts[i] == nil) {
			t.Errorf("variant %q: wrong value", name)
		}
	}
}

func TestTopEnergy(t *testing.T) {
	// Two classes separated on coordinates 1 and 3 only.
	x := mat.NewDense(4, 4, []float64{
		0, 5, 0, 5,
		0, 4, 0, 4,
		0, 0, 5, 0,
		0, 0, 4, 0,
	})
	y := []int{1, 1, 2, 2}
	ft, feats, err := TopEnergy{K: 2}.Fit(x, y)
	if err != nil {
		t.Fatal("fit:", err)
	}
	rows, cols := feats.Dims()
	if rows != 4 || cols != 2 {
		t.Fatalf("feature dims: want 4x2, got %dx%d", rows, cols)
	}
	// Coordinate 0 carries no energy in either class and must be dropped.
	for i := 0; i < rows; i++ {
		if feats.At(i, 0) == 0 && feats.At(i, 1) == 0 {
			t.Errorf("row %d: selected empty coordinates", i)
		}
	}
	// Transform-only path agrees with the fit features.
	again, err := ft.Transform(x)
	if err != nil {
		t.Fatal("transform:", err)
	}
	if !mat.Equal(feats, again) {
		t.Fatal("transform disagrees with fit features")
	}
}

func TestTopEnergyBadInput(t *testing.T) {
	x := mat.NewDense(2, 4, nil)
	if _, _, err := (TopEnergy{K: 5}).Fit(x, []int{1, 2}); err == nil {
		t.Fatal("k too large: expect error")
	}
	if _, _, err := (TopEnergy{K: 2}).Fit(x, []int{1, 1}); err == nil {
		t.Fatal("single class: expect error")
	}
	if _, _, err := (TopEnergy{K: 2}).Fit(x, []int{1}); err == nil {
		t.Fatal("label length mismatch: expect error")
	}
}

func TestTransformWidthMismatch(t *testing.T) {
	x := mat.NewDense(4, 4, []float64{
		0, 5, 0, 5,
		0, 4, 0, 4,
		0, 0, 5, 0,
		0, 0, 4, 0,
	})
	ft, _, err := TopEnergy{K: 2}.Fit(x, []int{1, 1, 2, 2})
	if err != nil {
		t.Fatal("fit:", err)
	}
	if _, err := ft.Transform(mat.NewDense(1, 3, nil)); err == nil {
		t.Fatal("width mismatch: expect error")
	}
}

func TestMessageJSON(t *testing.T) {
	var m Message
	if err := json.Unmarshal([]byte(`{"Type": "top-energy", "Spec": {"K": 6}}`), &m); err != nil {
		t.Fatal("decode:", err)
	}
	te, ok := m.Spec.(*TopEnergy)
	if !ok {
		t.Fatalf("spec type: want *TopEnergy, got %T", m.Spec)
	}
	if te.K != 6 {
		t.Errorf("K: want 6, got %d", te.K)
	}

	var none Message
	if err := json.Unmarshal([]byte(`{"Type": "none"}`), &none); err != nil {
		t.Fatal("decode none:", err)
	}
	if none.Spec != nil {
		t.Fatalf("none spec: want nil, got %T", none.Spec)
	}

	var bad Message
	if err := json.Unmarshal([]byte(`{"Type": "wavelet-packet"}`), &bad); err == nil {
		t.Fatal("unknown type: expect error")
	}
}
