package measure

import (
	"math"
	"testing"
)

func TestAccuracy(t *testing.T) {
	pred := []int{1, 2, 3, 1}
	truth := []int{1, 2, 1, 1}
	if got, want := Accuracy.Score(pred, truth), 0.75; got != want {
		t.Errorf("accuracy: want %g, got %g", want, got)
	}
	if got, want := ErrorRate.Score(pred, truth), 0.25; got != want {
		t.Errorf("error rate: want %g, got %g", want, got)
	}
}

func TestBalancedAccuracy(t *testing.T) {
	// Class 1: 3 of 4 correct. Class 2: 1 of 2 correct.
	pred := []int{1, 1, 1, 2, 2, 1}
	truth := []int{1, 1, 1, 1, 2, 2}
	got := BalancedAccuracy.Score(pred, truth)
	want := (0.75 + 0.5) / 2
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("balanced accuracy: want %g, got %g", want, got)
	}
}

func TestCheck(t *testing.T) {
	if err := Check([]Measure{Accuracy, ErrorRate}); err != nil {
		t.Fatal("distinct names:", err)
	}
	if err := Check([]Measure{Accuracy, Accuracy}); err == nil {
		t.Fatal("duplicate names: expect error")
	}
	if err := Check([]Measure{{Name: ""}}); err == nil {
		t.Fatal("empty name: expect error")
	}
}
