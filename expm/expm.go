// Package expm runs classification experiment grids: every
// (transform, classifier) variant pair is fitted on one training
// set and scored on the training and test sets, optionally
// repeated over freshly generated trials.
package expm

import (
	"bytes"
	"encoding/gob"

	"gonum.org/v1/gonum/mat"

	"github.com/sigbasis/ldb-expm/classify"
)

// Scores maps measure name to scalar score for one (model, set) pair.
type Scores map[string]float64

// Split holds the scores of one grid cell on the training and
// test sets.
type Split struct {
	Train Scores `json:"train"`
	Test  Scores `json:"test"`
}

// Result is the nested per-trial result:
// method name → classifier name → split scores.
type Result map[string]map[string]Split

// Models holds the trained model of every grid cell,
// keyed like Result.
type Models map[string]map[string]classify.Model

// TrialResults accumulates results over repeated trials,
// keyed by decimal trial id starting at "1".
type TrialResults map[string]Result

// TrialData is one trial's generated data, immutable once built.
type TrialData struct {
	XTrain *mat.Dense
	YTrain []int
	XTest  *mat.Dense
	YTest  []int
}

// gob cannot see the unexported fields of mat.Dense, so the
// matrices travel through their binary-marshal form.
type trialDataWire struct {
	XTrain, XTest []byte
	YTrain, YTest []int
}

func (d *TrialData) GobEncode() ([]byte, error) {
	xtr, err := d.XTrain.MarshalBinary()
	if err != nil {
		return nil, err
	}
	xte, err := d.XTest.MarshalBinary()
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	wire := trialDataWire{XTrain: xtr, XTest: xte, YTrain: d.YTrain, YTest: d.YTest}
	if err := gob.NewEncoder(&b).Encode(wire); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (d *TrialData) GobDecode(p []byte) error {
	var wire trialDataWire
	if err := gob.NewDecoder(bytes.NewReader(p)).Decode(&wire); err != nil {
		return err
	}
	d.XTrain = new(mat.Dense)
	if err := d.XTrain.UnmarshalBinary(wire.XTrain); err != nil {
		return err
	}
	d.XTest = new(mat.Dense)
	if err := d.XTest.UnmarshalBinary(wire.XTest); err != nil {
		return err
	}
	d.YTrain = wire.YTrain
	d.YTest = wire.YTest
	return nil
}
