package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// Column naming convention shared by flat and aggregate tables.
// The measure name is recovered from the first header matching it.
var scoreHeader = regexp.MustCompile(`^(?:Train|Test)_(.+)$`)

// Save writes the table to <dir>/complete/<measure>.csv.
func (tab *Table) Save(dir string) error {
	fname := filepath.Join(dir, "complete", tab.Measure+".csv")
	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return err
	}
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeTable(file, tab)
}

func EncodeTable(w io.Writer, tab *Table) error {
	cw := csv.NewWriter(w)
	header := []string{"Experiment", "Method", "Classifier", "Train_" + tab.Measure, "Test_" + tab.Measure}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range tab.Rows {
		rec := []string{
			strconv.FormatUint(uint64(r.Experiment), 10),
			r.Method,
			r.Classifier,
			formatScore(r.Train),
			formatScore(r.Test),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func DecodeTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	name, err := headerMeasure(records[0])
	if err != nil {
		return nil, err
	}
	tab := &Table{Measure: name}
	for _, rec := range records[1:] {
		if len(rec) != 5 {
			return nil, fmt.Errorf("row with %d fields, want 5", len(rec))
		}
		trial, err := strconv.ParseUint(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("experiment id %q: %w", rec[0], err)
		}
		train, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("train score %q: %w", rec[3], err)
		}
		test, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("test score %q: %w", rec[4], err)
		}
		tab.Rows = append(tab.Rows, Row{
			Experiment: uint(trial),
			Method:     rec[1],
			Classifier: rec[2],
			Train:      train,
			Test:       test,
		})
	}
	return tab, nil
}

// Save writes the summary to <dir>/aggregate/<measure>.csv.
func (sum *Summary) Save(dir string) error {
	fname := filepath.Join(dir, "aggregate", sum.Measure+".csv")
	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return err
	}
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeSummary(file, sum)
}

func EncodeSummary(w io.Writer, sum *Summary) error {
	cw := csv.NewWriter(w)
	header := []string{"Method", "Classifier", "Train_" + sum.Measure, "Test_" + sum.Measure}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range sum.Rows {
		rec := []string{r.Method, r.Classifier, formatScore(r.Train), formatScore(r.Test)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func DecodeSummary(r io.Reader) (*Summary, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty summary")
	}
	name, err := headerMeasure(records[0])
	if err != nil {
		return nil, err
	}
	sum := &Summary{Measure: name}
	for _, rec := range records[1:] {
		if len(rec) != 4 {
			return nil, fmt.Errorf("row with %d fields, want 4", len(rec))
		}
		train, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("train score %q: %w", rec[2], err)
		}
		test, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("test score %q: %w", rec[3], err)
		}
		sum.Rows = append(sum.Rows, AggRow{Method: rec[0], Classifier: rec[1], Train: train, Test: test})
	}
	return sum, nil
}

// headerMeasure returns the measure from the first score column.
func headerMeasure(header []string) (string, error) {
	for _, col := range header {
		if m := scoreHeader.FindStringSubmatch(col); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("no Train_<measure> or Test_<measure> column in header %v", header)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
