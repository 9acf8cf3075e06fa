package summary

import (
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
	"github.com/DjordjeVuckovic/runplot/internal/runlog"
)

var (
	validError = runlog.Column(runlog.Valid, runlog.ErrorAverage)
	validLoss  = runlog.Column(runlog.Valid, runlog.LossAverage)
)

// Summarize extracts the optimum of a canonical run log. The optimum row has
// the lowest validation error average; ties go to the lowest validation loss
// average, then to the earliest epoch. Rows with a non-finite validation error
// never qualify.
func Summarize(run *runlog.Labeled) (Run, error) {
	t := run.Table
	if t.Width() < runlog.FieldCount {
		return Run{}, apperr.NewParse(fmt.Sprintf("run %q: %d fields, summaries need the %d-field layout", run.Label, t.Width(), runlog.FieldCount))
	}
	if t.Len() == 0 {
		return Run{}, apperr.NewParse(fmt.Sprintf("run %q: no epochs", run.Label))
	}

	best := -1
	for i, row := range t.Rows {
		if math.IsNaN(row[validError]) || math.IsInf(row[validError], 0) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := t.Rows[best]
		if row[validError] < b[validError] ||
			(row[validError] == b[validError] && row[validLoss] < b[validLoss]) {
			best = i
		}
	}
	if best < 0 {
		return Run{}, apperr.NewParse(fmt.Sprintf("run %q: no epoch with a finite validation error", run.Label))
	}

	row := t.Rows[best]
	col := func(split runlog.Split, base int) float64 {
		return row[runlog.Column(split, base)]
	}

	return Run{
		Label:        run.Label,
		Source:       run.Source,
		Epochs:       t.Len(),
		OptimumEpoch: int(row[runlog.EpochColumn]),
		TrainLoss:    col(runlog.Train, runlog.LossAverage),
		TrainError:   col(runlog.Train, runlog.ErrorAverage),
		ValidLoss:    col(runlog.Valid, runlog.LossAverage),
		ValidError:   col(runlog.Valid, runlog.ErrorAverage),
		TestLoss:     col(runlog.Test, runlog.LossAverage),
		TestError:    col(runlog.Test, runlog.ErrorAverage),
		Elapsed:      t.Rows[t.Len()-1][runlog.TimeColumn],
	}, nil
}

// SummarizeAll loads and summarizes every path in order.
func SummarizeAll(paths []string) ([]Run, error) {
	if len(paths) == 0 {
		return nil, apperr.NewInput("no run logs to summarize")
	}

	runs, err := runlog.ReadAll(paths)
	if err != nil {
		return nil, err
	}

	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		s, err := Summarize(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
