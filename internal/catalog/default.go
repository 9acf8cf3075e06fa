package catalog

import "github.com/DjordjeVuckovic/runplot/internal/runlog"

// defaultMetrics are the plotted columns of the canonical schema: criterion,
// loss average and error average of each split, then elapsed time.
var defaultMetrics = []int{
	runlog.Column(runlog.Train, runlog.Criterion),
	runlog.Column(runlog.Train, runlog.LossAverage),
	runlog.Column(runlog.Train, runlog.ErrorAverage),
	runlog.Column(runlog.Valid, runlog.Criterion),
	runlog.Column(runlog.Valid, runlog.LossAverage),
	runlog.Column(runlog.Valid, runlog.ErrorAverage),
	runlog.Column(runlog.Test, runlog.Criterion),
	runlog.Column(runlog.Test, runlog.LossAverage),
	runlog.Column(runlog.Test, runlog.ErrorAverage),
	runlog.TimeColumn,
}

var defaultXAxes = []int{runlog.EpochColumn, runlog.TimeColumn}

// Default returns the 20-entry comparison catalog for the canonical schema:
// every default metric against epoch, then against time.
func Default() *Catalog {
	c := &Catalog{
		Name:    "default",
		XAxes:   append([]int(nil), defaultXAxes...),
		Metrics: append([]int(nil), defaultMetrics...),
	}
	c.expand()
	return c
}

// DefaultOverlay returns the single-run layout: criterion, loss average and
// error average, each with train/valid/test curves against epoch.
func DefaultOverlay() Overlay {
	return Overlay{
		X:       runlog.EpochColumn,
		Bases:   []int{runlog.Criterion, runlog.LossAverage, runlog.ErrorAverage},
		Offsets: []int{runlog.TrainOffset, runlog.ValidOffset, runlog.TestOffset},
	}
}
