package runlog

import "strings"

// Canonical run-log layout: epoch, three split blocks of seven statistics, elapsed time.
const (
	EpochColumn = 0
	TimeColumn  = 22
	FieldCount  = 23

	BlockSize = 7
)

// Offsets of each split block relative to a statistic base. A base of 0 selects
// the criterion, 1 the loss average and 4 the error average.
const (
	TrainOffset = 1
	ValidOffset = 8
	TestOffset  = 15
)

// Statistic bases within a split block.
const (
	Criterion = iota
	LossAverage
	LossVariance
	LossMaximum
	ErrorAverage
	ErrorVariance
	ErrorMaximum
)

// Split identifies a train/validation/test partition.
type Split string

const (
	Train Split = "train"
	Valid Split = "valid"
	Test  Split = "test"
)

var splitPrefixes = []string{string(Train) + "_", string(Valid) + "_", string(Test) + "_"}

// Splits lists the partitions in block order with their column offsets.
func Splits() []struct {
	Split  Split
	Offset int
} {
	return []struct {
		Split  Split
		Offset int
	}{
		{Train, TrainOffset},
		{Valid, ValidOffset},
		{Test, TestOffset},
	}
}

// Column returns the canonical index of a statistic for a split.
func Column(split Split, base int) int {
	for _, s := range Splits() {
		if s.Split == split {
			return base + s.Offset
		}
	}
	return -1
}

// StripSplitPrefix removes a leading train_/valid_/test_ from a column name.
func StripSplitPrefix(name string) string {
	for _, p := range splitPrefixes {
		if strings.HasPrefix(name, p) {
			return strings.TrimPrefix(name, p)
		}
	}
	return name
}

var statisticNames = []string{"criterion", "loss_avg", "loss_var", "loss_max", "error_avg", "error_var", "error_max"}

// CanonicalColumns returns the header written by the trainer for the 23-field layout.
func CanonicalColumns() []string {
	cols := make([]string, 0, FieldCount)
	cols = append(cols, "epoch")
	for _, s := range Splits() {
		for _, stat := range statisticNames {
			cols = append(cols, string(s.Split)+"_"+stat)
		}
	}
	return append(cols, "time")
}
