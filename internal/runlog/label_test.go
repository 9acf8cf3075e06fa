package runlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DjordjeVuckovic/runplot/internal/runlog"
)

func TestDeriveLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"trial3_run.state", "run"},
		{"summary.state", "summary"},
		{"/exp/mnist/t1_stoch_adam.state", "stoch_adam"},
		{"a_run1.state", "run1"},
		{"runs/noext", "noext"},
		{"trial_.state", ""},
		{"_lead.state", "lead"},
		{"dir.v2/x_y.tar.state", "y.tar"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, runlog.DeriveLabel(tt.path))
		})
	}
}

func TestDeriveLabel_IdempotentOnStrippedForm(t *testing.T) {
	for _, p := range []string{"trial3_run.state", "summary.state", "x/t9_adam.log"} {
		once := runlog.DeriveLabel(p)
		assert.Equal(t, once, runlog.DeriveLabel(p))
		assert.Equal(t, once, runlog.DeriveLabel(once))
	}
}

func TestStripSplitPrefix(t *testing.T) {
	assert.Equal(t, "loss_avg", runlog.StripSplitPrefix("train_loss_avg"))
	assert.Equal(t, "error_avg", runlog.StripSplitPrefix("valid_error_avg"))
	assert.Equal(t, "criterion", runlog.StripSplitPrefix("test_criterion"))
	assert.Equal(t, "time", runlog.StripSplitPrefix("time"))
	assert.Equal(t, "trainer", runlog.StripSplitPrefix("trainer"))
}

func TestCanonicalColumns(t *testing.T) {
	cols := runlog.CanonicalColumns()

	assert.Len(t, cols, runlog.FieldCount)
	assert.Equal(t, "epoch", cols[runlog.EpochColumn])
	assert.Equal(t, "time", cols[runlog.TimeColumn])
	assert.Equal(t, "train_criterion", cols[runlog.Column(runlog.Train, runlog.Criterion)])
	assert.Equal(t, "valid_loss_avg", cols[runlog.Column(runlog.Valid, runlog.LossAverage)])
	assert.Equal(t, "test_error_avg", cols[runlog.Column(runlog.Test, runlog.ErrorAverage)])
	assert.Equal(t, "test_error_max", cols[runlog.Column(runlog.Test, runlog.ErrorMaximum)])
}

func TestTable_Lookup(t *testing.T) {
	tbl := &runlog.Table{Columns: []string{"epoch", "loss"}, Rows: [][]float64{{0, 2}, {1, 1}}}

	v, err := tbl.Values(1)
	assert.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, v)

	_, err = tbl.Values(2)
	assert.Error(t, err)

	assert.Equal(t, 1, tbl.Index("loss"))
	assert.Equal(t, -1, tbl.Index("missing"))
	assert.True(t, tbl.SameSchema(&runlog.Table{Columns: []string{"epoch", "loss"}}))
	assert.False(t, tbl.SameSchema(&runlog.Table{Columns: []string{"loss", "epoch"}}))
}
