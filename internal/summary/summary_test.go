package summary

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
	"github.com/DjordjeVuckovic/runplot/internal/runlog"
	"github.com/DjordjeVuckovic/runplot/internal/runlog/runlogtest"
)

func labeled(label string, rows [][]float64) *runlog.Labeled {
	return &runlog.Labeled{
		Label:  label,
		Source: "t1_" + label + ".state",
		Table:  &runlog.Table{Columns: runlog.CanonicalColumns(), Rows: rows},
	}
}

// withValid overrides the validation loss and error of a row.
func withValid(row []float64, loss, errAvg float64) []float64 {
	out := append([]float64(nil), row...)
	out[runlog.Column(runlog.Valid, runlog.LossAverage)] = loss
	out[runlog.Column(runlog.Valid, runlog.ErrorAverage)] = errAvg
	return out
}

func TestSummarize(t *testing.T) {
	rows := runlogtest.Rows(1, 4)
	rows[0] = withValid(rows[0], 0.9, 0.30)
	rows[1] = withValid(rows[1], 0.7, 0.20)
	rows[2] = withValid(rows[2], 0.5, 0.25)
	rows[3] = withValid(rows[3], 0.4, 0.22)

	s, err := Summarize(labeled("adam", rows))

	require.NoError(t, err)
	assert.Equal(t, "adam", s.Label)
	assert.Equal(t, "t1_adam.state", s.Source)
	assert.Equal(t, 4, s.Epochs)
	assert.Equal(t, 1, s.OptimumEpoch)
	assert.Equal(t, 0.20, s.ValidError)
	assert.Equal(t, 0.7, s.ValidLoss)
	assert.Equal(t, runlogtest.Value(1, 1, runlog.Column(runlog.Test, runlog.ErrorAverage)), s.TestError)
	assert.Equal(t, runlogtest.Value(1, 1, runlog.Column(runlog.Train, runlog.LossAverage)), s.TrainLoss)
	assert.Equal(t, runlogtest.Value(1, 3, runlog.TimeColumn), s.Elapsed)
}

func TestSummarize_Ties(t *testing.T) {
	t.Run("lower validation loss wins", func(t *testing.T) {
		rows := runlogtest.Rows(1, 3)
		rows[0] = withValid(rows[0], 0.8, 0.1)
		rows[1] = withValid(rows[1], 0.6, 0.1)
		rows[2] = withValid(rows[2], 0.7, 0.1)

		s, err := Summarize(labeled("sgd", rows))

		require.NoError(t, err)
		assert.Equal(t, 1, s.OptimumEpoch)
	})

	t.Run("earliest epoch wins on full tie", func(t *testing.T) {
		rows := runlogtest.Rows(1, 3)
		for i := range rows {
			rows[i] = withValid(rows[i], 0.5, 0.1)
		}

		s, err := Summarize(labeled("sgd", rows))

		require.NoError(t, err)
		assert.Equal(t, 0, s.OptimumEpoch)
	})
}

func TestSummarize_NonFiniteValidation(t *testing.T) {
	rows := runlogtest.Rows(1, 4)
	rows[0] = withValid(rows[0], 0.9, math.NaN())
	rows[1] = withValid(rows[1], 0.7, 0.30)
	rows[2] = withValid(rows[2], 0.5, math.Inf(-1))
	rows[3] = withValid(rows[3], 0.4, 0.25)

	s, err := Summarize(labeled("adam", rows))

	require.NoError(t, err)
	assert.Equal(t, 3, s.OptimumEpoch)
	assert.Equal(t, 0.25, s.ValidError)

	for i := range rows {
		rows[i] = withValid(rows[i], 0.5, math.NaN())
	}
	_, err = Summarize(labeled("diverged", rows))
	var pe *apperr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "diverged")
}

func TestSummarize_Errors(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		_, err := Summarize(labeled("empty", nil))
		var pe *apperr.ParseError
		assert.True(t, errors.As(err, &pe))
	})

	t.Run("narrow schema", func(t *testing.T) {
		run := &runlog.Labeled{
			Label: "narrow",
			Table: &runlog.Table{Columns: runlogtest.Header(5), Rows: [][]float64{make([]float64, 5)}},
		}
		_, err := Summarize(run)
		var pe *apperr.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Contains(t, err.Error(), "narrow")
	})
}

func TestSummarizeAll(t *testing.T) {
	dir := t.TempDir()
	paths := runlogtest.WriteLogs(t, dir, 5, "t1_adam.state", "t2_adam.state", "t1_sgd.state")

	runs, err := SummarizeAll(paths)

	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"adam", "adam", "sgd"}, []string{runs[0].Label, runs[1].Label, runs[2].Label})
	assert.Equal(t, paths[2], runs[2].Source)

	_, err = SummarizeAll(nil)
	var ie *apperr.InputError
	assert.True(t, errors.As(err, &ie))
}

func TestAggregate(t *testing.T) {
	runs := []Run{
		{Label: "sgd", TestError: 0.30, ValidError: 0.20, Elapsed: 10, OptimumEpoch: 4},
		{Label: "adam", TestError: 0.10, ValidError: 0.12, Elapsed: 20, OptimumEpoch: 2},
		{Label: "sgd", TestError: 0.20, ValidError: 0.10, Elapsed: 30, OptimumEpoch: 6},
	}

	agg := Aggregate(runs)

	require.Len(t, agg, 2)
	assert.Equal(t, "sgd", agg[0].Label)
	assert.Equal(t, 2, agg[0].Trials)
	assert.InDelta(t, 0.25, agg[0].TestErrorMean, 1e-9)
	assert.InDelta(t, 0.05, agg[0].TestErrorStd, 1e-9)
	assert.InDelta(t, 0.15, agg[0].ValidErrorMean, 1e-9)
	assert.InDelta(t, 20.0, agg[0].ElapsedMean, 1e-9)
	assert.InDelta(t, 10.0, agg[0].ElapsedStd, 1e-9)
	assert.InDelta(t, 5.0, agg[0].OptimumEpochMean, 1e-9)

	assert.Equal(t, "adam", agg[1].Label)
	assert.Equal(t, 1, agg[1].Trials)
	assert.Zero(t, agg[1].TestErrorStd)

	assert.Empty(t, Aggregate(nil))
}

func TestWriteTable(t *testing.T) {
	runs := []Run{{Label: "adam", Source: "t1_adam.state", Epochs: 10, OptimumEpoch: 7, TestError: 0.125}}

	var buf bytes.Buffer
	WriteTable(&buf, runs, Aggregate(runs))

	out := buf.String()
	assert.Contains(t, out, "Run Summaries")
	assert.Contains(t, out, "t1_adam.state")
	assert.Contains(t, out, "0.1250")
	assert.Contains(t, out, "Aggregated by label")
}

func TestWriteCSV(t *testing.T) {
	runs := []Run{
		{Label: "adam", Source: "a.state", Epochs: 3, OptimumEpoch: 1, ValidError: 0.2, TestError: 0.25, Elapsed: 4.5},
		{Label: "sgd", Source: "b.state", Epochs: 3, OptimumEpoch: 2, ValidError: 0.3, TestError: 0.35, Elapsed: 6},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, runs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "label,source,epochs,optimum_epoch"))

	var back []Run
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &back))
	assert.Equal(t, runs, back)
}
