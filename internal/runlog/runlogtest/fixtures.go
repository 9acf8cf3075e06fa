// Package runlogtest writes synthetic run logs for tests.
package runlogtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/runplot/internal/runlog"
)

// Value is the deterministic cell value used by Rows: distinct per (seed, epoch, column).
func Value(seed, epoch, col int) float64 {
	if col == runlog.EpochColumn {
		return float64(epoch)
	}
	if col == runlog.TimeColumn {
		return float64(epoch)*1.5 + float64(seed)
	}
	return float64(seed)*100 + float64(col) + 1/float64(epoch+2)
}

// Rows builds epochs rows for the canonical schema.
func Rows(seed, epochs int) [][]float64 {
	rows := make([][]float64, epochs)
	for e := range rows {
		row := make([]float64, runlog.FieldCount)
		for c := range row {
			row[c] = Value(seed, e, c)
		}
		rows[e] = row
	}
	return rows
}

// Format renders a header and rows the way the trainer writes them.
func Format(columns []string, rows [][]float64) string {
	var b strings.Builder
	b.WriteString(strings.Join(columns, " "))
	b.WriteString("\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString(" \n")
	}
	return b.String()
}

// WriteFile writes content under dir and returns the path.
func WriteFile(tb testing.TB, dir, name, content string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tb.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteLog writes a canonical run log with the given number of epochs.
func WriteLog(tb testing.TB, dir, name string, seed, epochs int) string {
	tb.Helper()
	return WriteFile(tb, dir, name, Format(runlog.CanonicalColumns(), Rows(seed, epochs)))
}

// WriteLogs writes one canonical log per name, seeded by position.
func WriteLogs(tb testing.TB, dir string, epochs int, names ...string) []string {
	tb.Helper()
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = WriteLog(tb, dir, n, i+1, epochs)
	}
	return paths
}

// Header returns n synthetic column names c0..c(n-1).
func Header(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("c%d", i)
	}
	return cols
}
