package runlog

import (
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
)

// Table is a parsed run log: a header plus numeric rows of equal width.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Labeled pairs a table with the display label derived from its source path.
type Labeled struct {
	Label  string
	Source string
	Table  *Table
}

func (t *Table) Width() int {
	return len(t.Columns)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Name returns the column name at index i.
func (t *Table) Name(i int) (string, error) {
	if i < 0 || i >= len(t.Columns) {
		return "", apperr.NewParse(fmt.Sprintf("column %d out of range for %d-field schema", i, len(t.Columns)))
	}
	return t.Columns[i], nil
}

// Values returns a copy of column i across all rows.
func (t *Table) Values(i int) ([]float64, error) {
	if _, err := t.Name(i); err != nil {
		return nil, err
	}
	out := make([]float64, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, nil
}

// Index returns the position of the named column or -1.
func (t *Table) Index(name string) int {
	return slices.Index(t.Columns, name)
}

// SameSchema reports whether both tables carry identical headers.
func (t *Table) SameSchema(o *Table) bool {
	return slices.Equal(t.Columns, o.Columns)
}
