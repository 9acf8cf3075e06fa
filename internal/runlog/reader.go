package runlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
)

const maxLineSize = 1 << 20

type Reader struct {
	reader io.Reader
	source string
}

func NewReader(reader io.Reader, source string) *Reader {
	return &Reader{
		reader: reader,
		source: source,
	}
}

// Read parses a whitespace-delimited log: one header line of field names
// followed by numeric rows of the same width.
func (lr *Reader) Read() (*Table, error) {
	scanner := bufio.NewScanner(lr.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var t *Table
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if t == nil {
			t = &Table{Columns: fields}
			continue
		}

		if len(fields) != len(t.Columns) {
			return nil, apperr.NewParse(fmt.Sprintf("%s:%d: expected %d fields, got %d", lr.source, line, len(t.Columns), len(fields)))
		}

		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, apperr.NewParseWrap(fmt.Sprintf("%s:%d: field %q", lr.source, line, t.Columns[i]), err)
			}
			row[i] = v
		}

		if n := len(t.Rows); n > 0 && row[EpochColumn] < t.Rows[n-1][EpochColumn] {
			return nil, apperr.NewParse(fmt.Sprintf("%s:%d: epoch %v decreases after %v", lr.source, line, row[EpochColumn], t.Rows[n-1][EpochColumn]))
		}

		t.Rows = append(t.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.NewParseWrap(fmt.Sprintf("%s: scan", lr.source), err)
	}
	if t == nil {
		return nil, apperr.NewParse(fmt.Sprintf("%s: missing header", lr.source))
	}

	return t, nil
}

// Read loads one run log from disk and labels it.
func Read(path string) (*Labeled, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NewNotFound(path, err)
		}
		return nil, fmt.Errorf("open run log: %w", err)
	}
	defer file.Close()

	t, err := NewReader(file, path).Read()
	if err != nil {
		return nil, err
	}

	label := DeriveLabel(path)
	slog.Debug("Run log loaded", "path", path, "label", label, "rows", t.Len(), "fields", t.Width())

	return &Labeled{Label: label, Source: path, Table: t}, nil
}

// ReadAll loads every path in order, stopping at the first failure.
func ReadAll(paths []string) ([]*Labeled, error) {
	out := make([]*Labeled, 0, len(paths))
	for _, p := range paths {
		lt, err := Read(p)
		if err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, nil
}
