package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
)

// writeAtomic streams into a temporary sibling of path and renames it into
// place once write and close succeed. On failure the temporary file is removed
// and path is left untouched. Only file system failures become WriteError;
// errors raised by write itself, such as a chart that cannot be drawn, are
// returned as they are.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return apperr.NewWrite(path, err)
	}

	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			err = multierror.Append(err, fmt.Errorf("remove temp file: %w", rmErr))
		}
	}()

	fw := &fileWriter{f: tmp}
	if err := write(fw); err != nil {
		_ = tmp.Close()
		if fw.err != nil {
			return apperr.NewWrite(path, fw.err)
		}
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return apperr.NewWrite(path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.NewWrite(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return apperr.NewWrite(path, err)
	}
	return nil
}

// fileWriter remembers the first I/O error so callers can tell a failing disk
// apart from a failing encoder.
type fileWriter struct {
	f   *os.File
	err error
}

func (w *fileWriter) Write(p []byte) (int, error) {
	n, err := w.f.Write(p)
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}
