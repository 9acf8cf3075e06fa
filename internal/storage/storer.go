package storage

import (
	"context"

	"github.com/DjordjeVuckovic/runplot/internal/summary"
)

// Storer persists run summaries. Save assigns a fresh ID to every summary
// that has none, in place.
type Storer interface {
	Save(ctx context.Context, runs []summary.Run) error
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

func Types() []Type {
	return []Type{ES, PG, InMem}
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
