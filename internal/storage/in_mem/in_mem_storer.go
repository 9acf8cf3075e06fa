package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/runplot/internal/summary"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	order       []uuid.UUID
	storage     map[uuid.UUID]summary.Run
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]summary.Run),
	}
}

func (s *InMemStorer) Save(_ context.Context, runs []summary.Run) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for i := range runs {
		if runs[i].ID == uuid.Nil {
			runs[i].ID = uuid.New()
		}
		if _, ok := s.storage[runs[i].ID]; !ok {
			s.order = append(s.order, runs[i].ID)
		}
		s.storage[runs[i].ID] = runs[i]
		slog.Debug("Summary stored in memory", "label", runs[i].Label, "id", runs[i].ID)
	}

	return nil
}

// All returns stored summaries in insertion order.
func (s *InMemStorer) All() []summary.Run {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make([]summary.Run, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.storage[id])
	}
	return out
}

func (s *InMemStorer) Close() {}
