package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/runplot/internal/storage"
	"github.com/DjordjeVuckovic/runplot/internal/storage/es"
	"github.com/DjordjeVuckovic/runplot/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/runplot/internal/storage/pg"
	"github.com/DjordjeVuckovic/runplot/pkg/server"
)

// NewStorer connects the configured backend. The returned health checker
// probes the backend; in_mem and es report healthy once constructed.
func NewStorer(ctx context.Context, cfg *StorageConfig) (storage.Storer, server.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		storer, err := pg.NewStorer(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return storer, pg.NewHealthChecker(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return storer, server.NewOkHealthChecker(), nil

	case storage.InMem:
		return in_mem.NewInMemStorer(), server.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
