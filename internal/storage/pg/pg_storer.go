package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/runplot/internal/summary"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS run_summaries (
		id             UUID PRIMARY KEY,
		label          TEXT NOT NULL,
		source         TEXT NOT NULL,
		epochs         INTEGER NOT NULL,
		optimum_epoch  INTEGER NOT NULL,
		train_loss     DOUBLE PRECISION NOT NULL,
		train_error    DOUBLE PRECISION NOT NULL,
		valid_loss     DOUBLE PRECISION NOT NULL,
		valid_error    DOUBLE PRECISION NOT NULL,
		test_loss      DOUBLE PRECISION NOT NULL,
		test_error     DOUBLE PRECISION NOT NULL,
		elapsed        DOUBLE PRECISION NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS run_summaries_label_idx ON run_summaries (label);
`

const insertSummary = `
	INSERT INTO run_summaries (id, label, source, epochs, optimum_epoch,
		train_loss, train_error, valid_loss, valid_error, test_loss, test_error, elapsed)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		label = EXCLUDED.label,
		source = EXCLUDED.source,
		epochs = EXCLUDED.epochs,
		optimum_epoch = EXCLUDED.optimum_epoch,
		train_loss = EXCLUDED.train_loss,
		train_error = EXCLUDED.train_error,
		valid_loss = EXCLUDED.valid_loss,
		valid_error = EXCLUDED.valid_error,
		test_loss = EXCLUDED.test_loss,
		test_error = EXCLUDED.test_error,
		elapsed = EXCLUDED.elapsed
`

type Storer struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

// NewStorer creates the run_summaries table if it does not exist yet.
func NewStorer(ctx context.Context, pool *ConnectionPool) (*Storer, error) {
	if _, err := pool.conn.Exec(ctx, createTable); err != nil {
		return nil, fmt.Errorf("failed to create run_summaries table: %w", err)
	}
	return &Storer{pool: pool, db: pool.conn}, nil
}

// Save inserts all summaries in one transaction.
func (s *Storer) Save(ctx context.Context, runs []summary.Run) error {
	if len(runs) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i := range runs {
		r := &runs[i]
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		_, err := tx.Exec(ctx, insertSummary,
			r.ID, r.Label, r.Source, r.Epochs, r.OptimumEpoch,
			r.TrainLoss, r.TrainError, r.ValidLoss, r.ValidError, r.TestLoss, r.TestError, r.Elapsed,
		)
		if err != nil {
			return fmt.Errorf("failed to insert summary %q: %w", r.Label, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit summaries: %w", err)
	}

	slog.Info("Summaries stored", "storage", "pg", "count", len(runs))
	return nil
}

// ByLabel returns stored summaries for a label, oldest first.
func (s *Storer) ByLabel(ctx context.Context, label string) ([]summary.Run, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, label, source, epochs, optimum_epoch,
			train_loss, train_error, valid_loss, valid_error, test_loss, test_error, elapsed
		FROM run_summaries WHERE label = $1 ORDER BY created_at, id`, label)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var out []summary.Run
	for rows.Next() {
		var r summary.Run
		if err := rows.Scan(&r.ID, &r.Label, &r.Source, &r.Epochs, &r.OptimumEpoch,
			&r.TrainLoss, &r.TrainError, &r.ValidLoss, &r.ValidError, &r.TestLoss, &r.TestError, &r.Elapsed); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Storer) Close() {
	s.pool.Close()
}
