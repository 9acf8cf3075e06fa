package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/DjordjeVuckovic/runplot/internal/summary"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the indexed form of a run summary.
type Document struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Source       string    `json:"source"`
	Epochs       int       `json:"epochs"`
	OptimumEpoch int       `json:"optimum_epoch"`
	TrainLoss    float64   `json:"train_loss"`
	TrainError   float64   `json:"train_error"`
	ValidLoss    float64   `json:"valid_loss"`
	ValidError   float64   `json:"valid_error"`
	TestLoss     float64   `json:"test_loss"`
	TestError    float64   `json:"test_error"`
	Elapsed      float64   `json:"elapsed"`
	IndexedAt    time.Time `json:"indexed_at"`
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

// Save indexes one document per summary. Every summary is attempted; failures
// are collected and returned together.
func (e *Storer) Save(ctx context.Context, runs []summary.Run) error {
	var result *multierror.Error
	indexed := 0
	for i := range runs {
		if runs[i].ID == uuid.Nil {
			runs[i].ID = uuid.New()
		}
		doc := toDocument(runs[i])

		if _, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("index summary %q: %w", doc.Label, err))
			continue
		}
		indexed++
	}

	slog.Info("Summaries indexed", "index", e.indexName, "indexed", indexed, "total", len(runs))
	return result.ErrorOrNil()
}

// Get returns the stored summary with the given ID.
func (e *Storer) Get(ctx context.Context, id uuid.UUID) (summary.Run, bool, error) {
	res, err := e.client.Get(e.indexName, id.String()).Do(ctx)
	if err != nil {
		return summary.Run{}, false, fmt.Errorf("failed to get summary: %w", err)
	}
	if !res.Found {
		return summary.Run{}, false, nil
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return summary.Run{}, false, fmt.Errorf("failed to decode summary: %w", err)
	}
	return fromDocument(doc), true, nil
}

func (e *Storer) Close() {}

func toDocument(r summary.Run) Document {
	return Document{
		ID:           r.ID.String(),
		Label:        r.Label,
		Source:       r.Source,
		Epochs:       r.Epochs,
		OptimumEpoch: r.OptimumEpoch,
		TrainLoss:    r.TrainLoss,
		TrainError:   r.TrainError,
		ValidLoss:    r.ValidLoss,
		ValidError:   r.ValidError,
		TestLoss:     r.TestLoss,
		TestError:    r.TestError,
		Elapsed:      r.Elapsed,
		IndexedAt:    time.Now().UTC(),
	}
}

func fromDocument(d Document) summary.Run {
	id, _ := uuid.Parse(d.ID)
	return summary.Run{
		ID:           id,
		Label:        d.Label,
		Source:       d.Source,
		Epochs:       d.Epochs,
		OptimumEpoch: d.OptimumEpoch,
		TrainLoss:    d.TrainLoss,
		TrainError:   d.TrainError,
		ValidLoss:    d.ValidLoss,
		ValidError:   d.ValidError,
		TestLoss:     d.TestLoss,
		TestError:    d.TestError,
		Elapsed:      d.Elapsed,
	}
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":            types.NewKeywordProperty(),
			"label":         types.NewKeywordProperty(),
			"source":        types.NewKeywordProperty(),
			"epochs":        types.NewIntegerNumberProperty(),
			"optimum_epoch": types.NewIntegerNumberProperty(),
			"train_loss":    types.NewDoubleNumberProperty(),
			"train_error":   types.NewDoubleNumberProperty(),
			"valid_loss":    types.NewDoubleNumberProperty(),
			"valid_error":   types.NewDoubleNumberProperty(),
			"test_loss":     types.NewDoubleNumberProperty(),
			"test_error":    types.NewDoubleNumberProperty(),
			"elapsed":       types.NewDoubleNumberProperty(),
			"indexed_at":    types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}
