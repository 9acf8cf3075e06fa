package es

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/DjordjeVuckovic/runplot/internal/summary"
)

func TestDocumentMapping(t *testing.T) {
	r := summary.Run{
		ID: uuid.New(), Label: "adam", Source: "t1_adam.state", Epochs: 5, OptimumEpoch: 3,
		TrainLoss: 0.5, TrainError: 0.1, ValidLoss: 0.6, ValidError: 0.15, TestLoss: 0.7, TestError: 0.2, Elapsed: 12,
	}

	doc := toDocument(r)

	assert.Equal(t, r.ID.String(), doc.ID)
	assert.False(t, doc.IndexedAt.IsZero())
	assert.Equal(t, r, fromDocument(doc))
}
