package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/runplot/internal/storage"
	"github.com/DjordjeVuckovic/runplot/internal/storage/in_mem"
)

func TestLoadEnv(t *testing.T) {
	t.Run("missing type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		_, err := LoadEnv()
		assert.ErrorContains(t, err, "STORAGE_TYPE")
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "mongo")
		_, err := LoadEnv()
		assert.ErrorContains(t, err, "invalid STORAGE_TYPE")
	})

	t.Run("in memory", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "in_mem")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.Type)
		assert.Nil(t, cfg.Pg)
		assert.Nil(t, cfg.Es)
	})

	t.Run("pg needs a connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv()
		assert.Error(t, err)

		t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/runs")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@localhost:5432/runs", cfg.Pg.ConnStr)
	})

	t.Run("es addresses drop empty entries", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "http://a:9200,,http://b:9200,")
		t.Setenv("ES_INDEX_NAME", "run_summaries")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
	})

	t.Run("es needs addresses", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "")
		t.Setenv("ES_INDEX_NAME", "run_summaries")
		_, err := LoadEnv()
		assert.ErrorContains(t, err, "incomplete")
	})
}

func TestNewStorer_InMem(t *testing.T) {
	s, hc, err := NewStorer(context.Background(), &StorageConfig{Type: storage.InMem})

	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &in_mem.InMemStorer{}, s)
	assert.True(t, hc.Healthy(context.Background()))
}

func TestNewStorer_Unsupported(t *testing.T) {
	_, _, err := NewStorer(context.Background(), &StorageConfig{Type: "mongo"})
	assert.ErrorContains(t, err, "unsupported storer type: mongo")
}
