package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/runplot/internal/runlog/runlogtest"
	"github.com/DjordjeVuckovic/runplot/internal/storage"
)

func TestLoadAppConfig(t *testing.T) {
	t.Run("no store, default catalog", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		t.Setenv("CATALOG_PATH", "")

		cfg, err := LoadAppConfig()

		require.NoError(t, err)
		assert.Nil(t, cfg.StorageConfig)
		assert.Nil(t, cfg.Catalog)
	})

	t.Run("store and catalog", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "in_mem")
		t.Setenv("CATALOG_PATH", runlogtest.WriteFile(t, t.TempDir(), "c.yaml", "entries:\n  - {x: 0, y: 1}\n"))

		cfg, err := LoadAppConfig()

		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.StorageConfig.Type)
		assert.Equal(t, 1, cfg.Catalog.Len())
	})

	t.Run("bad catalog", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		t.Setenv("CATALOG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := LoadAppConfig()

		assert.ErrorContains(t, err, "load catalog")
	})
}
