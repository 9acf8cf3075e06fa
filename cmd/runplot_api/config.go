package main

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/runplot/internal/catalog"
	"github.com/DjordjeVuckovic/runplot/internal/storage/factory"
)

type AppConfig struct {
	// StorageConfig is nil when STORAGE_TYPE is unset; summaries are then not persisted.
	StorageConfig *factory.StorageConfig
	Catalog       *catalog.Catalog
}

// LoadAppConfig reads STORAGE_TYPE and CATALOG_PATH.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	if os.Getenv("STORAGE_TYPE") != "" {
		sc, err := factory.LoadEnv()
		if err != nil {
			return nil, fmt.Errorf("load storage config: %w", err)
		}
		cfg.StorageConfig = sc
	}

	if path := os.Getenv("CATALOG_PATH"); path != "" {
		c, err := catalog.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cfg.Catalog = c
	}

	return cfg, nil
}
