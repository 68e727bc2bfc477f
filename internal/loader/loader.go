// Package loader picks the catalog source named by the configuration.
package loader

import (
	"os"

	"github.com/meur/substrate/internal/catalog"
	"github.com/meur/substrate/internal/config"
	"github.com/meur/substrate/internal/storage"
)

// Open loads the catalog from the SQLite database when DBPath is set,
// otherwise from the JSON document at CatalogPath.
func Open(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.DBPath == "" {
		return catalog.LoadFile(cfg.CatalogPath, cfg.CollectionKey)
	}

	// storage.New would create an empty database and serve no matches
	if _, err := os.Stat(cfg.DBPath); err != nil {
		return nil, &catalog.LoadError{Source: cfg.DBPath, Err: err}
	}

	store, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, &catalog.LoadError{Source: cfg.DBPath, Err: err}
	}
	defer store.Close()

	return store.Catalog()
}
