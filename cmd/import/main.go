package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/meur/substrate/internal/catalog"
	"github.com/meur/substrate/internal/logger"
	"github.com/meur/substrate/internal/storage"
)

func main() {
	dbPath := flag.String("db", "./substrate.db", "SQLite database path")
	catalogPath := flag.String("catalog", "./weapons.json", "JSON catalog path")
	key := flag.String("key", catalog.DefaultCollectionKey, "Top-level collection key")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	log := logger.New(os.Stderr, *verbose)

	// The core loader rejects malformed records before anything is written
	c, err := catalog.LoadFile(*catalogPath, *key)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Error("failed to connect to database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Importing %d items from %s...\n", c.Len(), c.Source())

	if err := store.ReplaceItems(c.Items()); err != nil {
		log.Error("failed to import items", "error", err)
		store.Close()
		os.Exit(1)
	}

	n, err := store.CountItems()
	if err != nil {
		log.Warn("failed to count imported items", "error", err)
	}
	log.Debug("import complete", "db", *dbPath, "items", n)

	fmt.Println("✓ Successfully imported all items!")
}
