package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/meur/substrate/internal/api"
	"github.com/meur/substrate/internal/config"
	"github.com/meur/substrate/internal/loader"
	"github.com/meur/substrate/internal/logger"
	"github.com/meur/substrate/internal/matcher"
)

func main() {
	cfg := config.FromEnv()

	// Parse flags
	flag.StringVar(&cfg.Port, "port", cfg.Port, "Server port")
	flag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "JSON catalog path")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite catalog path (overrides -catalog)")
	flag.StringVar(&cfg.CollectionKey, "key", cfg.CollectionKey, "Top-level collection key")
	flag.StringVar(&cfg.VocabularyPath, "vocabulary", cfg.VocabularyPath, "Attribute vocabulary YAML path")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	flag.Parse()

	log := logger.New(os.Stderr, cfg.Verbose)

	c, err := loader.Open(cfg)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	vocab, err := config.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		log.Error("failed to load vocabulary", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := api.New(matcher.New(c), vocab, api.Options{
		CollectionKey: cfg.CollectionKey,
		Registry:      reg,
		Logger:        log,
	})

	log.Info("substrate API starting", "addr", "http://localhost:"+cfg.Port)
	log.Info("catalog loaded", "source", c.Source(), "items", c.Len())

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
