// Package cli implements the substrate command-line front end.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meur/substrate/internal/config"
	"github.com/meur/substrate/internal/loader"
	"github.com/meur/substrate/internal/logger"
	"github.com/meur/substrate/internal/matcher"
)

// NewRootCommand builds the command tree with defaults taken from cfg
func NewRootCommand(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "substrate",
		Short: "Match substrates against the item catalog",
		Long: `Looks up catalog items by their attribute triple
(base, additional, skill). A lookup returns the exact match, every item
sharing the triple, or a no-match message.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "path to the JSON catalog")
	flags.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite catalog path (overrides --catalog)")
	flags.StringVar(&cfg.CollectionKey, "key", cfg.CollectionKey, "top-level collection key in the catalog document")
	flags.StringVar(&cfg.VocabularyPath, "vocabulary", cfg.VocabularyPath, "attribute vocabulary YAML file")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	root.AddCommand(newLookupCommand(&cfg), newInteractiveCommand(&cfg))
	return root
}

// openEngine loads the configured catalog. Load failures are fatal for every command.
func openEngine(cmd *cobra.Command, cfg *config.Config) (*matcher.Engine, error) {
	log := logger.New(cmd.ErrOrStderr(), cfg.Verbose)

	c, err := loader.Open(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Debug("catalog loaded", "source", c.Source(), "items", c.Len())

	return matcher.New(c), nil
}
