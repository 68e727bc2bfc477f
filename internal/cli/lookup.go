package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meur/substrate/internal/config"
	"github.com/meur/substrate/internal/logger"
	"github.com/meur/substrate/internal/matcher"
	"github.com/meur/substrate/internal/models"
)

type lookupOptions struct {
	query models.Query
	json  bool
	first bool
}

func newLookupCommand(cfg *config.Config) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Run a single lookup",
		Long: `Filters the catalog on the given attributes. Attributes left out
impose no constraint; with none given every item is listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query.Base, "base", "b", "", "base attribute")
	cmd.Flags().StringVarP(&opts.query.Additional, "additional", "a", "", "additional attribute")
	cmd.Flags().StringVarP(&opts.query.Skill, "skill", "s", "", "skill attribute")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output results as JSON")
	cmd.Flags().BoolVar(&opts.first, "first", false, "return only the first exact match (requires all attributes)")

	return cmd
}

func runLookup(cmd *cobra.Command, cfg *config.Config, opts *lookupOptions) error {
	engine, err := openEngine(cmd, cfg)
	if err != nil {
		return err
	}
	log := logger.New(cmd.ErrOrStderr(), cfg.Verbose)

	q := models.Query{
		Base:       strings.TrimSpace(opts.query.Base),
		Additional: strings.TrimSpace(opts.query.Additional),
		Skill:      strings.TrimSpace(opts.query.Skill),
	}
	if opts.first && !q.Complete() {
		return errors.New("--first requires --base, --additional and --skill")
	}

	var results []models.Result
	if opts.first {
		if r, ok := engine.FindExactMatch(q.Base, q.Additional, q.Skill); ok {
			results = append(results, r)
		}
	} else {
		results = engine.Filter(q)
	}
	log.Debug("lookup", "base", q.Base, "additional", q.Additional, "skill", q.Skill,
		"outcome", matcher.Outcome(results))

	if opts.json {
		if results == nil {
			results = []models.Result{}
		}
		data, err := json.MarshalIndent(models.ResultList{Results: results, TotalCount: len(results)}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), matcher.Summarize(results))
	return nil
}
