// Package matcher looks up catalog items by their attribute triple.
package matcher

import (
	"fmt"
	"strings"

	"github.com/meur/substrate/internal/catalog"
	"github.com/meur/substrate/internal/models"
)

// NoMatchMessage is the summary of an empty result
const NoMatchMessage = "Sorry, no matching item found."

// Lookup outcomes, used as log fields and metric labels
const (
	OutcomeNone     = "none"
	OutcomeSingle   = "single"
	OutcomeMultiple = "multiple"
)

const ruleWidth = 30

// Engine runs queries against one catalog.
// It holds no mutable state and may be shared between goroutines.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an engine over c
func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the catalog the engine queries
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Filter returns every item whose specified attributes equal the query,
// in catalog order. An empty query returns the whole catalog.
func (e *Engine) Filter(q models.Query) []models.Result {
	results := []models.Result{}
	for _, item := range e.catalog.Items() {
		if item.Matches(q) {
			results = append(results, item.Result())
		}
	}
	return results
}

// FindExactMatch returns the first item matching all three attributes.
// All three are required; an empty attribute never matches.
func (e *Engine) FindExactMatch(base, additional, skill string) (models.Result, bool) {
	q := models.Query{Base: base, Additional: additional, Skill: skill}
	if !q.Complete() {
		return models.Result{}, false
	}
	results := e.Filter(q)
	if len(results) == 0 {
		return models.Result{}, false
	}
	return results[0], true
}

// Match filters on the full triple and summarizes the result
func (e *Engine) Match(base, additional, skill string) string {
	return Summarize(e.Filter(models.Query{Base: base, Additional: additional, Skill: skill}))
}

// Summarize formats results for display
func Summarize(results []models.Result) string {
	switch len(results) {
	case 0:
		return NoMatchMessage
	case 1:
		r := results[0]
		return fmt.Sprintf("Name: %s\nTier: %s\nCategory: %s", r.Name, r.Tier, r.Category)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matching items:\n", len(results))
	b.WriteString(strings.Repeat("=", ruleWidth))
	b.WriteString("\n")
	for i, r := range results {
		fmt.Fprintf(&b, "\nItem %d:\n", i+1)
		fmt.Fprintf(&b, "  Name: %s\n", r.Name)
		fmt.Fprintf(&b, "  Tier: %s\n", r.Tier)
		fmt.Fprintf(&b, "  Category: %s\n", r.Category)
	}
	return b.String()
}

// Outcome classifies a result by its size
func Outcome(results []models.Result) string {
	switch len(results) {
	case 0:
		return OutcomeNone
	case 1:
		return OutcomeSingle
	default:
		return OutcomeMultiple
	}
}
