// Package catalog holds the immutable item collection that lookups run against.
//
// A catalog is built once, either from a JSON document whose top-level key
// maps to an array of records or from items read out of another source,
// and is never modified afterwards. Every record must carry the six item
// fields; a single malformed record fails the whole load.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/meur/substrate/internal/models"
)

// DefaultCollectionKey is the top-level key used when none is configured
const DefaultCollectionKey = "weapons"

// Catalog is an ordered, read-only sequence of items
type Catalog struct {
	source string
	items  []models.Item
}

// New creates a catalog from already parsed items. The slice is copied.
func New(items []models.Item) *Catalog {
	return NewFromSource("memory", items)
}

// NewFromSource is New with a description of where the items came from
func NewFromSource(source string, items []models.Item) *Catalog {
	return &Catalog{source: source, items: slices.Clone(items)}
}

// LoadFile reads a catalog document from path
func LoadFile(path, key string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	c, err := decode(f, path, key)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a catalog document from r
func Load(r io.Reader, key string) (*Catalog, error) {
	return decode(r, "reader", key)
}

func decode(r io.Reader, source, key string) (*Catalog, error) {
	if key == "" {
		key = DefaultCollectionKey
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	raw, ok := doc[key]
	if !ok {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w %q", ErrMissingCollection, key)}
	}

	var records []json.RawMessage
	if isNull(raw) {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %q", ErrNotCollection, key)}
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %q", ErrNotCollection, key)}
	}

	items := make([]models.Item, 0, len(records))
	for i, rec := range records {
		var fields map[string]json.RawMessage
		if isNull(rec) {
			return nil, &RecordShapeError{Source: source, Index: i, Err: ErrNotRecord}
		}
		if err := json.Unmarshal(rec, &fields); err != nil {
			return nil, &RecordShapeError{Source: source, Index: i, Err: fmt.Errorf("%w: %v", ErrNotRecord, err)}
		}
		item, err := decodeRecord(fields)
		if err != nil {
			err.Source = source
			err.Index = i
			return nil, err
		}
		items = append(items, item)
	}

	return &Catalog{source: source, items: items}, nil
}

// decodeRecord checks field presence first so the error names the first
// missing field, then decodes each field on its own.
func decodeRecord(rec map[string]json.RawMessage) (models.Item, *RecordShapeError) {
	var item models.Item
	fields := []struct {
		name string
		dst  any
	}{
		{"name", &item.Name},
		{"tier", &item.Tier},
		{"category", &item.Category},
		{"base_attribute", &item.BaseAttribute},
		{"additional_attribute", &item.AdditionalAttribute},
		{"skill_attribute", &item.SkillAttribute},
	}

	for _, f := range fields {
		v, ok := rec[f.name]
		if !ok || isNull(v) {
			return item, &RecordShapeError{Field: f.name, Err: ErrMissingField}
		}
	}
	for _, f := range fields {
		if err := json.Unmarshal(rec[f.name], f.dst); err != nil {
			return item, &RecordShapeError{Field: f.name, Err: err}
		}
	}
	return item, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Items returns a copy of the catalog entries in catalog order
func (c *Catalog) Items() []models.Item {
	return slices.Clone(c.items)
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Source describes where the catalog was loaded from
func (c *Catalog) Source() string {
	return c.source
}

// Encode writes the catalog in the source document format under key
func (c *Catalog) Encode(w io.Writer, key string) error {
	if key == "" {
		key = DefaultCollectionKey
	}
	items := c.items
	if items == nil {
		items = []models.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string][]models.Item{key: items})
}
