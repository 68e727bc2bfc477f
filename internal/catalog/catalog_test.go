package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/substrate/internal/models"
)

const validDoc = `{
  "weapons": [
    {"name": "Alpha", "tier": 5, "category": "Sword",
     "base_attribute": "Agility", "additional_attribute": "Attack", "skill_attribute": "Strike"},
    {"name": "Beta", "tier": "S", "category": "Lance",
     "base_attribute": "Strength", "additional_attribute": "HP", "skill_attribute": "Flow"}
  ]
}`

func TestLoad_ValidDocument(t *testing.T) {
	c, err := Load(strings.NewReader(validDoc), "")
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	items := c.Items()
	assert.Equal(t, models.Item{
		Name:                "Alpha",
		Tier:                "5",
		Category:            "Sword",
		BaseAttribute:       "Agility",
		AdditionalAttribute: "Attack",
		SkillAttribute:      "Strike",
	}, items[0])
	assert.Equal(t, "Beta", items[1].Name)
	assert.Equal(t, models.StringTier("S"), items[1].Tier)
	assert.Equal(t, "S", items[1].Tier.String())
}

func TestLoad_CustomKey(t *testing.T) {
	doc := `{"items": [{"name": "A", "tier": 1, "category": "c",
		"base_attribute": "b", "additional_attribute": "a", "skill_attribute": "s"}]}`

	c, err := Load(strings.NewReader(doc), "items")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLoad_EmptyCollection(t *testing.T) {
	c, err := Load(strings.NewReader(`{"weapons": []}`), "")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoad_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"malformed json", `{"weapons": [`, nil},
		{"missing key", `{"items": []}`, ErrMissingCollection},
		{"not an array", `{"weapons": {"name": "x"}}`, ErrNotCollection},
		{"top level array", `[]`, nil},
		{"null collection", `{"weapons": null}`, ErrNotCollection},
		{"string collection", `{"weapons": "Alpha"}`, ErrNotCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.doc), "")
			require.Error(t, err)
			assert.Nil(t, c)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected LoadError, got %T", err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingBaseAttribute(t *testing.T) {
	doc := `{"weapons": [
		{"name": "Alpha", "tier": 5, "category": "Sword",
		 "base_attribute": "Agility", "additional_attribute": "Attack", "skill_attribute": "Strike"},
		{"name": "Broken", "tier": 4, "category": "Sword",
		 "additional_attribute": "Attack", "skill_attribute": "Strike"}
	]}`

	c, err := Load(strings.NewReader(doc), "")
	require.Error(t, err)
	assert.Nil(t, c)

	var shapeErr *RecordShapeError
	require.True(t, errors.As(err, &shapeErr), "expected RecordShapeError, got %T", err)
	assert.Equal(t, 1, shapeErr.Index)
	assert.Equal(t, "base_attribute", shapeErr.Field)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestLoad_RecordShapeErrors(t *testing.T) {
	tests := []struct {
		name      string
		record    string
		wantField string
	}{
		{"null name", `{"name": null, "tier": 1, "category": "c", "base_attribute": "b", "additional_attribute": "a", "skill_attribute": "s"}`, "name"},
		{"missing tier", `{"name": "n", "category": "c", "base_attribute": "b", "additional_attribute": "a", "skill_attribute": "s"}`, "tier"},
		{"boolean tier", `{"name": "n", "tier": true, "category": "c", "base_attribute": "b", "additional_attribute": "a", "skill_attribute": "s"}`, "tier"},
		{"numeric category", `{"name": "n", "tier": 1, "category": 3, "base_attribute": "b", "additional_attribute": "a", "skill_attribute": "s"}`, "category"},
		{"missing skill", `{"name": "n", "tier": 1, "category": "c", "base_attribute": "b", "additional_attribute": "a"}`, "skill_attribute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(`{"weapons": [`+tt.record+`]}`), "")

			var shapeErr *RecordShapeError
			require.True(t, errors.As(err, &shapeErr), "expected RecordShapeError, got %v", err)
			assert.Equal(t, 0, shapeErr.Index)
			assert.Equal(t, tt.wantField, shapeErr.Field)
		})
	}
}

func TestLoad_NonObjectRecords(t *testing.T) {
	valid := `{"name": "Alpha", "tier": 5, "category": "Sword",
		"base_attribute": "Agility", "additional_attribute": "Attack", "skill_attribute": "Strike"}`

	tests := []struct {
		name      string
		records   string
		wantIndex int
	}{
		{"number after valid record", valid + `, 42`, 1},
		{"string first", `"Alpha", ` + valid, 0},
		{"nested array", valid + `, ` + valid + `, []`, 2},
		{"null record", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(`{"weapons": [`+tt.records+`]}`), "")

			var shapeErr *RecordShapeError
			require.True(t, errors.As(err, &shapeErr), "expected RecordShapeError, got %T: %v", err, err)
			assert.Equal(t, tt.wantIndex, shapeErr.Index)
			assert.ErrorIs(t, err, ErrNotRecord)
			assert.NotErrorIs(t, err, ErrNotCollection)
			assert.Contains(t, err.Error(), fmt.Sprintf("record %d", tt.wantIndex))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weapons.json")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o600))

	c, err := LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, path, c.Source())
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := LoadFile(path, "")

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Source)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_CopiesItems(t *testing.T) {
	items := []models.Item{{Name: "Alpha"}, {Name: "Beta"}}
	c := New(items)

	items[0].Name = "Changed"
	assert.Equal(t, "Alpha", c.Items()[0].Name)

	got := c.Items()
	got[1].Name = "Changed"
	assert.Equal(t, "Beta", c.Items()[1].Name)
}

func TestEncode_RoundTrip(t *testing.T) {
	original, err := Load(strings.NewReader(validDoc), "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, original.Encode(&buf, ""))
	assert.Contains(t, buf.String(), `"base_attribute": "Agility"`)
	assert.Contains(t, buf.String(), `"tier": 5`)

	reloaded, err := Load(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, original.Items(), reloaded.Items())
}

func TestEncode_KeepsStringTiers(t *testing.T) {
	doc := `{"weapons": [
		{"name": "A", "tier": "6", "category": "c", "base_attribute": "b", "additional_attribute": "a", "skill_attribute": "s"},
		{"name": "B", "tier": "1e5", "category": "c", "base_attribute": "b", "additional_attribute": "a", "skill_attribute": "s"},
		{"name": "C", "tier": 3, "category": "c", "base_attribute": "b", "additional_attribute": "a", "skill_attribute": "s"}
	]}`
	c, err := Load(strings.NewReader(doc), "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, ""))
	assert.Contains(t, buf.String(), `"tier": "6"`)
	assert.Contains(t, buf.String(), `"tier": "1e5"`)
	assert.Contains(t, buf.String(), `"tier": 3`)
}

func TestEncode_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(nil).Encode(&buf, "items"))
	assert.JSONEq(t, `{"items": []}`, buf.String())
}
