package models

import (
	"encoding/json"
	"errors"
	"strconv"
)

// Item represents one catalog entry
type Item struct {
	Name                string `json:"name"`
	Tier                Tier   `json:"tier"`
	Category            string `json:"category"`
	BaseAttribute       string `json:"base_attribute"`
	AdditionalAttribute string `json:"additional_attribute"`
	SkillAttribute      string `json:"skill_attribute"`
}

// Result projects the display fields of an item
func (i Item) Result() Result {
	return Result{Name: i.Name, Tier: i.Tier, Category: i.Category}
}

// Matches reports whether every non-empty field of q equals the item's attribute
func (i Item) Matches(q Query) bool {
	if q.Base != "" && i.BaseAttribute != q.Base {
		return false
	}
	if q.Additional != "" && i.AdditionalAttribute != q.Additional {
		return false
	}
	if q.Skill != "" && i.SkillAttribute != q.Skill {
		return false
	}
	return true
}

// Result is what a lookup returns for a matched item
type Result struct {
	Name     string `json:"name"`
	Tier     Tier   `json:"tier"`
	Category string `json:"category"`
}

// ResultList is a collection of results
type ResultList struct {
	Results    []Result `json:"results"`
	TotalCount int      `json:"total_count"`
	Summary    string   `json:"summary,omitempty"`
}

// Tier holds the literal JSON text of the tier value, quotes included,
// so number and string tiers both round-trip unchanged. A Tier that is
// not valid JSON is treated as a plain string.
type Tier string

var errTierType = errors.New("tier must be a number or a string")

// StringTier builds a tier that encodes as a JSON string
func StringTier(s string) Tier {
	data, _ := json.Marshal(s)
	return Tier(data)
}

// IsNumeric reports whether the tier came from a JSON number
func (t Tier) IsNumeric() bool {
	_, err := strconv.ParseFloat(string(t), 64)
	return err == nil && json.Valid([]byte(t))
}

// quoted returns the decoded value of a JSON string tier
func (t Tier) quoted() (string, bool) {
	if len(t) == 0 || t[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal([]byte(t), &s); err != nil {
		return "", false
	}
	return s, true
}

// String returns the tier for display, without JSON quotes
func (t Tier) String() string {
	if s, ok := t.quoted(); ok {
		return s
	}
	return string(t)
}

// MarshalJSON emits the tier exactly as it was read
func (t Tier) MarshalJSON() ([]byte, error) {
	if t.IsNumeric() {
		return []byte(t), nil
	}
	if _, ok := t.quoted(); ok {
		return []byte(t), nil
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts a JSON number or string
func (t *Tier) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errTierType
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Tier(data)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil || n == "" {
			return errTierType
		}
		*t = Tier(n.String())
		return nil
	}
}
