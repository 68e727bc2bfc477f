package models

// Query selects items by attribute triple.
// An empty field is unspecified and imposes no constraint.
type Query struct {
	Base       string `json:"base,omitempty"`
	Additional string `json:"additional,omitempty"`
	Skill      string `json:"skill,omitempty"`
}

// Complete reports whether all three attributes are specified
func (q Query) Complete() bool {
	return q.Base != "" && q.Additional != "" && q.Skill != ""
}
