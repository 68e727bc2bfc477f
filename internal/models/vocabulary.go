package models

// Vocabulary lists the documented values of each attribute.
// It is shown to users as a menu and is never used to validate queries.
type Vocabulary struct {
	Base       []string `json:"base" yaml:"base"`
	Additional []string `json:"additional" yaml:"additional"`
	Skill      []string `json:"skill" yaml:"skill"`
}
