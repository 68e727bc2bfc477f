package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/meur/substrate/internal/catalog"
	"github.com/meur/substrate/internal/models"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// Config holds runtime settings shared by the commands.
// Values come from the environment and are overridden by flags.
type Config struct {
	Port           string
	CatalogPath    string // JSON catalog document
	DBPath         string // SQLite catalog, used instead of CatalogPath when set
	CollectionKey  string
	VocabularyPath string // empty means the embedded vocabulary
	Verbose        bool
}

// FromEnv builds a Config from environment variables
func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		CatalogPath:    getEnv("CATALOG_PATH", "./weapons.json"),
		DBPath:         getEnv("DB_PATH", ""),
		CollectionKey:  getEnv("CATALOG_KEY", catalog.DefaultCollectionKey),
		VocabularyPath: getEnv("VOCABULARY_FILE", ""),
		Verbose:        getEnvBool("VERBOSE", false),
	}
}

// LoadVocabulary reads the attribute vocabulary from path
func LoadVocabulary(path string) (*models.Vocabulary, error) {
	data := defaultVocabulary
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read vocabulary: %w", err)
		}
	}

	var v models.Vocabulary
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary %s: %w", path, err)
	}
	return &v, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
