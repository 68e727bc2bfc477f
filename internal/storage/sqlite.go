package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/substrate/internal/catalog"
	"github.com/meur/substrate/internal/models"
)

// Store keeps a catalog in SQLite so it can be shipped as a single database file
type Store struct {
	db   *sql.DB
	path string
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			tier TEXT NOT NULL,
			category TEXT NOT NULL,
			base_attribute TEXT NOT NULL,
			additional_attribute TEXT NOT NULL,
			skill_attribute TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_position ON items(position)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// GetItems returns all items in catalog order
func (s *Store) GetItems() ([]models.Item, error) {
	rows, err := s.db.Query(`
		SELECT name, tier, category, base_attribute, additional_attribute, skill_attribute
		FROM items ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		var tier string
		err := rows.Scan(&item.Name, &tier, &item.Category,
			&item.BaseAttribute, &item.AdditionalAttribute, &item.SkillAttribute)
		if err != nil {
			return nil, err
		}
		item.Tier = models.Tier(tier)
		items = append(items, item)
	}
	return items, rows.Err()
}

// Catalog loads the stored items as an immutable catalog
func (s *Store) Catalog() (*catalog.Catalog, error) {
	items, err := s.GetItems()
	if err != nil {
		return nil, &catalog.LoadError{Source: s.path, Err: err}
	}
	return catalog.NewFromSource(s.path, items), nil
}

// CountItems returns the number of stored items
func (s *Store) CountItems() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n)
	return n, err
}

// ReplaceItems swaps the stored catalog for items in a single transaction
func (s *Store) ReplaceItems(items []models.Item) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO items (id, position, name, tier, category, base_attribute, additional_attribute, skill_attribute)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, item := range items {
		_, err := stmt.Exec(uuid.New().String(), i, item.Name, string(item.Tier), item.Category,
			item.BaseAttribute, item.AdditionalAttribute, item.SkillAttribute)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
