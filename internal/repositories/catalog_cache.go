// package repositories implements local persistence for jukebox snapshots
package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/jukebox/internal/models"
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS catalog (
	hash     TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	duration REAL NOT NULL
);`

// CatalogCache persists the last successful catalog snapshot so a fresh
// process can render track names before its first poll completes.
//
// Save mirrors the client's snapshot discipline: the stored rows are replaced
// wholesale inside one transaction, never merged.
type CatalogCache struct {
	db *sql.DB
}

// NewCatalogCache creates the cache, applying its schema if needed.
func NewCatalogCache(db *sql.DB) (*CatalogCache, error) {
	if _, err := db.Exec(catalogSchema); err != nil {
		return nil, fmt.Errorf("failed to create catalog table: %w", err)
	}
	return &CatalogCache{db: db}, nil
}

// Save replaces the stored snapshot with catalog.
func (c *CatalogCache) Save(catalog models.Catalog) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM catalog"); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO catalog (hash, name, duration) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for hash, track := range catalog {
		if _, err := stmt.Exec(hash, track.Name, track.Duration); err != nil {
			return fmt.Errorf("failed to insert track %s: %w", hash, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot. An empty table yields an empty catalog,
// not an error.
func (c *CatalogCache) Load() (models.Catalog, error) {
	rows, err := c.db.Query("SELECT hash, name, duration FROM catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	catalog := models.Catalog{}
	for rows.Next() {
		var hash string
		var track models.Track
		if err := rows.Scan(&hash, &track.Name, &track.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan track row: %w", err)
		}
		catalog[hash] = track
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	return catalog, nil
}
