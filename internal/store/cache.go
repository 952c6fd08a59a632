package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wanjala-dev/duetrack/internal/model"
	_ "modernc.org/sqlite"
)

// Cache persists the last successful snapshot to a local SQLite file so the
// client can show something when the backend is unreachable. It is a mirror,
// not a second source of truth: every save wipes and rewrites the table.
type Cache struct {
	db *sql.DB
}

func defaultCachePath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(dataHome, "duetrack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache.db"), nil
}

// OpenCache opens (or creates) the snapshot cache and ensures the schema
// exists. An empty path picks the XDG data directory.
func OpenCache(path string) (*Cache, error) {
	if path == "" {
		var err error
		path, err = defaultCachePath()
		if err != nil {
			return nil, fmt.Errorf("determine cache path: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS assignments (
		id          INTEGER PRIMARY KEY,
		title       TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		due_date    TEXT,
		priority    TEXT    NOT NULL,
		status      TEXT    NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Save replaces the cached snapshot. Due dates are stored as RFC 3339 so the
// absolute instant survives the round trip regardless of the wire timezone.
func (c *Cache) Save(items []model.Assignment) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM assignments"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	for _, a := range items {
		var due sql.NullString
		if a.DueDate != nil {
			due = sql.NullString{String: a.DueDate.Format(time.RFC3339), Valid: true}
		}
		_, err := tx.Exec(
			"INSERT INTO assignments (id, title, description, due_date, priority, status) VALUES (?, ?, ?, ?, ?, ?)",
			a.ID, a.Title, a.Description, due, a.Priority, a.Status,
		)
		if err != nil {
			return fmt.Errorf("cache assignment %d: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

// Load returns the cached snapshot in id order.
func (c *Cache) Load() ([]model.Assignment, error) {
	rows, err := c.db.Query("SELECT id, title, description, due_date, priority, status FROM assignments ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("query cache: %w", err)
	}
	defer rows.Close()

	var items []model.Assignment
	for rows.Next() {
		var a model.Assignment
		var due sql.NullString
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &due, &a.Priority, &a.Status); err != nil {
			return nil, fmt.Errorf("scan cached assignment: %w", err)
		}
		if due.Valid {
			t, err := time.Parse(time.RFC3339, due.String)
			if err != nil {
				return nil, fmt.Errorf("cached due date for %d: %w", a.ID, err)
			}
			a.DueDate = &t
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}
