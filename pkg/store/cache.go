package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const cacheFileName = "cache.db"

// ErrNotFound is returned by Cache.Get for missing or expired keys.
var ErrNotFound = errors.New("cache: key not found")

// Cache is a persistent key-value store with optional per-entry expiry,
// backed by a sqlite database in the action's cache directory.
type Cache struct {
	db *sql.DB

	// now is swappable in tests.
	now func() time.Time
}

// NewCache opens (or creates) the cache store under dir.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	dbPath := filepath.Join(dir, cacheFileName)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	c := &Cache{db: db, now: time.Now}
	if err := c.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize cache: %w", err)
	}

	return c, nil
}

// init creates the database schema
func (c *Cache) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		expires_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_entries_expires_at ON entries(expires_at);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Set stores value under key. A ttl of zero means the entry never expires.
func (c *Cache) Set(key string, value []byte, ttl time.Duration) error {
	var expiresAt any
	if ttl > 0 {
		expiresAt = c.now().Add(ttl)
	}

	_, err := c.db.Exec(`
		INSERT INTO entries (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key. Expired entries are treated as
// missing and removed lazily.
func (c *Cache) Get(key string) ([]byte, error) {
	var value []byte
	var expiresAt sql.NullTime

	err := c.db.QueryRow("SELECT value, expires_at FROM entries WHERE key = ?", key).
		Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}

	if expiresAt.Valid && !c.now().Before(expiresAt.Time) {
		_, _ = c.db.Exec("DELETE FROM entries WHERE key = ?", key)
		return nil, ErrNotFound
	}

	return value, nil
}

// Has reports whether key holds a live entry.
func (c *Cache) Has(key string) bool {
	_, err := c.Get(key)
	return err == nil
}

// Delete removes key. Deleting a missing key is not an error.
func (c *Cache) Delete(key string) error {
	if _, err := c.db.Exec("DELETE FROM entries WHERE key = ?", key); err != nil {
		return fmt.Errorf("cache delete %q: %w", key, err)
	}
	return nil
}

// Purge removes every expired entry and returns how many were dropped.
func (c *Cache) Purge() (int64, error) {
	res, err := c.db.Exec("DELETE FROM entries WHERE expires_at IS NOT NULL AND expires_at <= ?", c.now())
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
