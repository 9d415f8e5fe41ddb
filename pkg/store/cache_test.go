package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")

	c, err := NewCache(dir)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer c.Close()

	// Check if database file was created
	dbFile := filepath.Join(dir, "cache.db")
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		t.Error("Expected database file to be created")
	}
}

func TestCacheSetAndGet(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer c.Close()

	if err := c.Set("greeting", []byte("hello"), 0); err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}

	got, err := c.Get("greeting")
	if err != nil {
		t.Fatalf("Failed to get entry: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("Expected value %q, got %q", "hello", got)
	}

	// Overwrite
	if err := c.Set("greeting", []byte("hola"), 0); err != nil {
		t.Fatalf("Failed to overwrite entry: %v", err)
	}
	got, err = c.Get("greeting")
	if err != nil {
		t.Fatalf("Failed to get overwritten entry: %v", err)
	}
	if string(got) != "hola" {
		t.Errorf("Expected value %q, got %q", "hola", got)
	}

	// Missing key
	if _, err := c.Get("absent"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound for missing key, got %v", err)
	}
}

func TestCacheExpiry(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer c.Close()

	now := time.Now()
	c.now = func() time.Time { return now }

	if err := c.Set("short", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}
	if err := c.Set("forever", []byte("v"), 0); err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}

	if !c.Has("short") {
		t.Error("Expected live entry before expiry")
	}

	// Advance past the TTL
	now = now.Add(2 * time.Minute)

	if _, err := c.Get("short"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after expiry, got %v", err)
	}
	if !c.Has("forever") {
		t.Error("Expected entry without TTL to survive")
	}
}

func TestCacheDelete(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer c.Close()

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}
	if err := c.Delete("k"); err != nil {
		t.Fatalf("Failed to delete entry: %v", err)
	}
	if c.Has("k") {
		t.Error("Expected entry to be gone after delete")
	}

	// Deleting a missing key is fine
	if err := c.Delete("absent"); err != nil {
		t.Errorf("Expected no error deleting missing key, got %v", err)
	}
}

func TestCachePurge(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer c.Close()

	now := time.Now()
	c.now = func() time.Time { return now }

	_ = c.Set("a", []byte("v"), time.Second)
	_ = c.Set("b", []byte("v"), time.Second)
	_ = c.Set("keep", []byte("v"), time.Hour)

	now = now.Add(time.Minute)

	dropped, err := c.Purge()
	if err != nil {
		t.Fatalf("Failed to purge: %v", err)
	}
	if dropped != 2 {
		t.Errorf("Expected 2 purged entries, got %d", dropped)
	}
	if !c.Has("keep") {
		t.Error("Expected unexpired entry to survive purge")
	}
}
