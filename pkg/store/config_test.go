package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "support")

	cfg, err := NewConfig(dir)
	require.NoError(t, err)

	require.NoError(t, cfg.Set("token", "abc123"))
	require.NoError(t, cfg.Set("limit", 5))

	assert.Equal(t, "abc123", cfg.GetString("token"))
	assert.True(t, cfg.Has("token"))
	assert.False(t, cfg.Has("missing"))
	assert.Nil(t, cfg.Get("missing"))
}

func TestConfigPersistsAcrossOpens(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "support")

	cfg, err := NewConfig(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("greeting", "hello"))

	reopened, err := NewConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "hello", reopened.GetString("greeting"))
}

func TestConfigDelete(t *testing.T) {
	cfg, err := NewConfig(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.Set("keep", "yes"))
	require.NoError(t, cfg.Set("drop", "no"))
	require.NoError(t, cfg.Delete("drop"))

	assert.False(t, cfg.Has("drop"))
	assert.Equal(t, "yes", cfg.GetString("keep"))

	// Removal survives a reopen.
	reopened, err := NewConfig(filepath.Dir(cfg.Path()))
	require.NoError(t, err)
	assert.False(t, reopened.Has("drop"))
	assert.Equal(t, "yes", reopened.GetString("keep"))
}

func TestConfigDeleteMixedCaseKey(t *testing.T) {
	cfg, err := NewConfig(t.TempDir())
	require.NoError(t, err)

	// Viper stores and resolves keys case-insensitively.
	require.NoError(t, cfg.Set("Token", "abc"))
	require.True(t, cfg.Has("token"))

	require.NoError(t, cfg.Delete("TOKEN"))
	assert.False(t, cfg.Has("token"))
	assert.False(t, cfg.Has("Token"))
}

func TestConfigDeleteDottedKey(t *testing.T) {
	cfg, err := NewConfig(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.Set("feed.url", "https://example.com/rss"))
	require.NoError(t, cfg.Set("feed.etag", "xyz"))
	require.NoError(t, cfg.Set("token", "abc"))

	require.NoError(t, cfg.Delete("feed.url"))
	assert.False(t, cfg.Has("feed.url"))
	assert.Equal(t, "xyz", cfg.GetString("feed.etag"))
	assert.Equal(t, "abc", cfg.GetString("token"))

	// Deleting the last nested key prunes the emptied parent.
	require.NoError(t, cfg.Delete("feed.etag"))
	assert.False(t, cfg.Has("feed"))
	assert.Equal(t, "abc", cfg.GetString("token"))

	// Both removals survive a reopen.
	reopened, err := NewConfig(filepath.Dir(cfg.Path()))
	require.NoError(t, err)
	assert.False(t, reopened.Has("feed.url"))
	assert.False(t, reopened.Has("feed"))
	assert.Equal(t, "abc", reopened.GetString("token"))
}

func TestConfigAll(t *testing.T) {
	cfg, err := NewConfig(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.Set("a", "1"))
	require.NoError(t, cfg.Set("b", "2"))

	all := cfg.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "1", all["a"])
}
