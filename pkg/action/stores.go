package action

import (
	"errors"
	"sync"

	"github.com/scriptkit/lbaction/pkg/environ"
	"github.com/scriptkit/lbaction/pkg/store"
)

// ErrNoSupportPath is returned when the host did not provide a support directory.
var ErrNoSupportPath = errors.New("no support path in environment")

// ErrNoCachePath is returned when the host did not provide a cache directory.
var ErrNoCachePath = errors.New("no cache path in environment")

// Stores holds the two delegated persistence handles. Each is opened once,
// on first use, at the directory LaunchBar assigned to the action.
type Stores struct {
	env *environ.Snapshot

	configOnce sync.Once
	config     *store.Config
	configErr  error

	cacheOnce sync.Once
	cache     *store.Cache
	cacheErr  error
}

// ConfigStore returns the persistent config store rooted at the action's
// support directory.
func (a *Action) ConfigStore() (*store.Config, error) {
	s := a.stores
	s.configOnce.Do(func() {
		if s.env.SupportPath == "" {
			s.configErr = ErrNoSupportPath
			return
		}
		s.config, s.configErr = store.NewConfig(s.env.SupportPath)
	})
	return s.config, s.configErr
}

// CacheStore returns the TTL cache rooted at the action's cache directory.
func (a *Action) CacheStore() (*store.Cache, error) {
	s := a.stores
	s.cacheOnce.Do(func() {
		if s.env.CachePath == "" {
			s.cacheErr = ErrNoCachePath
			return
		}
		s.cache, s.cacheErr = store.NewCache(s.env.CachePath)
	})
	return s.cache, s.cacheErr
}

// Close releases the persistence handles that were actually opened.
func (a *Action) Close() error {
	s := a.stores
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}
