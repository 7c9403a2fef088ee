package adapter

import (
	"errors"
	"time"

	"github.com/coocood/freecache"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// Cache defines an interface for an in-process byte cache to enable mocking
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Del(key string)
}

// FreeCache implements Cache on top of coocood/freecache
type FreeCache struct {
	cache *freecache.Cache
}

// NewCache creates a cache holding up to sizeMB megabytes
func NewCache(sizeMB int) Cache {
	return &FreeCache{cache: freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (c *FreeCache) Get(key string) ([]byte, error) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return val, nil
}

func (c *FreeCache) Set(key string, value []byte, ttl time.Duration) error {
	return c.cache.Set([]byte(key), value, int(ttl.Seconds()))
}

func (c *FreeCache) Del(key string) {
	c.cache.Del([]byte(key))
}
