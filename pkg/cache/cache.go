// Package cache stores the results of remote repository checks.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entries under a directory, for single-user CLI runs
//   - [RedisCache]: a shared Redis server, for teams and CI runners
//   - [NullCache]: stores nothing, used with --no-cache
//
// Use [Namespace] to give each data source its own key space:
//
//	c, _ := cache.NewFileCache(dir)
//	maven := cache.Namespace(c, "maven:")
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get returns (nil, false, nil) on a miss. A ttl of 0 stores an entry that
// never expires. Implementations are safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
