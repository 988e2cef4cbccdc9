package cache

import (
	"context"
	"time"
)

// namespaced prefixes every key before delegating to the inner cache.
type namespaced struct {
	inner  Cache
	prefix string
}

// Namespace returns a view of c that prefixes all keys with prefix.
// Closing the view closes c.
//
// Namespace calls can be chained:
//
//	Namespace(Namespace(c, "verify:"), "central:") // prefix: "verify:central:"
func Namespace(c Cache, prefix string) Cache {
	if n, ok := c.(*namespaced); ok {
		return &namespaced{inner: n.inner, prefix: n.prefix + prefix}
	}
	return &namespaced{inner: c, prefix: prefix}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return n.inner.Set(ctx, n.prefix+key, data, ttl)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Close() error {
	return n.inner.Close()
}
