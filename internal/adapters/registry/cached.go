package registry

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cached memoizes successful lookups of another registry.
// Misses are not cached so a failed lookup is retried.
type Cached struct {
	next  ports.Registry
	cache *lru.Cache[domain.PackageName, domain.RegistryEntry]
}

var _ ports.Registry = (*Cached)(nil)

// NewCached wraps next with an LRU cache holding up to size entries.
func NewCached(next ports.Registry, size int) (*Cached, error) {
	cache, err := lru.New[domain.PackageName, domain.RegistryEntry](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create registry cache"), "size", size)
	}
	return &Cached{next: next, cache: cache}, nil
}

// Lookup serves name from the cache, falling through to the wrapped registry.
func (c *Cached) Lookup(ctx context.Context, name domain.PackageName) (domain.RegistryEntry, error) {
	if entry, ok := c.cache.Get(name); ok {
		return entry, nil
	}
	entry, err := c.next.Lookup(ctx, name)
	if err != nil {
		return domain.RegistryEntry{}, err
	}
	c.cache.Add(name, entry)
	return entry, nil
}
