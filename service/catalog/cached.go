package catalog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"quickview.GO/core/cache"
	"quickview.GO/service/quickview"
)

const cacheTag = "catalog"

// DefaultCacheTTL is how long a looked-up product is reused.
const DefaultCacheTTL = 5 * time.Minute

// CachedSource keeps looked-up products in the in-process cache and, when a
// client is configured, in Redis. Misses fall through to the wrapped source.
// Failed lookups are never cached.
type CachedSource struct {
	next  quickview.Catalog
	local *cache.Cache
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedSource(next quickview.Catalog, local *cache.Cache, rdb *redis.Client, ttl time.Duration) *CachedSource {
	if local == nil {
		local = cache.GetInstance()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{next: next, local: local, rdb: rdb, ttl: ttl}
}

func cacheKey(handle string) string { return "quickview:catalog:" + handle }

func (s *CachedSource) Lookup(ctx context.Context, handle string) (quickview.Product, error) {
	key := cacheKey(handle)
	if v, ok := s.local.Get(key); ok {
		return v.(quickview.Product), nil
	}
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var p quickview.Product
			if err := json.Unmarshal(raw, &p); err == nil {
				s.local.Set(key, p, s.ttl, cacheTag)
				return p, nil
			}
		} else if err != redis.Nil {
			log.Printf("catalog cache: redis get %s: %v", key, err)
		}
	}

	p, err := s.next.Lookup(ctx, handle)
	if err != nil {
		return quickview.Product{}, err
	}
	s.store(ctx, key, p)
	return p, nil
}

func (s *CachedSource) store(ctx context.Context, key string, p quickview.Product) {
	s.local.Set(key, p, s.ttl, cacheTag)
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		log.Printf("catalog cache: redis set %s: %v", key, err)
	}
}

// Invalidate drops handle from both cache tiers.
func (s *CachedSource) Invalidate(ctx context.Context, handles ...string) {
	keys := make([]string, len(handles))
	for i, h := range handles {
		keys[i] = cacheKey(h)
	}
	s.local.DeleteMany(keys...)
	if s.rdb != nil && len(keys) > 0 {
		if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
			log.Printf("catalog cache: redis del: %v", err)
		}
	}
}

// Flush drops every product from the in-process tier.
func (s *CachedSource) Flush() {
	s.local.DeleteByTag(cacheTag)
}

// Warm refreshes handles concurrently. It returns the first lookup error;
// the remaining handles are still attempted.
func (s *CachedSource) Warm(ctx context.Context, handles []string) error {
	s.Invalidate(ctx, handles...)
	var g errgroup.Group
	g.SetLimit(4)
	for _, h := range handles {
		h := h
		g.Go(func() error {
			_, err := s.Lookup(ctx, h)
			return err
		})
	}
	return g.Wait()
}
