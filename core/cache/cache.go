package cache

import (
	"sync"
	"time"
)

// Cache is a thread-safe key-value store with optional expiry and tags.
type Cache struct {
	m sync.Map
	// tagIndex maps tag string to a set of keys (*sync.Map of string -> struct{})
	tagIndex sync.Map
	now      func() time.Time
}

var (
	once     sync.Once
	instance *Cache
)

// GetInstance returns the process-wide cache.
func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

// NewCache creates a new Cache instance.
func NewCache() *Cache {
	return &Cache{now: time.Now}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

func (i cacheItem) expired(now time.Time) bool {
	return i.ExpiresAt > 0 && now.UnixNano() > i.ExpiresAt
}

// Set stores value under key. A ttl of 0 keeps the value until deleted.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration, tags ...string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = c.now().Add(ttl).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.TagKey(key, tags...)
	}
}

// Get returns (value, true) if key is present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.expired(c.now()) {
		c.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// GetOrDefault returns the stored value or def.
func (c *Cache) GetOrDefault(key string, def interface{}) interface{} {
	if v, ok := c.Get(key); ok {
		return v
	}
	return def
}

// Delete removes key from the cache and from every tag.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
	c.tagIndex.Range(func(_, val interface{}) bool {
		val.(*sync.Map).Delete(key)
		return true
	})
}

// DeleteMany removes multiple keys from the cache.
func (c *Cache) DeleteMany(keys ...string) {
	for _, key := range keys {
		c.Delete(key)
	}
}

// TagKey assigns tags to key.
func (c *Cache) TagKey(key string, tags ...string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// GetKeysByTag returns all keys assigned to tag.
func (c *Cache) GetKeysByTag(tag string) []string {
	var keys []string
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			keys = append(keys, key.(string))
			return true
		})
	}
	return keys
}

// DeleteByTag deletes all entries assigned to tag.
func (c *Cache) DeleteByTag(tag string) {
	for _, key := range c.GetKeysByTag(tag) {
		c.Delete(key)
	}
	c.tagIndex.Delete(tag)
}

// IterateFilter returns the live values for which filter returns true.
func (c *Cache) IterateFilter(filter func(key string, value interface{}) bool) []interface{} {
	now := c.now()
	var results []interface{}
	c.m.Range(func(k, v interface{}) bool {
		item := v.(cacheItem)
		if !item.expired(now) && filter(k.(string), item.Value) {
			results = append(results, item.Value)
		}
		return true
	})
	return results
}

// Purge drops expired entries and returns how many were removed.
func (c *Cache) Purge() int {
	now := c.now()
	var expired []string
	c.m.Range(func(k, v interface{}) bool {
		if v.(cacheItem).expired(now) {
			expired = append(expired, k.(string))
		}
		return true
	})
	c.DeleteMany(expired...)
	return len(expired)
}

// Len counts live entries.
func (c *Cache) Len() int {
	return len(c.IterateFilter(func(string, interface{}) bool { return true }))
}
