package model

import "time"

// CacheStatus reports whether the upstream server answered from cache.
type CacheStatus string

const (
	// CacheHit means the response came from cache.
	CacheHit CacheStatus = "hit"
	// CacheMiss means the response was computed fresh.
	CacheMiss CacheStatus = "miss"
	// CacheAwaited means the resource was already being requested by
	// another client and this request waited for that result.
	CacheAwaited CacheStatus = "awaited"
)

// Cache describes how a request was cached by the upstream server.
// Timestamps are milliseconds since the Unix epoch.
type Cache struct {
	Status      CacheStatus `json:"status"`
	CachedAt    int64       `json:"cached_at"`
	CachedUntil int64       `json:"cached_until"`
}

// CachedAtTime returns when this resource was cached.
func (c Cache) CachedAtTime() time.Time {
	return time.UnixMilli(c.CachedAt)
}

// CachedUntilTime returns when this resource's cache expires.
func (c Cache) CachedUntilTime() time.Time {
	return time.UnixMilli(c.CachedUntil)
}
