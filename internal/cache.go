package internal

import (
	"sync"
	"sync/atomic"
	"time"
)

// PathCache caches normalized path segments keyed by the raw path string.
// Entries are spread over shards to keep lock contention low.
type PathCache struct {
	shards    []*cacheShard
	shardMask uint64
	maxSize   int

	hitCount  int64 // atomic
	missCount int64 // atomic
	evictions int64 // atomic
}

type cacheShard struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	limit   int
}

type cacheEntry struct {
	segments   []string
	lastAccess int64 // Unix nanoseconds
}

// CacheStats is a snapshot of cache counters
type CacheStats struct {
	Entries   int64
	HitCount  int64
	MissCount int64
	HitRatio  float64 // percentage
	Evictions int64
}

// NewPathCache creates a cache holding at most maxSize entries.
// A maxSize <= 0 yields a cache that stores nothing.
func NewPathCache(maxSize int) *PathCache {
	shardCount := 8
	if maxSize > 1000 {
		shardCount = 16
	}
	if maxSize > 0 && maxSize < shardCount {
		shardCount = 1
	}

	limit := 0
	if maxSize > 0 {
		limit = max(maxSize/shardCount, 1)
	}

	shards := make([]*cacheShard, shardCount)
	for i := range shards {
		shards[i] = &cacheShard{entries: make(map[string]*cacheEntry), limit: limit}
	}

	return &PathCache{
		shards:    shards,
		shardMask: uint64(shardCount - 1),
		maxSize:   maxSize,
	}
}

func (c *PathCache) getShard(key string) *cacheShard {
	return c.shards[fnv1aHash(key)&c.shardMask]
}

// Get returns a copy of the cached segments for key
func (c *PathCache) Get(key string) ([]string, bool) {
	shard := c.getShard(key)

	shard.mu.Lock()
	entry, ok := shard.entries[key]
	if ok {
		entry.lastAccess = time.Now().UnixNano()
	}
	shard.mu.Unlock()

	if !ok {
		atomic.AddInt64(&c.missCount, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hitCount, 1)
	return cloneSegments(entry.segments), true
}

// Put stores a copy of segments under key, evicting the least recently
// used entry of the shard when it is full.
func (c *PathCache) Put(key string, segments []string) {
	if c.maxSize <= 0 {
		return
	}

	shard := c.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if entry, ok := shard.entries[key]; ok {
		entry.segments = cloneSegments(segments)
		entry.lastAccess = time.Now().UnixNano()
		return
	}

	if len(shard.entries) >= shard.limit {
		c.evictLRU(shard)
	}
	shard.entries[key] = &cacheEntry{
		segments:   cloneSegments(segments),
		lastAccess: time.Now().UnixNano(),
	}
}

// evictLRU expects shard.mu to be held
func (c *PathCache) evictLRU(shard *cacheShard) {
	var oldestKey string
	var oldestTime int64
	found := false

	for key, entry := range shard.entries {
		if !found || entry.lastAccess < oldestTime {
			oldestKey = key
			oldestTime = entry.lastAccess
			found = true
		}
	}

	if found {
		delete(shard.entries, oldestKey)
		atomic.AddInt64(&c.evictions, 1)
	}
}

// Len returns the number of cached entries
func (c *PathCache) Len() int {
	n := 0
	for _, shard := range c.shards {
		shard.mu.Lock()
		n += len(shard.entries)
		shard.mu.Unlock()
	}
	return n
}

// Clear drops every entry. Counters are kept.
func (c *PathCache) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		clear(shard.entries)
		shard.mu.Unlock()
	}
}

// Stats returns a snapshot of the cache counters
func (c *PathCache) Stats() CacheStats {
	hits := atomic.LoadInt64(&c.hitCount)
	misses := atomic.LoadInt64(&c.missCount)

	var ratio float64
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total) * 100.0
	}

	return CacheStats{
		Entries:   int64(c.Len()),
		HitCount:  hits,
		MissCount: misses,
		HitRatio:  ratio,
		Evictions: atomic.LoadInt64(&c.evictions),
	}
}

func cloneSegments(segments []string) []string {
	out := make([]string, len(segments))
	copy(out, segments)
	return out
}

// fnv1aHash implements FNV-1a hash algorithm for string keys
func fnv1aHash(key string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}
