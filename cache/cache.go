package cache

import (
	"sync"

	"go.uber.org/zap"

	"github.com/vvuk/angle"
	"github.com/vvuk/angle/pool"
	"github.com/vvuk/angle/types"
)

// Cache is an interning store of realized type descriptors, keyed by
// TypeKey. The zero value is not usable; construct with New or
// NewWithArena. A Cache is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	types  map[TypeKey]*types.Type
	arena  angle.Arena
	hits   uint64
	misses uint64
	closed bool
}

// Stats is a snapshot of cache activity.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// New creates a cache backed by its own slab arena.
func New() *Cache {
	return NewWithArena(pool.New[types.Type](0))
}

// NewWithArena creates a cache backed by the given arena. The cache
// takes ownership: Close releases the arena.
func NewWithArena(arena angle.Arena) *Cache {
	return &Cache{
		types: make(map[TypeKey]*types.Type),
		arena: arena,
	}
}

// Get returns the canonical descriptor for the five attributes,
// building and interning it on first request. The returned pointer is
// stable until Close; callers may compare descriptors by pointer.
// Get never returns nil. Calling Get on a closed cache is a caller bug
// and panics.
func (c *Cache) Get(basic types.BasicType, precision types.Precision, qualifier types.Qualifier, primarySize, secondarySize uint8) *types.Type {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		panic("cache: Get on closed cache")
	}

	key := makeTypeKey(basic, precision, qualifier, primarySize, secondarySize)
	if t, ok := c.types[key]; ok {
		c.hits++
		return t
	}
	c.misses++

	t := c.arena.Allocate()
	*t = types.Make(basic, precision, qualifier, primarySize, secondarySize)
	t.Realize()
	c.types[key] = t

	Logger().Debug("type descriptor created",
		zap.String("type", t.MangledName()),
		zap.Int("entries", len(c.types)))

	return t
}

// Len reports how many distinct descriptors the cache holds.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.types)
}

// Stats returns a snapshot of entry and hit/miss counts.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries: len(c.types),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// Close drops the store and releases the arena, invalidating every
// descriptor pointer the cache ever returned. Close is idempotent;
// Get after Close panics.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.types = nil
	c.arena.Release()

	Logger().Debug("type cache closed",
		zap.Uint64("hits", c.hits),
		zap.Uint64("misses", c.misses))
}
